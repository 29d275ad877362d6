// Package handler はprojectsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"parcel_backend/internal/api"
	"parcel_backend/internal/feature/projects/domain/entity"
	"parcel_backend/internal/feature/projects/transport/http/dto"
	"parcel_backend/internal/feature/projects/usecase"
)

// ProjectUsecase はプロジェクト操作のユースケースを定義します。
type ProjectUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Project, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateProjectInput) error
	Update(ctx context.Context, id, ownerID uint, in usecase.UpdateProjectInput) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// ProjectHandler はプロジェクトに関するHTTPリクエストを処理します。
type ProjectHandler struct {
	uc ProjectUsecase
}

// NewProjectHandler は新しい ProjectHandler を作成します。
func NewProjectHandler(uc ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List はログインユーザーのプロジェクト一覧を返します。
func (h *ProjectHandler) List(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	projects, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		api.RespondError(c, "list projects", err)
		return
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectResponse{
			ID:            p.ID,
			UserID:        p.UserID,
			ProjectName:   p.ProjectName,
			Description:   p.Description,
			Status:        string(p.Status),
			Priority:      string(p.Priority),
			StartDate:     p.StartDate,
			DueDate:       p.DueDate,
			CompletedDate: p.CompletedDate,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Create は新しいプロジェクトを登録します。
func (h *ProjectHandler) Create(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "create project", err)
		return
	}
	err := h.uc.Create(c.Request.Context(), ownerID, usecase.CreateProjectInput{
		ProjectName:   req.ProjectName,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		StartDate:     req.StartDate,
		DueDate:       req.DueDate,
		CompletedDate: req.CompletedDate,
	})
	if err != nil {
		api.RespondError(c, "create project", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Update は指定されたフィールドのみを更新します。
func (h *ProjectHandler) Update(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "update project", err)
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "update project", err)
		return
	}
	err = h.uc.Update(c.Request.Context(), id, ownerID, usecase.UpdateProjectInput{
		ProjectName:   req.ProjectName,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		StartDate:     req.StartDate,
		DueDate:       req.DueDate,
		CompletedDate: req.CompletedDate,
	})
	if err != nil {
		api.RespondError(c, "update project", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Delete はプロジェクトを削除します。
func (h *ProjectHandler) Delete(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "delete project", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, ownerID); err != nil {
		api.RespondError(c, "delete project", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}
