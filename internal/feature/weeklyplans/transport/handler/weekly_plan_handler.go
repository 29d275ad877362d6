// Package handler はweeklyplansフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"parcel_backend/internal/api"
	"parcel_backend/internal/feature/weeklyplans/domain/entity"
	"parcel_backend/internal/feature/weeklyplans/transport/http/dto"
	"parcel_backend/internal/feature/weeklyplans/usecase"
)

// WeeklyPlanUsecase は週間計画のユースケースを定義します。
type WeeklyPlanUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.WeeklyPlan, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateWeeklyPlanInput) error
	Update(ctx context.Context, id, ownerID uint, in usecase.UpdateWeeklyPlanInput) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// WeeklyPlanHandler は週間計画に関するHTTPリクエストを処理します。
type WeeklyPlanHandler struct {
	uc WeeklyPlanUsecase
}

// NewWeeklyPlanHandler は新しい WeeklyPlanHandler を作成します。
func NewWeeklyPlanHandler(uc WeeklyPlanUsecase) *WeeklyPlanHandler {
	return &WeeklyPlanHandler{uc: uc}
}

// List は週の開始日順に週次計画を返します。
func (h *WeeklyPlanHandler) List(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	plans, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		api.RespondError(c, "list weekly plans", err)
		return
	}
	out := make([]dto.WeeklyPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.WeeklyPlanResponse{
			ID:            p.ID,
			UserID:        p.UserID,
			WeekStartDate: p.WeekStartDate,
			Title:         p.Title,
			Description:   p.Description,
			Tasks:         p.Tasks,
			Completed:     p.Completed,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Create は新しい週間計画を登録します。
func (h *WeeklyPlanHandler) Create(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	var req dto.CreateWeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "create weekly plan", err)
		return
	}
	err := h.uc.Create(c.Request.Context(), ownerID, usecase.CreateWeeklyPlanInput{
		WeekStartDate: req.WeekStartDate,
		Title:         req.Title,
		Description:   req.Description,
		Tasks:         req.Tasks,
		Completed:     req.Completed,
	})
	if err != nil {
		api.RespondError(c, "create weekly plan", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Update は指定されたフィールドのみを更新します。完了フラグの切り替えもここで行います。
func (h *WeeklyPlanHandler) Update(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "update weekly plan", err)
		return
	}
	var req dto.UpdateWeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "update weekly plan", err)
		return
	}
	err = h.uc.Update(c.Request.Context(), id, ownerID, usecase.UpdateWeeklyPlanInput{
		WeekStartDate: req.WeekStartDate,
		Title:         req.Title,
		Description:   req.Description,
		Tasks:         req.Tasks,
		Completed:     req.Completed,
	})
	if err != nil {
		api.RespondError(c, "update weekly plan", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Delete は週間計画を削除します。
func (h *WeeklyPlanHandler) Delete(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "delete weekly plan", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, ownerID); err != nil {
		api.RespondError(c, "delete weekly plan", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}
