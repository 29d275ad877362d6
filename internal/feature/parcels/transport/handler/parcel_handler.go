// Package handler はparcelsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"parcel_backend/internal/api"
	"parcel_backend/internal/feature/parcels/domain/entity"
	"parcel_backend/internal/feature/parcels/domain/status"
	"parcel_backend/internal/feature/parcels/transport/http/dto"
	"parcel_backend/internal/feature/parcels/usecase"
)

// ParcelUsecase は荷物操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ParcelUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Parcel, error)
	Summary(ctx context.Context, ownerID uint) (status.Summary, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateParcelInput) error
	Update(ctx context.Context, id, ownerID uint, in usecase.UpdateParcelInput) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// ParcelHandler は荷物に関するHTTPリクエストを処理します。
// 所有者IDは常にJWTから取得し、リクエストボディからは読み取りません。
type ParcelHandler struct {
	uc ParcelUsecase
}

// NewParcelHandler は新しい ParcelHandler を作成します。
func NewParcelHandler(uc ParcelUsecase) *ParcelHandler {
	return &ParcelHandler{uc: uc}
}

// List は認証ユーザーの荷物一覧を作成順で返します。
func (h *ParcelHandler) List(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	parcels, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		api.RespondError(c, "list parcels", err)
		return
	}
	out := make([]dto.ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, toResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// Summary はダッシュボード用のカテゴリ別件数を返します。
func (h *ParcelHandler) Summary(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	s, err := h.uc.Summary(c.Request.Context(), ownerID)
	if err != nil {
		api.RespondError(c, "summarize parcels", err)
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{
		Total:     s.Total,
		Delivered: s.Delivered,
		Customs:   s.Customs,
		InTransit: s.InTransit,
		Unknown:   s.Unknown,
	})
}

// Create は新しい荷物を登録します。生成されたIDは返しません。
func (h *ParcelHandler) Create(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	var req dto.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "create parcel", err)
		return
	}
	in := usecase.CreateParcelInput{
		TrackingNumber:    req.TrackingNumber,
		ParcelName:        req.ParcelName,
		Destination:       req.Destination,
		DateSent:          req.DateSent,
		Note:              req.Note,
		Status:            req.Status,
		StatusDescription: req.StatusDescription,
		StatusDate:        req.StatusDate,
		Location:          req.Location,
	}
	if err := h.uc.Create(c.Request.Context(), ownerID, in); err != nil {
		api.RespondError(c, "create parcel", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Update は指定されたフィールドのみを更新します。
// 他ユーザーの荷物や存在しないIDでも成功を返します（存在の漏洩を防ぐため）。
func (h *ParcelHandler) Update(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "update parcel", err)
		return
	}
	var req dto.UpdateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "update parcel", err)
		return
	}
	in := usecase.UpdateParcelInput{
		TrackingNumber:    req.TrackingNumber,
		ParcelName:        req.ParcelName,
		Destination:       req.Destination,
		DateSent:          req.DateSent,
		Note:              req.Note,
		Status:            req.Status,
		StatusDescription: req.StatusDescription,
		StatusDate:        req.StatusDate,
		Location:          req.Location,
	}
	if err := h.uc.Update(c.Request.Context(), id, ownerID, in); err != nil {
		api.RespondError(c, "update parcel", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Delete は荷物を削除します。
func (h *ParcelHandler) Delete(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "delete parcel", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, ownerID); err != nil {
		api.RespondError(c, "delete parcel", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

func toResponse(p entity.Parcel) dto.ParcelResponse {
	return dto.ParcelResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		TrackingNumber:    p.TrackingNumber,
		ParcelName:        p.ParcelName,
		Destination:       p.Destination,
		DateSent:          p.DateSent,
		Note:              p.Note,
		Status:            p.Status,
		StatusDescription: p.StatusDescription,
		StatusDate:        p.StatusDate,
		Location:          p.Location,
		Category:          string(status.ClassifyParcel(p.Status, p.StatusDescription)),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
