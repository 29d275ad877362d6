// Package handler はshipmentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"parcel_backend/internal/api"
	"parcel_backend/internal/feature/shipments/domain/entity"
	"parcel_backend/internal/feature/shipments/transport/http/dto"
	"parcel_backend/internal/feature/shipments/usecase"
)

// ShipmentUsecase は発送計画のユースケースを定義します。
type ShipmentUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Shipment, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateShipmentInput) error
	Update(ctx context.Context, id, ownerID uint, in usecase.UpdateShipmentInput) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// ShipmentHandler は発送計画に関するHTTPリクエストを処理します。
type ShipmentHandler struct {
	uc ShipmentUsecase
}

// NewShipmentHandler は新しい ShipmentHandler を作成します。
func NewShipmentHandler(uc ShipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// List は認証ユーザーの発送計画を作成順で返します。
func (h *ShipmentHandler) List(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	shipments, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		api.RespondError(c, "list shipments", err)
		return
	}
	out := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, dto.ShipmentResponse{
			ID:             s.ID,
			UserID:         s.UserID,
			ShipmentName:   s.ShipmentName,
			Origin:         s.Origin,
			Destination:    s.Destination,
			Weight:         s.Weight,
			Dimensions:     s.Dimensions,
			ShippingMethod: s.ShippingMethod,
			EstimatedCost:  s.EstimatedCost,
			Notes:          s.Notes,
			Status:         s.Status,
			CreatedAt:      s.CreatedAt,
			UpdatedAt:      s.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Create は新しい発送計画を下書き状態で登録します。
func (h *ShipmentHandler) Create(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "create shipment", err)
		return
	}
	err := h.uc.Create(c.Request.Context(), ownerID, usecase.CreateShipmentInput{
		ShipmentName:   req.ShipmentName,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Weight:         req.Weight,
		Dimensions:     req.Dimensions,
		ShippingMethod: req.ShippingMethod,
		EstimatedCost:  req.EstimatedCost,
		Notes:          req.Notes,
	})
	if err != nil {
		api.RespondError(c, "create shipment", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Update は指定されたフィールドのみを更新します。
func (h *ShipmentHandler) Update(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "update shipment", err)
		return
	}
	var req dto.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "update shipment", err)
		return
	}
	err = h.uc.Update(c.Request.Context(), id, ownerID, usecase.UpdateShipmentInput{
		ShipmentName:   req.ShipmentName,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Weight:         req.Weight,
		Dimensions:     req.Dimensions,
		ShippingMethod: req.ShippingMethod,
		EstimatedCost:  req.EstimatedCost,
		Notes:          req.Notes,
		Status:         req.Status,
	})
	if err != nil {
		api.RespondError(c, "update shipment", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

// Delete は発送計画を削除します。
func (h *ShipmentHandler) Delete(c *gin.Context) {
	ownerID, ok := api.OwnerID(c)
	if !ok {
		return
	}
	id, err := api.BindID(c, "id")
	if err != nil {
		api.RespondError(c, "delete shipment", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, ownerID); err != nil {
		api.RespondError(c, "delete shipment", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}
