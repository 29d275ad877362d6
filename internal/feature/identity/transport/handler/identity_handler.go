// Package handler はidentityフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parcel_backend/internal/api"
	"parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/feature/identity/transport/http/dto"
	"parcel_backend/internal/feature/identity/usecase"
	"parcel_backend/internal/platform/http/middleware"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/dateparse"
	"parcel_backend/internal/shared/optional"
)

// IdentityUsecase はアカウント操作のユースケースを定義します。
type IdentityUsecase interface {
	SignIn(ctx context.Context, p entity.Profile) (string, error)
	Me(ctx context.Context, id uint) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uint) error
}

// IdentityHandler はセッション発行とアカウント操作のHTTPリクエストを処理します。
type IdentityHandler struct {
	identity IdentityUsecase
}

// NewIdentityHandler は新しい IdentityHandler を作成します。
func NewIdentityHandler(identity IdentityUsecase) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// Session reconciles the caller-reported profile and returns a bearer token.
// The route is reachable only with the service token.
func (h *IdentityHandler) Session(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "session", err)
		return
	}
	p, err := toProfile(req)
	if err != nil {
		api.RespondError(c, "session", err)
		return
	}
	token, err := h.identity.SignIn(c.Request.Context(), p)
	if err != nil {
		api.RespondError(c, "session", err)
		return
	}
	middleware.LoggerFrom(c.Request.Context()).Info("session issued", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me は認証済みユーザーの情報を返します。
func (h *IdentityHandler) Me(c *gin.Context) {
	id, ok := api.OwnerID(c)
	if !ok {
		return
	}
	u, err := h.identity.Me(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		api.RespondError(c, "me", err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastSignedIn: u.LastSignedIn,
	})
}

// DeleteMe はアカウントと所有データをすべて削除します。
func (h *IdentityHandler) DeleteMe(c *gin.Context) {
	id, ok := api.OwnerID(c)
	if !ok {
		return
	}
	if err := h.identity.DeleteAccount(c.Request.Context(), id); err != nil {
		api.RespondError(c, "delete account", err)
		return
	}
	c.JSON(http.StatusOK, api.OK)
}

func toProfile(req dto.SessionRequest) (entity.Profile, error) {
	role := optional.Convert(req.Role, func(s string) entity.Role { return entity.Role(s) })
	signedIn, err := optional.Map(req.LastSignedIn, dateparse.Parse)
	if err != nil {
		return entity.Profile{}, apperr.Validation("lastSignedIn: %v", err)
	}
	return entity.Profile{
		OpenID:       req.OpenID,
		Name:         req.Name,
		Email:        req.Email,
		LoginMethod:  req.LoginMethod,
		Role:         role,
		LastSignedIn: signedIn,
	}, nil
}
