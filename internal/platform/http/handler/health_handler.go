// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// StoragePinger is satisfied by *sql.DB.
type StoragePinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves /healthz. The process is healthy even when storage
// is down; the body reports which mode it is running in.
type HealthHandler struct {
	storage StoragePinger
}

// NewHealthHandler accepts a nil pinger for degraded mode.
func NewHealthHandler(storage StoragePinger) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.storageState(c.Request.Context())})
	}
}

func (h *HealthHandler) storageState(ctx context.Context) string {
	if h.storage == nil {
		return "degraded"
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.storage.PingContext(ctx); err != nil {
		return "degraded"
	}
	return "up"
}
