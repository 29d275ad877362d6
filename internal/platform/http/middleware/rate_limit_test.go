package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	remaining int
}

func (f *fakeLimiter) Allow() (bool, time.Duration) {
	if f.remaining == 0 {
		return false, 1500 * time.Millisecond
	}
	f.remaining--
	return true, 0
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.POST("/auth/session", RateLimit(&fakeLimiter{remaining: 1}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
}
