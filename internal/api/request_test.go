package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	infradb "parcel_backend/internal/platform/db"
	jwtmw "parcel_backend/internal/platform/jwt"
	"parcel_backend/internal/platform/ownedstore"
	"parcel_backend/internal/shared/apperr"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestBindID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"4711", 4711, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			var got uint
			var err error
			r.GET("/parcels/:id", func(c *gin.Context) {
				got, err = BindID(c, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parcels/"+tt.raw, nil))

			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperr.Validation("trackingNumber is required"), http.StatusBadRequest, `{"error":"validation failed: trackingNumber is required"}`},
		{"unavailable", fmt.Errorf("create parcel: %w", infradb.ErrUnavailable), http.StatusServiceUnavailable, `{"error":"storage unavailable"}`},
		{"unknown owner", fmt.Errorf("create parcel: %w", ownedstore.ErrUnknownOwner), http.StatusUnauthorized, `{"error":"unknown user"}`},
		{"unexpected", errors.New("duplicate key"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			RespondError(c, "create parcel", tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestOwnerID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := OwnerID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Set(jwtmw.ContextUserID, uint(9))
	id, ok := OwnerID(c2)
	assert.True(t, ok)
	assert.Equal(t, uint(9), id)
}
