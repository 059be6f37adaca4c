//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"invoice-dashboard/internal/handler/httperr"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/abort", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("boom"), "Failed to delete invoice.", nil)
	})
	r.GET("/nil-error", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Invoice not found", nil)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	t.Run("公開エラーのメッセージを返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/abort", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to delete invoice.")
	})

	t.Run("nilエラーでも中断できる", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/nil-error", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Invoice not found")
	})

	t.Run("非公開エラーは汎用メッセージ", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("panicは500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
