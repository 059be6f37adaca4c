//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/internal/pkg/jwt"
	"invoice-dashboard/tests/common/httptest"
	usecasemock "invoice-dashboard/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *usecasemock.MockSessionValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockSessionValidator(ctrl)
	m := middleware.NewSessionMiddleware(validator)

	r := gin.New()
	r.GET("/login", m.RedirectIfSignedIn(), func(c *gin.Context) { c.String(http.StatusOK, "login") })
	r.GET("/dashboard", m.RequireSession(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id.String())
	})
	return r, validator
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.SessionCookieName, Value: token}
}

func TestRequireSession(t *testing.T) {
	t.Run("有効なセッションは通過", func(t *testing.T) {
		r, validator := newSessionRouter(t)
		id := uuid.New()
		validator.EXPECT().ValidateSession("good").Return(id, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/dashboard", nil, sessionCookie("good"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.String(), rec.Body.String())
	})

	t.Run("クッキーなしはログインへ", func(t *testing.T) {
		r, _ := newSessionRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/dashboard", nil)

		httptest.AssertRedirect(t, rec, "/login")
	})

	t.Run("期限切れはログインへ", func(t *testing.T) {
		r, validator := newSessionRouter(t)
		validator.EXPECT().ValidateSession("old").Return(uuid.Nil, jwt.ErrExpiredToken)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/dashboard", nil, sessionCookie("old"))

		httptest.AssertRedirect(t, rec, "/login")
	})
}

func TestRedirectIfSignedIn(t *testing.T) {
	t.Run("ログイン済みはダッシュボードへ", func(t *testing.T) {
		r, validator := newSessionRouter(t)
		validator.EXPECT().ValidateSession("good").Return(uuid.New(), nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/login", nil, sessionCookie("good"))

		httptest.AssertRedirect(t, rec, "/dashboard")
	})

	t.Run("未ログインはそのまま表示", func(t *testing.T) {
		r, validator := newSessionRouter(t)
		validator.EXPECT().ValidateSession("bad").Return(uuid.Nil, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/login", nil, sessionCookie("bad"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "login", rec.Body.String())
	})
}
