//go:build unit || e2e

package authtest

import (
	"net/http"
	"net/url"
	"testing"

	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/tests/common/dbtest"
	"invoice-dashboard/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser posts the login form and returns the session cookie it sets.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformFormRequest(t, router, http.MethodPost, "/login",
		url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) *http.Cookie {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies ...*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/logout", nil, cookies...)
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
}
