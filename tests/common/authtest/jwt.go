//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.SessionDuration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, email)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// SessionCookie wraps a token the way the login handler stores it.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.SessionCookieName, Value: token}
}
