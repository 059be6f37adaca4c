package middleware

import (
	"log/slog"
	"net/http"

	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey = "user_id"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type SessionMiddleware struct {
	validator usecase.SessionValidator
}

func NewSessionMiddleware(validator usecase.SessionValidator) *SessionMiddleware {
	return &SessionMiddleware{
		validator: validator,
	}
}

// RequireSession sends anonymous callers to the login page.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.authenticate(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// RedirectIfSignedIn keeps signed-in users away from the login page.
func (m *SessionMiddleware) RedirectIfSignedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.authenticate(c); ok {
			c.Redirect(http.StatusSeeOther, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) authenticate(c *gin.Context) (uuid.UUID, bool) {
	token := cookie.GetSessionToken(c)
	if token == "" {
		return uuid.Nil, false
	}

	userID, err := m.validator.ValidateSession(token)
	if err != nil {
		slog.Warn("Session validation failed", "error", err.Error(), "path", c.Request.URL.Path)
		return uuid.Nil, false
	}
	return userID, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
