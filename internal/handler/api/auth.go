package api

import (
	"net/http"

	reqdto "invoice-dashboard/internal/handler/dto/request"
	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/httperr"
	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/internal/pkg/cookie"
	"invoice-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Login form
// @Description Describe the credentials form
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginPageResponse
// @Success 303 "Already signed in, redirected to /dashboard"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.LoginPageResponse{
		Action: "/login",
		Fields: []string{"email", "password"},
	})
}

// @Summary User login
// @Description Sign in with email and password; sets the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login form"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} resdto.ActionStateResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Authenticate(c.Request.Context(), req.ToSignInForm())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if signedIn, ok := res.(commands.SignedIn); ok {
		cookie.SetSessionCookie(c, h.cookieCfg, signedIn.Session.Token, signedIn.Session.ExpiresAt)
		writeResult(c, signedIn.Redirect, http.StatusInternalServerError)
		return
	}
	writeResult(c, res, http.StatusUnauthorized)
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	res := h.cmds.SignOut(c.Request.Context())
	cookie.ClearSessionCookie(c, h.cookieCfg)
	writeResult(c, res, http.StatusInternalServerError)
}
