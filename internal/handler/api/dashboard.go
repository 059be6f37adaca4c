package api

import (
	"net/http"

	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/httperr"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q     queries.DashboardQueries
	users queries.UserQueries
}

func NewDashboardHandler(q queries.DashboardQueries, users queries.UserQueries) *DashboardHandler {
	return &DashboardHandler{q: q, users: users}
}

// @Summary Dashboard overview
// @Description Card totals and the latest invoices
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Success 303 "Session user no longer exists, redirected to /login"
// @Failure 500 {object} httperr.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}
	user, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			c.Redirect(http.StatusSeeOther, middleware.LoginPath)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch user.", nil)
		return
	}

	view, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch card data.", nil)
		return
	}
	res, err := resdto.FromDashboardView(view, user)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
