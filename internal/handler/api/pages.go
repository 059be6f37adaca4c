package api

import (
	"net/http"

	"invoice-dashboard/internal/handler/view"

	"github.com/gin-gonic/gin"
)

// @Summary Edit view loading placeholder
// @Tags invoices
// @Produce html
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "Spinner markup"
// @Router /dashboard/invoices/{id}/edit/loading [get]
func EditInvoiceLoading(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := view.Loading().Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
