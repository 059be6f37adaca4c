package api

import (
	"net/http"

	reqdto "invoice-dashboard/internal/handler/dto/request"
	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/httperr"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	cmds      commands.InvoiceCommands
	q         queries.InvoiceQueries
	customers queries.CustomerQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries, customers queries.CustomerQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q, customers: customers}
}

// @Summary List invoices
// @Description Filtered, paginated invoices
// @Tags invoices
// @Produce json
// @Param query query string false "Search text"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} resdto.InvoicePageResponse
// @Failure 400 {object} httperr.Response
// @Router /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var req reqdto.InvoiceListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), req.Query, req.Page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch invoices.", nil)
		return
	}
	res, err := resdto.FromInvoicePage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create invoice form
// @Description Customer options for the create form
// @Tags invoices
// @Produce json
// @Success 200 {object} resdto.CreateInvoiceFormResponse
// @Router /dashboard/invoices/create [get]
func (h *InvoiceHandler) CreateForm(c *gin.Context) {
	opts, err := h.customers.Options(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch all customers.", nil)
		return
	}
	res, err := resdto.FromCustomerOptions(opts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create invoice
// @Tags invoices
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body reqdto.InvoiceForm true "Invoice form"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 422 {object} resdto.ActionStateResponse
// @Failure 500 {object} resdto.ActionStateResponse
// @Router /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req reqdto.InvoiceForm
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	writeResult(c, res, http.StatusInternalServerError)
}

// @Summary Edit invoice form
// @Description Invoice and customer options for the edit form
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.EditInvoiceFormResponse
// @Failure 404 {object} httperr.Response
// @Router /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) EditForm(c *gin.Context) {
	view, err := h.q.ForEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrInvoiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch invoice.", nil)
		return
	}
	res, err := resdto.FromEditInvoiceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update invoice
// @Tags invoices
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body reqdto.InvoiceForm true "Invoice form"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 422 {object} resdto.ActionStateResponse
// @Failure 500 {object} resdto.ActionStateResponse
// @Router /dashboard/invoices/{id} [post]
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req reqdto.InvoiceForm
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Update(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	writeResult(c, res, http.StatusInternalServerError)
}

// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 500 {object} httperr.Response
// @Router /dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete invoice.", nil)
		return
	}
	c.Redirect(http.StatusSeeOther, commands.PathInvoices)
}
