package response

import (
	"invoice-dashboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type InvoiceListItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type InvoicePageResponse struct {
	Invoices   []*InvoiceListItemResponse `json:"invoices"`
	Query      string                     `json:"query"`
	Page       int                        `json:"page"`
	TotalPages int                        `json:"totalPages"`
}

type CustomerOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateInvoiceFormResponse struct {
	Customers []*CustomerOptionResponse `json:"customers"`
}

type InvoiceFormResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

type EditInvoiceFormResponse struct {
	Invoice   *InvoiceFormResponse      `json:"invoice"`
	Customers []*CustomerOptionResponse `json:"customers"`
}

func FromInvoicePage(p *queries.InvoicePage) (*InvoicePageResponse, error) {
	res := &InvoicePageResponse{}
	if err := copier.CopyWithOption(res, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Invoices == nil {
		res.Invoices = []*InvoiceListItemResponse{}
	}
	return res, nil
}

func FromCustomerOptions(opts []*queries.CustomerOption) (*CreateInvoiceFormResponse, error) {
	res := &CreateInvoiceFormResponse{}
	if err := copier.CopyWithOption(&res.Customers, opts, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Customers == nil {
		res.Customers = []*CustomerOptionResponse{}
	}
	return res, nil
}

func FromEditInvoiceView(v *queries.EditInvoiceView) (*EditInvoiceFormResponse, error) {
	res := &EditInvoiceFormResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}
