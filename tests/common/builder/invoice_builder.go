//go:build unit || e2e

package builder

import (
	"net/url"

	"invoice-dashboard/internal/domain/invoice"
	reqdto "invoice-dashboard/internal/handler/dto/request"
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceBuilder struct {
	ID           string
	CustomerID   string
	CustomerName string
	Amount       string
	Status       string
	Date         string
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		ID:           uuid.NewString(),
		CustomerID:   "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		CustomerName: "Delba de Oliveira",
		Amount:       "49.99",
		Status:       "paid",
		Date:         "2024-06-01",
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *InvoiceBuilder) BuildFormInput() invoice.FormInput {
	return invoice.FormInput{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Amount:     b.Amount,
		Status:     b.Status,
		Date:       b.Date,
	}
}

func (b *InvoiceBuilder) BuildDraft() (invoice.Draft, error) {
	res := invoice.CreateInvoice.SafeParse(b.BuildFormInput())
	if !res.Success {
		return invoice.Draft{}, res.Error
	}
	return res.Data, nil
}

func (b *InvoiceBuilder) BuildDomain(clk clock.Clock) (*invoice.Invoice, error) {
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	return invoice.NewInvoice(clk, draft)
}

func (b *InvoiceBuilder) BuildFormDTO() reqdto.InvoiceForm {
	return reqdto.InvoiceForm{
		CustomerID: b.CustomerID,
		Amount:     reqdto.FormAmount(b.Amount),
		Status:     b.Status,
	}
}

func (b *InvoiceBuilder) BuildFormValues() url.Values {
	return url.Values{
		invoice.FieldCustomerID: {b.CustomerID},
		invoice.FieldAmount:     {b.Amount},
		invoice.FieldStatus:     {b.Status},
	}
}

func (b *InvoiceBuilder) BuildEditView() *queries.InvoiceFormView {
	return &queries.InvoiceFormView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Amount:     b.Amount,
		Status:     b.Status,
	}
}

// Fluent builder methods
func (b *InvoiceBuilder) WithCustomerID(id string) *InvoiceBuilder {
	b.CustomerID = id
	return b
}

func (b *InvoiceBuilder) WithAmount(amount string) *InvoiceBuilder {
	b.Amount = amount
	return b
}

func (b *InvoiceBuilder) WithStatus(status string) *InvoiceBuilder {
	b.Status = status
	return b
}
