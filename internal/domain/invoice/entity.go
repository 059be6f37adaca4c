package invoice

import (
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyCustomer = errs.New("customer id is required")

type Invoice struct {
	id         uuid.UUID
	customerID string
	amount     Amount
	status     Status
	date       string
}

// NewInvoice builds a fresh invoice dated with the current UTC calendar day.
func NewInvoice(clk clock.Clock, d Draft) (*Invoice, error) {
	if d.CustomerID == "" {
		return nil, ErrEmptyCustomer
	}
	amount, err := NewAmount(d.Amount.Decimal())
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(d.Status.String())
	if err != nil {
		return nil, err
	}

	return &Invoice{
		id:         uuid.New(),
		customerID: d.CustomerID,
		amount:     amount,
		status:     status,
		date:       clock.Today(clk),
	}, nil
}

// Changes is the editable part of an existing invoice.
type Changes struct {
	id         string
	customerID string
	amount     Amount
	status     Status
}

func NewChanges(id string, d Draft) (*Changes, error) {
	if d.CustomerID == "" {
		return nil, ErrEmptyCustomer
	}
	amount, err := NewAmount(d.Amount.Decimal())
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(d.Status.String())
	if err != nil {
		return nil, err
	}
	return &Changes{id: id, customerID: d.CustomerID, amount: amount, status: status}, nil
}

func (i *Invoice) ID() uuid.UUID      { return i.id }
func (i *Invoice) CustomerID() string { return i.customerID }
func (i *Invoice) Amount() Amount     { return i.amount }
func (i *Invoice) Status() Status     { return i.status }
func (i *Invoice) Date() string       { return i.date }

func (c *Changes) ID() string         { return c.id }
func (c *Changes) CustomerID() string { return c.customerID }
func (c *Changes) Amount() Amount     { return c.amount }
func (c *Changes) Status() Status     { return c.status }
