//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice.go -package=queriesmock

package queries

import (
	"context"
	"strings"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/pkg/errs"
)

const ItemsPerPage = 6

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceListItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type InvoicePage struct {
	Invoices   []*InvoiceListItemView `json:"invoices"`
	Query      string                 `json:"query"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
}

// InvoiceFormView pre-fills the edit form. Amount is in dollars.
type InvoiceFormView struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

type EditInvoiceView struct {
	Invoice   *InvoiceFormView  `json:"invoice"`
	Customers []*CustomerOption `json:"customers"`
}

type InvoiceReadStore interface {
	FindFiltered(ctx context.Context, query string, limit, offset int32) ([]*InvoiceListItem, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	FindByID(ctx context.Context, id string) (*InvoiceRecord, error)
}

type InvoiceQueries interface {
	List(ctx context.Context, query string, page int) (*InvoicePage, error)
	ForEdit(ctx context.Context, id string) (*EditInvoiceView, error)
}

type invoiceQueriesImpl struct {
	invoices  InvoiceReadStore
	customers CustomerReadStore
}

func NewInvoiceQueries(invoices InvoiceReadStore, customers CustomerReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{invoices: invoices, customers: customers}
}

func (q *invoiceQueriesImpl) List(ctx context.Context, query string, page int) (*InvoicePage, error) {
	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}

	total, err := q.invoices.CountFiltered(ctx, query)
	if err != nil {
		return nil, errs.Wrap(err, "count invoices")
	}

	offset := int32((page - 1) * ItemsPerPage)
	rows, err := q.invoices.FindFiltered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		return nil, errs.Wrap(err, "fetch invoices")
	}

	items := make([]*InvoiceListItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, &InvoiceListItemView{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   FormatCurrency(r.AmountCents),
			Date:     FormatDate(r.Date),
			Status:   r.Status,
		})
	}

	return &InvoicePage{
		Invoices:   items,
		Query:      query,
		Page:       page,
		TotalPages: totalPages(total),
	}, nil
}

func (q *invoiceQueriesImpl) ForEdit(ctx context.Context, id string) (*EditInvoiceView, error) {
	rec, err := q.invoices.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindInvalidInput) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	customers, err := q.customers.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch customers")
	}

	return &EditInvoiceView{
		Invoice: &InvoiceFormView{
			ID:         rec.ID,
			CustomerID: rec.CustomerID,
			Amount:     CentsToDollars(rec.AmountCents),
			Status:     rec.Status,
		},
		Customers: customers,
	}, nil
}

func totalPages(total int64) int {
	return int((total + ItemsPerPage - 1) / ItemsPerPage)
}
