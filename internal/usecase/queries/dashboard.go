//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

package queries

import (
	"context"

	"invoice-dashboard/internal/pkg/errs"
)

const LatestInvoicesLimit = 5

type CardsView struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid_invoices"`
	TotalPending      string `json:"total_pending_invoices"`
}

type LatestInvoiceView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

type DashboardView struct {
	Cards          CardsView            `json:"cards"`
	LatestInvoices []*LatestInvoiceView `json:"latest_invoices"`
}

type DashboardReadStore interface {
	CardData(ctx context.Context) (*CardData, error)
	LatestInvoices(ctx context.Context, limit int32) ([]*LatestInvoice, error)
}

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardView, error) {
	cards, err := q.readStore.CardData(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch card data")
	}

	latest, err := q.readStore.LatestInvoices(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, errs.Wrap(err, "fetch latest invoices")
	}

	view := &DashboardView{
		Cards: CardsView{
			NumberOfInvoices:  cards.NumberOfInvoices,
			NumberOfCustomers: cards.NumberOfCustomers,
			TotalPaid:         FormatCurrency(cards.TotalPaidCents),
			TotalPending:      FormatCurrency(cards.TotalPendingCents),
		},
		LatestInvoices: make([]*LatestInvoiceView, 0, len(latest)),
	}
	for _, li := range latest {
		view.LatestInvoices = append(view.LatestInvoices, &LatestInvoiceView{
			ID:       li.ID,
			Name:     li.Name,
			Email:    li.Email,
			ImageURL: li.ImageURL,
			Amount:   FormatCurrency(li.AmountCents),
		})
	}
	return view, nil
}
