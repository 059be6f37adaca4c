package readstore

import (
	"context"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	cardDataSQL = `
		SELECT
			(SELECT COUNT(*) FROM invoices) AS number_of_invoices,
			(SELECT COUNT(*) FROM customers) AS number_of_customers,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0)::bigint AS total_paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)::bigint AS total_pending
		FROM invoices`

	latestInvoicesSQL = `
		SELECT
			invoices.id::text AS id,
			customers.name,
			customers.email,
			customers.image_url,
			invoices.amount
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $1`
)

type latestInvoiceRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
	Amount   int64  `db:"amount"`
}

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(db db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) CardData(ctx context.Context) (*queries.CardData, error) {
	var data queries.CardData
	err := r.db.QueryRow(ctx, cardDataSQL).Scan(
		&data.NumberOfInvoices,
		&data.NumberOfCustomers,
		&data.TotalPaidCents,
		&data.TotalPendingCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch card data", err)
	}
	return &data, nil
}

func (r *DashboardReadStore) LatestInvoices(ctx context.Context, limit int32) ([]*queries.LatestInvoice, error) {
	rows, err := r.db.Query(ctx, latestInvoicesSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch latest invoices", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[latestInvoiceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan latest invoices", err)
	}

	latest := make([]*queries.LatestInvoice, 0, len(found))
	for _, row := range found {
		latest = append(latest, &queries.LatestInvoice{
			ID:          row.ID,
			Name:        row.Name,
			Email:       row.Email,
			ImageURL:    row.ImageURL,
			AmountCents: row.Amount,
		})
	}
	return latest, nil
}
