package readstore

import (
	"context"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/pkg/pgconv"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	filteredInvoicesWhere = `
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1`

	findFilteredInvoicesSQL = `
		SELECT
			invoices.id::text AS id,
			invoices.customer_id::text AS customer_id,
			customers.name,
			customers.email,
			customers.image_url,
			invoices.amount,
			invoices.date,
			invoices.status` + filteredInvoicesWhere + `
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $2 OFFSET $3`

	countFilteredInvoicesSQL = `SELECT COUNT(*)` + filteredInvoicesWhere

	findInvoiceByIDSQL = `
		SELECT id::text AS id, customer_id::text AS customer_id, amount, status
		FROM invoices
		WHERE id = $1`
)

type invoiceRow struct {
	ID         string      `db:"id"`
	CustomerID string      `db:"customer_id"`
	Name       string      `db:"name"`
	Email      string      `db:"email"`
	ImageURL   string      `db:"image_url"`
	Amount     int64       `db:"amount"`
	Date       pgtype.Date `db:"date"`
	Status     string      `db:"status"`
}

type invoiceRecordRow struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	Amount     int64  `db:"amount"`
	Status     string `db:"status"`
}

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(db db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) FindFiltered(ctx context.Context, query string, limit, offset int32) ([]*queries.InvoiceListItem, error) {
	rows, err := r.db.Query(ctx, findFilteredInvoicesSQL, likePattern(query), limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch invoices", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[invoiceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan invoices", err)
	}

	items := make([]*queries.InvoiceListItem, 0, len(found))
	for _, row := range found {
		items = append(items, &queries.InvoiceListItem{
			ID:          row.ID,
			CustomerID:  row.CustomerID,
			Name:        row.Name,
			Email:       row.Email,
			ImageURL:    row.ImageURL,
			AmountCents: row.Amount,
			Date:        pgconv.DateFromPgtype(row.Date),
			Status:      row.Status,
		})
	}
	return items, nil
}

func (r *InvoiceReadStore) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countFilteredInvoicesSQL, likePattern(query)).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count invoices", err)
	}
	return count, nil
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id string) (*queries.InvoiceRecord, error) {
	rows, err := r.db.Query(ctx, findInvoiceByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch invoice", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[invoiceRecordRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch invoice", err)
	}

	return &queries.InvoiceRecord{
		ID:          row.ID,
		CustomerID:  row.CustomerID,
		AmountCents: row.Amount,
		Status:      row.Status,
	}, nil
}

func likePattern(query string) string {
	return "%" + query + "%"
}
