package repository

import (
	"context"

	"invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/pkg/pgconv"
)

const (
	insertInvoiceSQL = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`

	updateInvoiceSQL = `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`

	deleteInvoiceSQL = `DELETE FROM invoices WHERE id = $1`
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(db db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	date, err := pgconv.DateToPgtype(inv.Date())
	if err != nil {
		return infra.WrapRepoErr("invalid invoice date", err, infra.KindInvalidInput)
	}

	_, err = r.db.Exec(ctx, insertInvoiceSQL,
		pgconv.UUIDToPgtype(inv.ID()),
		inv.CustomerID(),
		inv.Amount().Cents(),
		inv.Status().String(),
		date,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, ch *invoice.Changes) (int64, error) {
	tag, err := r.db.Exec(ctx, updateInvoiceSQL,
		ch.CustomerID(),
		ch.Amount().Cents(),
		ch.Status().String(),
		ch.ID(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update invoice", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, deleteInvoiceSQL, id); err != nil {
		return infra.WrapRepoErr("failed to delete invoice", err)
	}
	return nil
}
