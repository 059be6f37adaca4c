package readstore

import (
	"context"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const findAllCustomersSQL = `SELECT id::text AS id, name FROM customers ORDER BY name ASC`

type customerRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerOption, error) {
	rows, err := r.db.Query(ctx, findAllCustomersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch customers", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[customerRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan customers", err)
	}

	customers := make([]*queries.CustomerOption, 0, len(found))
	for _, row := range found {
		customers = append(customers, &queries.CustomerOption{ID: row.ID, Name: row.Name})
	}
	return customers, nil
}
