//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer.go -package=queriesmock

package queries

import (
	"context"

	"invoice-dashboard/internal/pkg/errs"
)

type CustomerReadStore interface {
	FindAll(ctx context.Context) ([]*CustomerOption, error)
}

type CustomerQueries interface {
	Options(ctx context.Context) ([]*CustomerOption, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) Options(ctx context.Context) ([]*CustomerOption, error) {
	customers, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch customers")
	}
	return customers, nil
}
