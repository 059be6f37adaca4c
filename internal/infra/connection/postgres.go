package connection

import (
	"context"
	"sync"

	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/infra/repository"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errAcquire = errs.New("failed to acquire connection")

// PostgresDatabase leases one pooled connection per operation.
type PostgresDatabase struct {
	pool *pgxpool.Pool
}

func NewPostgresDatabase(pool *pgxpool.Pool) shared.Database {
	return &PostgresDatabase{pool: pool}
}

func (d *PostgresDatabase) Connect(ctx context.Context) (shared.Connection, error) {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return nil, errs.Mark(err, errAcquire)
	}
	return newPgConn(conn, conn.Release), nil
}

type pgConn struct {
	dbtx     db.DBTX
	release  func()
	once     sync.Once
	invoices shared.InvoiceRepository
}

func newPgConn(dbtx db.DBTX, release func()) *pgConn {
	return &pgConn{dbtx: dbtx, release: release}
}

// Lazily initialize repositories on first access
func (c *pgConn) Invoices() shared.InvoiceRepository {
	if c.invoices == nil {
		c.invoices = repository.NewInvoiceRepository(c.dbtx)
	}
	return c.invoices
}

// Release returns the connection to the pool. Later calls are no-ops.
func (c *pgConn) Release() {
	c.once.Do(c.release)
}
