//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of DefaultPassword
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

// Seeded customers, matching the placeholder data shipped with the dashboard.
var (
	CustomerEvilRabbit = uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa")
	CustomerDelbaOliv  = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, name, email, passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4)",
		customerID, name, email, "/customers/"+strings.ReplaceAll(strings.ToLower(name), " ", "-")+".png")
	require.NoError(t, err)

	return customerID
}

func CreateTestInvoice(t *testing.T, db DBLike, customerID uuid.UUID, amountCents int64, status, date string) uuid.UUID {
	t.Helper()

	invoiceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5::date)",
		invoiceID, customerID, amountCents, status, date)
	require.NoError(t, err)

	return invoiceID
}

// InvoiceRow is the persisted state of one invoice, read back for assertions.
type InvoiceRow struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      string
	Date        string
}

// FindInvoice reports false when no row matches.
func FindInvoice(t *testing.T, db DBLike, id uuid.UUID) (InvoiceRow, bool) {
	t.Helper()

	var row InvoiceRow
	err := db.QueryRow(context.Background(),
		"SELECT customer_id, amount, status, date::text FROM invoices WHERE id = $1", id).
		Scan(&row.CustomerID, &row.AmountCents, &row.Status, &row.Date)
	if err != nil {
		return InvoiceRow{}, false
	}
	return row, true
}

func CountInvoices(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM invoices").Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (id, name, email, image_url) VALUES
		    ($1, 'Evil Rabbit', 'evil@rabbit.com', '/customers/evil-rabbit.png'),
		    ($2, 'Delba de Oliveira', 'delba@oliveira.com', '/customers/delba-de-oliveira.png')
		ON CONFLICT (id) DO NOTHING;
	`, CustomerEvilRabbit, CustomerDelbaOliv)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
