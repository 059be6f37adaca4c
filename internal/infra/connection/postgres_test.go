//go:build unit

package connection

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type nopDBTX struct{}

func (nopDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("DELETE 1"), nil
}
func (nopDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (nopDBTX) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

func TestPgConn(t *testing.T) {
	t.Run("解放は一度だけ", func(t *testing.T) {
		released := 0
		c := newPgConn(nopDBTX{}, func() { released++ })

		c.Release()
		c.Release()

		assert.Equal(t, 1, released)
	})

	t.Run("リポジトリは遅延生成して再利用", func(t *testing.T) {
		c := newPgConn(nopDBTX{}, func() {})

		first := c.Invoices()
		assert.NotNil(t, first)
		assert.Same(t, first, c.Invoices())
		assert.NoError(t, first.Delete(context.Background(), "x"))
	})
}
