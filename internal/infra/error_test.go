//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"invoice-dashboard/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "行なし", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "一意制約違反", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "外部キー違反", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "不正なUUID", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "22P02"}), want: infra.KindInvalidInput},
		{name: "その他のPGエラー", err: &pgconn.PgError{Code: "57P01"}, want: infra.KindDBFailure},
		{name: "ドライバ以外のエラー", err: errors.New("conn closed"), want: infra.KindDBFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", c.err)

			assert.True(t, infra.IsKind(err, c.want))
			assert.ErrorIs(t, err, c.err)
		})
	}

	t.Run("明示的な種別が優先", func(t *testing.T) {
		err := infra.WrapRepoErr("user not found", errors.New("x"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
