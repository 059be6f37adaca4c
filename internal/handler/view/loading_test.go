//go:build unit

package view_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"invoice-dashboard/internal/handler/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoading(t *testing.T) {
	t.Run("中央寄せのスピナーを描画", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, view.Loading().Render(context.Background(), &buf))

		got := buf.String()
		assert.Contains(t, got, `<div class="spinner"></div>`)
		assert.Contains(t, got, "justify-content: center")
		assert.Contains(t, got, "border-left-color: #09f")
		assert.Contains(t, got, "animation: spin 1s linear infinite")
		assert.Contains(t, got, "@keyframes spin { to { transform: rotate(360deg); } }")
		assert.Equal(t, 1, strings.Count(got, `class="spinner"`))
	})

	t.Run("毎回同じ出力", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, view.Loading().Render(context.Background(), &a))
		require.NoError(t, view.Loading().Render(context.Background(), &b))
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("キャンセル済みのコンテキストでは描画しない", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		err := view.Loading().Render(ctx, &buf)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, buf.Len())
	})

	t.Run("書き込み失敗を返す", func(t *testing.T) {
		err := view.Loading().Render(context.Background(), failingWriter{})
		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}
