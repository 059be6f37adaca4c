//go:build unit

package viewcache_test

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard/internal/infra/viewcache"
	"invoice-dashboard/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	entry := viewcache.Entry{Status: 200, ContentType: "application/json", Body: []byte(`{"ok":true}`)}

	set := func(t *testing.T, s *viewcache.MemoryStore, path, variant string) {
		t.Helper()
		gen, ok := s.Generation(ctx, path)
		require.True(t, ok)
		require.True(t, s.Set(ctx, path, variant, gen, entry))
	}

	t.Run("保存した描画を返す", func(t *testing.T) {
		s := viewcache.NewMemoryStore(time.Minute, clock.NewMockClock(time.Now()))
		set(t, s, "/dashboard/invoices", "page=2")

		got, ok := s.Get(ctx, "/dashboard/invoices", "page=2")

		require.True(t, ok)
		assert.Equal(t, entry, got)
		_, ok = s.Get(ctx, "/dashboard/invoices", "page=3")
		assert.False(t, ok)
	})

	t.Run("無効化で全バリアントを破棄", func(t *testing.T) {
		s := viewcache.NewMemoryStore(time.Minute, clock.NewMockClock(time.Now()))
		set(t, s, "/dashboard/invoices", "")
		set(t, s, "/dashboard/invoices", "query=lee")
		set(t, s, "/dashboard", "")

		s.Invalidate(ctx, "/dashboard/invoices")

		_, ok := s.Get(ctx, "/dashboard/invoices", "")
		assert.False(t, ok)
		_, ok = s.Get(ctx, "/dashboard/invoices", "query=lee")
		assert.False(t, ok)
		_, ok = s.Get(ctx, "/dashboard", "")
		assert.True(t, ok, "other paths survive")
	})

	t.Run("TTL経過で失効", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		s := viewcache.NewMemoryStore(time.Minute, clk)
		set(t, s, "/dashboard", "")

		clk.Add(59 * time.Second)
		_, ok := s.Get(ctx, "/dashboard", "")
		assert.True(t, ok)

		clk.Add(2 * time.Second)
		_, ok = s.Get(ctx, "/dashboard", "")
		assert.False(t, ok)
	})

	t.Run("描画中に無効化された結果は保存しない", func(t *testing.T) {
		s := viewcache.NewMemoryStore(time.Minute, clock.NewMockClock(time.Now()))
		gen, ok := s.Generation(ctx, "/dashboard")
		require.True(t, ok)

		s.Invalidate(ctx, "/dashboard")

		assert.False(t, s.Set(ctx, "/dashboard", "", gen, entry))
		_, ok = s.Get(ctx, "/dashboard", "")
		assert.False(t, ok)

		next, _ := s.Generation(ctx, "/dashboard")
		assert.Greater(t, next, gen)
		assert.True(t, s.Set(ctx, "/dashboard", "", next, entry))
	})

	t.Run("他パスの無効化は世代に影響しない", func(t *testing.T) {
		s := viewcache.NewMemoryStore(time.Minute, clock.NewMockClock(time.Now()))
		gen, _ := s.Generation(ctx, "/dashboard")

		s.Invalidate(ctx, "/dashboard/invoices")

		assert.True(t, s.Set(ctx, "/dashboard", "", gen, entry))
	})

	t.Run("存在しないパスの無効化は無害", func(t *testing.T) {
		s := viewcache.NewMemoryStore(0, clock.NewMockClock(time.Now()))
		assert.NotPanics(t, func() { s.Invalidate(ctx, "/nowhere") })
	})
}
