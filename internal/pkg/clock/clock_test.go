//go:build unit

package clock_test

import (
	"testing"
	"time"

	"invoice-dashboard/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "UTCの日付", now: time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), want: "2024-06-15"},
		{name: "東京の朝はUTCの前日", now: time.Date(2024, 6, 16, 8, 0, 0, 0, time.FixedZone("JST", 9*60*60)), want: "2024-06-15"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, clock.Today(clock.NewMockClock(c.now)))
		})
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)

	clk.Add(36 * time.Hour)
	assert.Equal(t, "2024-01-02", clock.Today(clk))

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}
