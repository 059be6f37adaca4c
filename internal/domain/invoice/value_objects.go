package invoice

import (
	"math"
	"strings"

	"invoice-dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errs.New("amount must be greater than zero")
	ErrAmountOutOfRange  = errs.New("amount exceeds the storable range")
)

var (
	hundred = decimal.NewFromInt(100)
	// amount is an INT column
	maxCents = decimal.NewFromInt(math.MaxInt32)
)

// Amount is a dollar value entered on the form.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() {
		return Amount{}, ErrNonPositiveAmount
	}
	if cents.GreaterThan(maxCents) {
		return Amount{}, ErrAmountOutOfRange
	}
	return Amount{value: d}, nil
}

func AmountFromCents(cents int64) Amount {
	return Amount{value: decimal.New(cents, -2)}
}

// Cents is round(amount * 100).
func (a Amount) Cents() int64 {
	return a.value.Mul(hundred).Round(0).IntPart()
}

// storableCents is the cents value the database would store, or 0 when
// the amount rounds below one cent or does not fit the column.
func storableCents(d decimal.Decimal) int64 {
	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(maxCents) {
		return 0
	}
	return cents.IntPart()
}

func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) String() string { return a.value.StringFixed(2) }

// coerceAmount converts raw form input into a number. Empty or
// non-numeric input becomes zero so it fails the positivity rule.
func coerceAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
