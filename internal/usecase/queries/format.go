package queries

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders cents as US dollars, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	dollars, _ := decimal.New(cents, -2).Float64()
	if dollars < 0 {
		return printer.Sprintf("-$%.2f", -dollars)
	}
	return printer.Sprintf("$%.2f", dollars)
}

// FormatDate renders an ISO calendar date as "Jun 15, 2024". Unparsable input is returned as is.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// CentsToDollars is the plain form value of an amount, e.g. 4999 -> "49.99".
func CentsToDollars(cents int64) string {
	return decimal.New(cents, -2).String()
}
