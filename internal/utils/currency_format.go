package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders an amount rounded to two places with the digit
// grouping of the given locale.
// Example: 1250000.5 with language.English returns "1,250,000.50"
func FormatAmount(amount decimal.Decimal, tag language.Tag) string {
	p := message.NewPrinter(tag)
	f := amount.Round(2).InexactFloat64()
	return p.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

