package analyzer

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	lakh  = decimal.NewFromInt(100_000)
	crore = decimal.NewFromInt(10_000_000)
)

// FormatCurrency formats an amount in rupees for screen presentation.
//
//	-230351.55 -> -₹2.30L
//	1443049    -> ₹14.43L
//	71205.50   -> ₹71,205.5
//
// It is not used by the export, which keeps every digit.
func FormatCurrency(amount decimal.Decimal) string {
	return FormatAmount(amount, "₹")
}

// FormatAmount formats amount using the lakh/crore notation and the given symbol.
// Amounts of at least a crore are shown in crores, amounts of at least a lakh
// in lakhs, both with two fractional digits. Smaller amounts are grouped the
// en-IN way with up to three fractional digits. The sign goes before the symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	abs := amount.Abs()
	prefix := symbol
	if amount.IsNegative() {
		prefix = "-" + symbol
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return prefix + abs.Div(crore).StringFixed(2) + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return prefix + abs.Div(lakh).StringFixed(2) + "L"
	default:
		return prefix + groupDigits(abs, "en-IN")
	}
}

// groupDigits prints d with the digit grouping of the given locale and at most three fractional digits.
func groupDigits(d decimal.Decimal, locale string) string {
	p := message.NewPrinter(language.MustParse(locale))
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}
