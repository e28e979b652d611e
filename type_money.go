package analyzer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of brokerage exports that do not declare one.
const DefaultCurrency = "INR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Currency returns the ISO code of the money, DefaultCurrency when unset.
func (m Money) Currency() string {
	if m.cur == "" {
		return DefaultCurrency
	}
	return m.cur
}

// symbol returns the grapheme used in front of the amount (₹ for INR).
func (m Money) symbol() string {
	c := money.GetCurrency(m.Currency())
	if c == nil || c.Grapheme == "" {
		return m.Currency()
	}
	return c.Grapheme
}

// String returns the compact display form, see FormatAmount.
func (m Money) String() string {
	return FormatAmount(m.value, m.symbol())
}

// SignedString returns the display form with an explicit sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Exact returns the plain decimal text with every stored digit, no symbol and no grouping.
func (m Money) Exact() string { return m.value.String() }

func (m Money) Decimal() decimal.Decimal       { return m.value }
func (m Money) Equal(n Money) bool             { return m.value.Equal(n.value) && m.Currency() == n.Currency() }
func (m Money) Cmp(n Money) int                { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool                   { return m.value.IsZero() }
func (m Money) IsPositive() bool               { return m.value.IsPositive() }
func (m Money) IsNegative() bool               { return m.value.IsNegative() }
func (m Money) Abs() Money                     { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Add(n Money) Money              { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money              { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) In(currency string) Money       { return Money{value: m.value, cur: currency} }
func (m Money) MarshalJSON() ([]byte, error)   { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error  { return m.value.UnmarshalJSON(b) }
func (m Money) InexactFloat64() float64        { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
