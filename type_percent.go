package analyzer

import "github.com/shopspring/decimal"

// Percent is a percentage as supplied by the broker (9.22 means 9.22%).
// It keeps every digit it was given.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool         { return p.value.Equal(q.value) }
func (p Percent) Cmp(q Percent) int            { return p.value.Cmp(q.value) }
func (p Percent) IsNegative() bool             { return p.value.IsNegative() }
func (p Percent) Abs() Percent                 { return Percent{value: p.value.Abs()} }
func (p Percent) Decimal() decimal.Decimal     { return p.value }
func (p Percent) Exact() string                { return p.value.String() }
func (p Percent) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

func (p *Percent) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// ShortString uses a single fractional digit, as in chart tooltips and the performance lists.
func (p Percent) ShortString() string {
	return p.value.StringFixed(1) + "%"
}

func (p Percent) SignedString() string {
	if p.value.Round(2).IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
