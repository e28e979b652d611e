package analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares. Brokerage exports only carry whole shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool        { return q.value.Equal(p.value) }
func (q Quantity) Cmp(p Quantity) int           { return q.value.Cmp(p.value) }
func (q Quantity) IsNegative() bool             { return q.value.IsNegative() }
func (q Quantity) IsInteger() bool              { return q.value.IsInteger() }
func (q Quantity) Decimal() decimal.Decimal     { return q.value }
func (q Quantity) Add(p Quantity) Quantity      { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Exact() string                { return q.value.String() }
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}

// String returns the quantity with thousands separators, as displayed in the holdings table.
func (q Quantity) String() string {
	return groupDigits(q.value, "en")
}

// validate checks the quantity is a non negative whole number.
func (q Quantity) validate() error {
	if q.IsNegative() {
		return fmt.Errorf("negative quantity %s", q.value)
	}
	if !q.IsInteger() {
		return fmt.Errorf("fractional quantity %s", q.value)
	}
	return nil
}
