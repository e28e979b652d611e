package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupees from const
func INR(v float64) Money { return M(v, "INR") }

// holding is a helper for test to create a holding with the fields used by search and sort.
func holding(symbol, company, sector string, quantity int, value, gain, ret float64) Holding {
	return Holding{
		Symbol:       symbol,
		Company:      company,
		Sector:       sector,
		Quantity:     Q(quantity),
		CurrentValue: INR(value),
		GainLoss:     INR(gain),
		ReturnPct:    P(ret),
	}
}

var (
	reliance = holding("RELIANCE", "Reliance Industries", "Oil Exploration/Refineries", 100, 71205.50, 6005.50, 9.22)
	tcs      = holding("TCS", "Tata Consultancy", "Information Technology", 50, 180500, -5500, -2.96)
	suven    = holding("SUVEN", "Suven Life Sciences", "Pharmaceuticals & Drugs", 200, 70672, 24972, 54.69)
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}
