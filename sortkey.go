package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidSortKey is returned when sorting by a column that does not exist.
var ErrInvalidSortKey = errors.New("invalid sort key")

// SortKey identifies a column of the holdings table.
type SortKey int

const (
	NoSort SortKey = iota
	BySymbol
	ByCompany
	BySector
	ByQuantity
	ByCurrentValue
	ByGainLoss
	ByReturnPct
)

var sortKeyNames = [...]string{
	NoSort:         "",
	BySymbol:       "symbol",
	ByCompany:      "company",
	BySector:       "sector",
	ByQuantity:     "quantity",
	ByCurrentValue: "current_value",
	ByGainLoss:     "gain_loss",
	ByReturnPct:    "return_pct",
}

var sortKeyHeaders = [...]string{
	BySymbol:       "Symbol",
	ByCompany:      "Company",
	BySector:       "Sector",
	ByQuantity:     "Quantity",
	ByCurrentValue: "Current Value",
	ByGainLoss:     "Gain/Loss",
	ByReturnPct:    "Return %",
}

// SortKeys returns every valid key in column order.
func SortKeys() []SortKey {
	return []SortKey{BySymbol, ByCompany, BySector, ByQuantity, ByCurrentValue, ByGainLoss, ByReturnPct}
}

// SortKeyNames returns the names accepted by ParseSortKey in column order.
func SortKeyNames() []string {
	keys := SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

// Valid reports whether k is one of the table columns.
func (k SortKey) Valid() bool { return k >= BySymbol && k <= ByReturnPct }

func (k SortKey) String() string {
	if k < NoSort || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// Header returns the column title, the same used in the CSV export.
func (k SortKey) Header() string {
	if !k.Valid() {
		return ""
	}
	return sortKeyHeaders[k]
}

// ParseSortKey parses a column name like "gain_loss". Case is ignored.
func ParseSortKey(s string) (SortKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range SortKeys() {
		if k.String() == name {
			return k, nil
		}
	}
	return NoSort, fmt.Errorf("%w: %q, valid keys are %s", ErrInvalidSortKey, s, strings.Join(SortKeyNames(), ", "))
}

// Comparator returns an ascending three-way comparator for the column k.
//
// Numeric columns compare numerically. Text columns compare case-insensitively
// using English collation. Equal keys compare as 0 so that a stable sort keeps
// their previous relative order.
//
// The returned function is not safe for concurrent use.
func Comparator(k SortKey) (func(a, b Holding) int, error) {
	switch k {
	case BySymbol:
		return textComparator(func(h Holding) string { return h.Symbol }), nil
	case ByCompany:
		return textComparator(func(h Holding) string { return h.Company }), nil
	case BySector:
		return textComparator(func(h Holding) string { return h.Sector }), nil
	case ByQuantity:
		return func(a, b Holding) int { return a.Quantity.Cmp(b.Quantity) }, nil
	case ByCurrentValue:
		return func(a, b Holding) int { return a.CurrentValue.Cmp(b.CurrentValue) }, nil
	case ByGainLoss:
		return func(a, b Holding) int { return a.GainLoss.Cmp(b.GainLoss) }, nil
	case ByReturnPct:
		return func(a, b Holding) int { return a.ReturnPct.Cmp(b.ReturnPct) }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortKey, k)
	}
}

func textComparator(field func(Holding) string) func(a, b Holding) int {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(a, b Holding) int {
		return c.CompareString(field(a), field(b))
	}
}
