package analyzer

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// View keeps the holdings table of an analysis: the holdings as loaded
// (the source), the search query, the sort column and direction, and the
// filtered then sorted list derived from them (the display).
//
// The display is recomputed by every mutation and is never edited on its
// own. Accessors return copies so callers cannot alias the view storage.
//
// A View is meant to be owned by a single goroutine, see Session for a
// synchronized owner.
type View struct {
	source    []Holding
	query     string // as typed
	folded    string // query used for matching
	sortKey   SortKey
	ascending bool
	display   []Holding
}

// NewView returns a View loaded with holdings.
func NewView(holdings []Holding) *View {
	v := new(View)
	v.Load(holdings)
	return v
}

// Load replaces the source with a copy of holdings, clears the query and the
// sort, and displays the source as is. An empty list is valid.
func (v *View) Load(holdings []Holding) {
	v.source = slices.Clone(holdings)
	v.query, v.folded = "", ""
	v.sortKey, v.ascending = NoSort, false
	v.display = slices.Clone(v.source)
}

// Reset empties the view.
func (v *View) Reset() { v.Load(nil) }

// SetQuery filters the source and returns the new display.
//
// A holding is kept if its symbol, company or sector contains the query,
// ignoring case. Kept holdings are in source order, then the active sort, if
// any, is applied again. The empty query keeps everything.
func (v *View) SetQuery(query string) []Holding {
	v.query = query
	v.folded = foldCase(query)
	v.display = filterHoldings(v.source, v.folded)
	if v.sortKey.Valid() {
		cmp, _ := Comparator(v.sortKey) // valid keys always have a comparator
		sortHoldings(v.display, cmp, v.ascending)
	}
	return v.Display()
}

// Sort orders the current display by key and returns it.
//
// The sort is stable: holdings with equal keys keep their relative order, so
// sorting the same key in the opposite direction exactly reverses every
// holding whose key differs from the others.
// An unknown key returns ErrInvalidSortKey and leaves the view unchanged.
func (v *View) Sort(key SortKey, ascending bool) ([]Holding, error) {
	cmp, err := Comparator(key)
	if err != nil {
		return v.Display(), err
	}
	v.sortKey, v.ascending = key, ascending
	sortHoldings(v.display, cmp, ascending)
	return v.Display(), nil
}

// ToggleSort applies the table header convention: sorting again by the active
// key flips the direction, any other key sorts ascending first.
// It returns the new display and the direction used.
func (v *View) ToggleSort(key SortKey) ([]Holding, bool, error) {
	ascending := true
	if key == v.sortKey {
		ascending = !v.ascending
	}
	display, err := v.Sort(key, ascending)
	return display, ascending, err
}

// Query returns the query as it was set.
func (v *View) Query() string { return v.query }

// SortOrder returns the active sort key and direction.
// The key is NoSort when the display is in source order.
func (v *View) SortOrder() (SortKey, bool) { return v.sortKey, v.ascending }

// Display returns a copy of the filtered and sorted holdings.
func (v *View) Display() []Holding { return slices.Clone(v.display) }

// Source returns a copy of the holdings as loaded.
func (v *View) Source() []Holding { return slices.Clone(v.source) }

// Len returns the number of displayed holdings.
func (v *View) Len() int { return len(v.display) }

// Export writes the display in the CSV export format.
func (v *View) Export(w io.Writer) error { return ExportCSV(w, v.display) }

func foldCase(s string) string { return cases.Fold().String(s) }

// matches reports whether h contains the already folded query.
func matches(h Holding, folded string) bool {
	return strings.Contains(foldCase(h.Symbol), folded) ||
		strings.Contains(foldCase(h.Company), folded) ||
		strings.Contains(foldCase(h.Sector), folded)
}

func filterHoldings(source []Holding, folded string) []Holding {
	res := make([]Holding, 0, len(source))
	for _, h := range source {
		if matches(h, folded) {
			res = append(res, h)
		}
	}
	return res
}

func sortHoldings(holdings []Holding, cmp func(a, b Holding) int, ascending bool) {
	if ascending {
		slices.SortStableFunc(holdings, cmp)
		return
	}
	slices.SortStableFunc(holdings, func(a, b Holding) int { return cmp(b, a) })
}
