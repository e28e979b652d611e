package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ErrInvalidPortfolio is returned for documents that cannot be analyzed.
var ErrInvalidPortfolio = errors.New("invalid portfolio")

// Portfolio is the outcome of the analysis of a brokerage export.
type Portfolio struct {
	Currency   string                `json:"currency,omitempty"`
	Summary    Summary               `json:"summary"`
	Holdings   []Holding             `json:"holdings"`
	Sectors    []SectorAllocation    `json:"sectors"`
	MarketCaps []MarketCapAllocation `json:"marketCap"`
}

// Summary holds the figures of the summary cards.
type Summary struct {
	ClientCode       string  `json:"client_code"`
	TotalScrips      int     `json:"total_scrips"`
	MarketValue      Money   `json:"market_value"`
	InvestedValue    Money   `json:"invested_value"`
	OverallGainLoss  Money   `json:"overall_gain_loss"`
	ReturnPercentage Percent `json:"return_percentage"`
}

// UnmarshalJSON reads total_scrips from any number holding a whole value, like 66.0.
func (s *Summary) UnmarshalJSON(b []byte) error {
	type summary Summary
	var aux struct {
		summary
		TotalScrips decimal.Decimal `json:"total_scrips"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if !aux.TotalScrips.IsInteger() || aux.TotalScrips.IsNegative() {
		return fmt.Errorf("total_scrips: %s is not a whole number", aux.TotalScrips)
	}
	*s = Summary(aux.summary)
	s.TotalScrips = int(aux.TotalScrips.IntPart())
	return nil
}

// IsGain reports whether the portfolio as a whole is not at a loss.
func (s Summary) IsGain() bool { return !s.OverallGainLoss.IsNegative() }

// SectorAllocation is the value held in one sector.
type SectorAllocation struct {
	Sector     string  `json:"sector"`
	Value      Money   `json:"value"`
	Percentage Percent `json:"percentage"`
}

// MarketCapAllocation is the value held in one market capitalization category (LargeCap, MidCap, SmallCap).
type MarketCapAllocation struct {
	Category   string  `json:"category"`
	Value      Money   `json:"value"`
	Percentage Percent `json:"percentage"`
}

// TotalMarketCap returns the sum of the market cap allocations.
func (p *Portfolio) TotalMarketCap() Money {
	total := M(0, p.Currency)
	for _, m := range p.MarketCaps {
		total = total.Add(m.Value)
	}
	return total
}

// TopGainers returns at most n holdings with a gain, largest gain first.
func (p *Portfolio) TopGainers(n int) []Holding {
	return top(p.Holdings, n, Money.IsPositive, func(a, b Holding) int { return b.GainLoss.Cmp(a.GainLoss) })
}

// TopLosers returns at most n holdings with a loss, largest loss first.
func (p *Portfolio) TopLosers(n int) []Holding {
	return top(p.Holdings, n, Money.IsNegative, func(a, b Holding) int { return a.GainLoss.Cmp(b.GainLoss) })
}

func top(holdings []Holding, n int, keep func(Money) bool, cmp func(a, b Holding) int) []Holding {
	var res []Holding
	for _, h := range holdings {
		if keep(h.GainLoss) {
			res = append(res, h)
		}
	}
	slices.SortStableFunc(res, cmp)
	if n >= 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// Validate checks the holdings can be loaded in a View.
func (p *Portfolio) Validate() error { return validateHoldings(p.Holdings) }

func validateHoldings(holdings []Holding) error {
	seen := make(map[string]bool, len(holdings))
	for i, h := range holdings {
		if h.Symbol == "" {
			return fmt.Errorf("%w: holding #%d has no symbol", ErrInvalidPortfolio, i+1)
		}
		if seen[h.Symbol] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidPortfolio, h.Symbol)
		}
		seen[h.Symbol] = true
		if err := h.Quantity.validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidPortfolio, h.Symbol, err)
		}
	}
	return nil
}

// SetCurrency sets the currency of the portfolio and of every amount in it.
func (p *Portfolio) SetCurrency(c string) {
	p.Currency = c
	s := &p.Summary
	s.MarketValue, s.InvestedValue, s.OverallGainLoss = s.MarketValue.In(c), s.InvestedValue.In(c), s.OverallGainLoss.In(c)
	for i := range p.Holdings {
		h := &p.Holdings[i]
		h.CurrentValue, h.GainLoss = h.CurrentValue.In(c), h.GainLoss.In(c)
	}
	for i := range p.Sectors {
		p.Sectors[i].Value = p.Sectors[i].Value.In(c)
	}
	for i := range p.MarketCaps {
		p.MarketCaps[i].Value = p.MarketCaps[i].Value.In(c)
	}
}

// DecodePortfolio reads a portfolio from a JSON document.
//
// The document has the shape written by EncodePortfolio. When path is not
// empty it is a JSONPath expression selecting the portfolio object inside a
// larger document, for instance "$.data.portfolio". Numbers are read exactly.
func DecodePortfolio(r io.Reader, path string) (*Portfolio, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio document: %w", err)
	}

	if path != "" && path != "$" {
		selected, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot select %q in portfolio document: %w", path, err)
		}
		// jsonpath returns a list for wildcard paths, keep the first match.
		if list, ok := selected.([]any); ok && len(list) > 0 {
			if _, isObject := list[0].(map[string]any); isObject {
				selected = list[0]
			}
		}
		doc = selected
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not select an object", ErrInvalidPortfolio, path)
	}
	if _, ok := obj["holdings"]; !ok {
		return nil, fmt.Errorf("%w: no holdings in the selected object", ErrInvalidPortfolio)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode portfolio document: %w", err)
	}
	p := new(Portfolio)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPortfolio, err)
	}
	if p.Currency != "" {
		p.SetCurrency(p.Currency)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodePortfolio writes p as an indented JSON document.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
