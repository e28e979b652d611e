// Package renderer renders the analysis of a portfolio: markdown sections for
// the terminal and PNG charts.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/analyzer"
	md "github.com/nao1215/markdown"
)

// HoldingsTable is the state of the holdings table to render.
type HoldingsTable struct {
	Display   []analyzer.Holding // holdings in display order
	Total     int                // number of holdings before filtering
	Query     string
	SortKey   analyzer.SortKey
	Ascending bool
}

// NewHoldingsTable captures the table state of a view.
func NewHoldingsTable(v *analyzer.View) HoldingsTable {
	key, asc := v.SortOrder()
	return HoldingsTable{
		Display:   v.Display(),
		Total:     len(v.Source()),
		Query:     v.Query(),
		SortKey:   key,
		Ascending: asc,
	}
}

// Dashboard is everything shown after an analysis.
type Dashboard struct {
	Portfolio *analyzer.Portfolio
	Table     HoldingsTable
	TopN      int    // size of the gainers and losers lists
	Source    string // what was analyzed, a file name or "demo"
}

// RenderDashboard renders all the sections of the dashboard.
func RenderDashboard(d Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Analysis\n\n")
	if d.Source != "" {
		fmt.Fprintf(&b, "Analysis of %s for client %s.\n\n", d.Source, d.Portfolio.Summary.ClientCode)
	}
	b.WriteString(SummaryMarkdown(d.Portfolio))
	b.WriteString(AllocationMarkdown(d.Portfolio))
	RenderPerformance(&b, d.Portfolio, d.TopN)
	b.WriteString(HoldingsMarkdown(d.Table))
	return b.String()
}

// table renders a markdown table followed by a blank line.
func table(header []string, rows [][]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return strings.TrimRight(doc.String(), "\n") + "\n\n"
}

// SummaryMarkdown renders the summary cards.
func SummaryMarkdown(p *analyzer.Portfolio) string {
	var b strings.Builder
	s := p.Summary

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "Overall %s of %s.\n\n", gainWord(s.IsGain()), s.OverallGainLoss.Abs())
	b.WriteString(table(
		[]string{"Invested Value", "Current Value", "Total Gain/Loss", "Return", "Holdings"},
		[][]string{{
			s.InvestedValue.String(),
			s.MarketValue.String(),
			s.OverallGainLoss.String(),
			s.ReturnPercentage.String(),
			fmt.Sprintf("%d", s.TotalScrips),
		}},
	))
	return b.String()
}

// AllocationMarkdown renders the sector and market cap allocations.
func AllocationMarkdown(p *analyzer.Portfolio) string {
	var b strings.Builder

	if len(p.Sectors) > 0 {
		rows := make([][]string, 0, len(p.Sectors))
		for _, s := range p.Sectors {
			rows = append(rows, []string{s.Sector, s.Value.String(), s.Percentage.ShortString()})
		}
		fmt.Fprintf(&b, "## Sector Allocation\n\n")
		b.WriteString(table([]string{"Sector", "Value", "Share"}, rows))
	}

	if len(p.MarketCaps) > 0 {
		rows := make([][]string, 0, len(p.MarketCaps))
		for _, m := range p.MarketCaps {
			rows = append(rows, []string{m.Category, m.Value.String(), m.Percentage.ShortString()})
		}
		fmt.Fprintf(&b, "## Market Cap Distribution\n\n")
		fmt.Fprintf(&b, "Total: %s\n\n", p.TotalMarketCap())
		b.WriteString(table([]string{"Category", "Value", "Share"}, rows))
	}

	return b.String()
}

// RenderPerformance writes the top gainers and top losers lists.
// A list with no holding is not printed at all.
func RenderPerformance(w io.Writer, p *analyzer.Portfolio, n int) {
	list := func(title string, holdings []analyzer.Holding) {
		ConditionalBlock(w, func(w io.Writer) bool {
			rows := make([][]string, 0, len(holdings))
			for _, h := range holdings {
				rows = append(rows, []string{h.Symbol, h.Company, h.GainLoss.Abs().String(), h.ReturnPct.Abs().ShortString()})
			}
			fmt.Fprintf(w, "## %s\n\n", title)
			io.WriteString(w, table([]string{"Symbol", "Company", "Amount", "Return"}, rows))
			return len(rows) > 0
		})
	}
	list("Top Gainers", p.TopGainers(n))
	list("Top Losers", p.TopLosers(n))
}

// HoldingsMarkdown renders the holdings table with the sort indicators.
func HoldingsMarkdown(t HoldingsTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Holdings\n\n")
	if t.Query != "" {
		fmt.Fprintf(&b, "%d of %d holdings match %q.\n\n", len(t.Display), t.Total, t.Query)
	} else {
		fmt.Fprintf(&b, "%d holdings.\n\n", len(t.Display))
	}

	keys := analyzer.SortKeys()
	header := make([]string, len(keys))
	for i, k := range keys {
		header[i] = k.Header() + " " + sortIndicator(k == t.SortKey, t.Ascending)
	}
	rows := make([][]string, 0, len(t.Display))
	for _, h := range t.Display {
		rows = append(rows, []string{
			h.Symbol,
			h.Company,
			h.Sector,
			h.Quantity.String(),
			h.CurrentValue.String(),
			h.GainLoss.String(),
			h.ReturnPct.String(),
		})
	}
	b.WriteString(table(header, rows))
	return b.String()
}
