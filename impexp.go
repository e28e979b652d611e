package analyzer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the spreadsheet friendly export of the holdings table.
// It must stay stable: column order, quoting and number format are relied upon
// by whoever opens the file.

const (
	// ExportFileName is the suggested name of the export.
	ExportFileName = "portfolio_analysis.csv"
	// ExportMIMEType is the media type of the export.
	ExportMIMEType = "text/csv"
)

// ExportHeader is the first line of the export.
var ExportHeader = []string{"Symbol", "Company", "Sector", "Quantity", "Current Value", "Gain/Loss", "Return %"}

// ExportCSV writes holdings, in the given order, as comma separated values.
//
// The header line is followed by one line per holding. Company and sector are
// always quoted. Numbers are written as plain decimals with all their digits:
// no grouping, no currency symbol, no rounding. Every line ends with "\n".
func ExportCSV(w io.Writer, holdings []Holding) error {
	bw := bufio.NewWriter(w)
	writeLine := func(fields ...string) {
		bw.WriteString(strings.Join(fields, ","))
		bw.WriteByte('\n')
	}
	writeLine(ExportHeader...)
	for _, h := range holdings {
		writeLine(
			quoteIfNeeded(h.Symbol),
			quote(h.Company),
			quote(h.Sector),
			h.Quantity.Exact(),
			h.CurrentValue.Exact(),
			h.GainLoss.Exact(),
			h.ReturnPct.Exact(),
		)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, `"`, `""`) + `"` }

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

// ImportCSV reads holdings back from the export format.
// Amounts are in the given currency, DefaultCurrency if empty.
func ImportCSV(r io.Reader, currency string) ([]Holding, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ExportHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty export", ErrInvalidPortfolio)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read export header: %w", err)
	}
	if !slices.Equal(header, ExportHeader) {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrInvalidPortfolio, strings.Join(header, ","))
	}

	var holdings []Holding
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read export: %w", err)
		}
		line, _ := cr.FieldPos(0)
		h, err := parseRecord(record, currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		holdings = append(holdings, h)
	}
	if err := validateHoldings(holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

func parseRecord(record []string, currency string) (Holding, error) {
	nums := make([]decimal.Decimal, 4)
	for i, s := range record[3:] {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Holding{}, fmt.Errorf("invalid %s %q: %w", ExportHeader[3+i], s, err)
		}
		nums[i] = d
	}
	return Holding{
		Symbol:       record[0],
		Company:      record[1],
		Sector:       record[2],
		Quantity:     Q(nums[0]),
		CurrentValue: M(nums[1], currency),
		GainLoss:     M(nums[2], currency),
		ReturnPct:    P(nums[3]),
	}, nil
}
