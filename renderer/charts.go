package renderer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/etnz/analyzer"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoChartData is returned when there is nothing to draw.
var ErrNoChartData = errors.New("no allocation to chart")

// palette is the fill color sequence of chart slices.
var palette = []drawing.Color{
	drawing.ColorFromHex("1FB8CD"),
	drawing.ColorFromHex("FFC185"),
	drawing.ColorFromHex("B4413C"),
	drawing.ColorFromHex("ECEBD5"),
	drawing.ColorFromHex("5D878F"),
	drawing.ColorFromHex("DB4545"),
	drawing.ColorFromHex("D2BA4C"),
	drawing.ColorFromHex("964325"),
	drawing.ColorFromHex("944454"),
	drawing.ColorFromHex("13343B"),
}

// ChartSize is the size of a rendered chart in pixels.
type ChartSize struct {
	Width, Height int
}

// slice is one value of a pie or donut chart.
type slice struct {
	label string
	value analyzer.Money
	share analyzer.Percent
}

func chartValues(slices []slice) ([]chart.Value, error) {
	values := make([]chart.Value, 0, len(slices))
	for i, s := range slices {
		if !s.value.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", s.label, s.share.ShortString()),
			Value: s.value.InexactFloat64(),
			Style: chart.Style{
				FillColor:   palette[i%len(palette)],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrNoChartData
	}
	return values, nil
}

// SectorChart renders the sector allocation as a PNG pie chart.
func SectorChart(p *analyzer.Portfolio, size ChartSize) ([]byte, error) {
	slices := make([]slice, len(p.Sectors))
	for i, s := range p.Sectors {
		slices[i] = slice{label: s.Sector, value: s.Value, share: s.Percentage}
	}
	values, err := chartValues(slices)
	if err != nil {
		return nil, fmt.Errorf("sector chart: %w", err)
	}

	graph := chart.PieChart{
		Title:  "Sector Allocation",
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("sector chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// MarketCapChart renders the market cap distribution as a PNG donut chart.
func MarketCapChart(p *analyzer.Portfolio, size ChartSize) ([]byte, error) {
	slices := make([]slice, len(p.MarketCaps))
	for i, m := range p.MarketCaps {
		slices[i] = slice{label: m.Category, value: m.Value, share: m.Percentage}
	}
	values, err := chartValues(slices)
	if err != nil {
		return nil, fmt.Errorf("market cap chart: %w", err)
	}

	graph := chart.DonutChart{
		Title:  "Market Cap Distribution",
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("market cap chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
