package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type chartsCmd struct {
	outputDir string
	source    sourceFlags
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "render the allocation charts as PNG images" }
func (*chartsCmd) Usage() string {
	return `pfa charts [-o <dir>] [-in <doc.json> [-path <jsonpath>]]

  Renders the sector allocation pie chart (sector.png) and the market cap
  distribution donut chart (marketcap.png) into the output directory.
  The chart size comes from the configuration.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", ".", "Directory for the generated charts")
	c.source.SetFlags(f)
}

func (c *chartsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}

	p, err := c.source.load(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	size := renderer.ChartSize{Width: cfg.Charts.Width, Height: cfg.Charts.Height}
	files, err := writeCharts(ctx, p, size, c.outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering charts: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range files {
		log.Info().Str("file", name).Msg("chart written")
		fmt.Printf("Wrote %s\n", name)
	}
	return subcommands.ExitSuccess
}

// writeCharts renders every chart of p concurrently into dir and returns the written files.
func writeCharts(ctx context.Context, p *analyzer.Portfolio, size renderer.ChartSize, dir string) ([]string, error) {
	charts := []struct {
		name   string
		render func(*analyzer.Portfolio, renderer.ChartSize) ([]byte, error)
	}{
		{"sector.png", renderer.SectorChart},
		{"marketcap.png", renderer.MarketCapChart},
	}

	files := make([]string, len(charts))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range charts {
		g.Go(func() error {
			img, err := c.render(p, size)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			name := filepath.Join(dir, c.name)
			if err := os.WriteFile(name, img, 0644); err != nil {
				return err
			}
			files[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
