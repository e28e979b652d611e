// Package cmd implements the CLI application to analyze a brokerage portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/config"
	"github.com/etnz/analyzer/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "dashboard")
	c.Register(&analyzeCmd{}, "dashboard")
	c.Register(&chartsCmd{}, "dashboard")
	c.Register(&shellCmd{}, "dashboard")

	c.Register(&holdingsCmd{}, "holdings")
	c.Register(&exportCmd{}, "holdings")
	c.Register(&sampleCmd{}, "holdings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "pfa.toml", "Path to the TOML configuration file")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the configuration")
var raw = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal")

// LoadConfig loads the app configuration from the -config file and the environment.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	return cfg, nil
}

// setup loads the configuration and creates the logger every command starts with.
func setup() (*config.Config, zerolog.Logger, bool) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, zerolog.Nop(), false
	}
	return cfg, NewLogger(cfg.Logging, os.Stderr), true
}

// newSession creates a session configured by cfg.
func newSession(cfg *config.Config, log zerolog.Logger) *analyzer.Session {
	return analyzer.NewSession(log, cfg.GetAnalysisDelay())
}

// sessionTable captures the holdings table of a session.
func sessionTable(s *analyzer.Session) renderer.HoldingsTable {
	key, asc := s.SortOrder()
	t := renderer.HoldingsTable{
		Display:   s.Display(),
		Query:     s.Query(),
		SortKey:   key,
		Ascending: asc,
	}
	if p := s.Portfolio(); p != nil {
		t.Total = len(p.Holdings)
	}
	return t
}

// dashboard renders the dashboard of the portfolio loaded in s.
func dashboard(cfg *config.Config, s *analyzer.Session, source string) string {
	return renderer.RenderDashboard(renderer.Dashboard{
		Portfolio: s.Portfolio(),
		Table:     sessionTable(s),
		TopN:      cfg.TopN,
		Source:    source,
	})
}
