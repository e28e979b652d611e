package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/config"
)

// sourceFlags selects the portfolio a command works on.
type sourceFlags struct {
	in   string // JSON document
	path string // JSONPath of the portfolio inside in
	csv  string // holdings CSV, as written by export
}

func (s *sourceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.in, "in", "", "JSON document holding the portfolio (defaults to the sample portfolio)")
	f.StringVar(&s.path, "path", "$", "JSONPath of the portfolio inside the -in document")
	f.StringVar(&s.csv, "csv", "", "Holdings CSV file, as written by the export command")
}

// load returns the selected portfolio.
func (s *sourceFlags) load(cfg *config.Config) (*analyzer.Portfolio, error) {
	switch {
	case s.in != "" && s.csv != "":
		return nil, fmt.Errorf("-in and -csv are mutually exclusive")
	case s.in != "":
		f, err := os.Open(s.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		p, err := analyzer.DecodePortfolio(f, s.path)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", s.in, err)
		}
		if p.Currency == "" {
			p.SetCurrency(cfg.Currency)
		}
		return p, nil
	case s.csv != "":
		f, err := os.Open(s.csv)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		holdings, err := analyzer.ImportCSV(f, cfg.Currency)
		if err != nil {
			return nil, fmt.Errorf("importing %q: %w", s.csv, err)
		}
		return &analyzer.Portfolio{Currency: cfg.Currency, Holdings: holdings}, nil
	default:
		return analyzer.SampleData(), nil
	}
}

// origin describes the selected portfolio in logs.
func (s *sourceFlags) origin() string {
	switch {
	case s.in != "":
		return s.in
	case s.csv != "":
		return s.csv
	default:
		return "demo"
	}
}

// viewFlags are the search and sort applied to the holdings.
type viewFlags struct {
	query string
	sort  string
	desc  bool
}

func (v *viewFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&v.query, "q", "", "Show only holdings whose symbol, company or sector contains the query")
	f.StringVar(&v.sort, "sort", "", "Sort the holdings by a column: symbol, company, sector, quantity, current_value, gain_loss, return_pct")
	f.BoolVar(&v.desc, "desc", false, "Sort in descending order")
}

// apply searches and sorts the holdings of the session.
func (v *viewFlags) apply(s *analyzer.Session) error {
	if v.query != "" {
		s.Search(v.query)
	}
	if v.sort == "" {
		return nil
	}
	key, err := analyzer.ParseSortKey(v.sort)
	if err != nil {
		return err
	}
	_, err = s.Sort(key, !v.desc)
	return err
}
