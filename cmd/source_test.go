package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/config"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, name string, write func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSourceFlags_Load(t *testing.T) {
	cfg := config.NewDefaultConfig()
	sample := analyzer.SampleData()

	jsonFile := writeFile(t, "sample.json", func(f *os.File) error { return analyzer.EncodePortfolio(f, sample) })
	csvFile := writeFile(t, "holdings.csv", func(f *os.File) error { return analyzer.ExportCSV(f, sample.Holdings) })

	tests := []struct {
		name   string
		flags  sourceFlags
		origin string
	}{
		{"default", sourceFlags{path: "$"}, "demo"},
		{"json", sourceFlags{in: jsonFile, path: "$"}, jsonFile},
		{"csv", sourceFlags{csv: csvFile, path: "$"}, csvFile},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.flags.load(cfg)
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			if diff := cmp.Diff(analyzer.Symbols(sample.Holdings), analyzer.Symbols(p.Holdings)); diff != "" {
				t.Errorf("load() symbols mismatch (-want +got):\n%s", diff)
			}
			if got := tc.flags.origin(); got != tc.origin {
				t.Errorf("origin() = %q, want %q", got, tc.origin)
			}
		})
	}
}

func TestSourceFlags_LoadCurrency(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Currency = "USD"

	holdings := []analyzer.Holding{{
		Symbol:       "ACME",
		Company:      "Acme Corp",
		Sector:       "Tools",
		Quantity:     analyzer.Q(10),
		CurrentValue: analyzer.M(1500, ""),
		GainLoss:     analyzer.M(-20, ""),
		ReturnPct:    analyzer.P(-1.3),
	}}
	jsonFile := writeFile(t, "acme.json", func(f *os.File) error {
		return analyzer.EncodePortfolio(f, &analyzer.Portfolio{Holdings: holdings})
	})
	csvFile := writeFile(t, "acme.csv", func(f *os.File) error { return analyzer.ExportCSV(f, holdings) })

	for _, flags := range []sourceFlags{{in: jsonFile, path: "$"}, {csv: csvFile, path: "$"}} {
		p, err := flags.load(cfg)
		if err != nil {
			t.Fatalf("load(%s) error = %v", flags.origin(), err)
		}
		if p.Currency != "USD" {
			t.Errorf("load(%s) Currency = %q, want USD", flags.origin(), p.Currency)
		}
		h := p.Holdings[0]
		if got := h.CurrentValue.Currency(); got != "USD" {
			t.Errorf("load(%s) CurrentValue.Currency() = %q, want USD", flags.origin(), got)
		}
		if got := h.CurrentValue.String(); got != "$1,500" {
			t.Errorf("load(%s) CurrentValue = %q, want $1,500", flags.origin(), got)
		}
	}
}

func TestSourceFlags_LoadErrors(t *testing.T) {
	cfg := config.NewDefaultConfig()
	bad := writeFile(t, "bad.json", func(f *os.File) error {
		_, err := f.WriteString(`{"holdings": [{"symbol": "A", "quantity": 1.5}]}`)
		return err
	})

	if _, err := (&sourceFlags{in: "a.json", csv: "b.csv"}).load(cfg); err == nil {
		t.Errorf("load() with -in and -csv succeeded, want an error")
	}
	if _, err := (&sourceFlags{in: filepath.Join(t.TempDir(), "missing.json"), path: "$"}).load(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("load() of a missing file error = %v, want not exist", err)
	}
	if _, err := (&sourceFlags{in: bad, path: "$"}).load(cfg); !errors.Is(err, analyzer.ErrInvalidPortfolio) {
		t.Errorf("load() of a fractional quantity error = %v, want ErrInvalidPortfolio", err)
	}
}

func TestViewFlags_Apply(t *testing.T) {
	s := analyzer.NewSession(zerolog.Nop(), 0)
	s.Demo()

	if err := (&viewFlags{query: "pharma", sort: "return_pct"}).apply(s); err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"CUPID", "SUVEN"}, analyzer.Symbols(s.Display())); diff != "" {
		t.Errorf("display mismatch (-want +got):\n%s", diff)
	}

	err := (&viewFlags{sort: "price"}).apply(s)
	if !errors.Is(err, analyzer.ErrInvalidSortKey) {
		t.Errorf("apply() with sort price error = %v, want ErrInvalidSortKey", err)
	}
}

func TestSessionTable(t *testing.T) {
	s := analyzer.NewSession(zerolog.Nop(), 0)
	if got := sessionTable(s); got.Total != 0 || len(got.Display) != 0 {
		t.Errorf("sessionTable() of an empty session = %+v", got)
	}

	s.Demo()
	s.Search("TECH")
	s.Sort(analyzer.BySymbol, false)
	got := sessionTable(s)
	if got.Total != 12 || len(got.Display) != 3 || got.Query != "TECH" || got.SortKey != analyzer.BySymbol || got.Ascending {
		t.Errorf("sessionTable() = %+v", got)
	}
	if md := dashboard(config.NewDefaultConfig(), s, "demo"); !strings.Contains(md, `3 of 12 holdings match "TECH".`) {
		t.Errorf("dashboard() =\n%s", md)
	}
}
