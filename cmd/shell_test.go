package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/config"
	"github.com/rs/zerolog"
)

func newTestShell() (*shell, *bytes.Buffer) {
	var out bytes.Buffer
	return &shell{
		cfg:      config.NewDefaultConfig(),
		session:  analyzer.NewSession(zerolog.Nop(), 0),
		out:      &out,
		markdown: plainMarkdown,
	}, &out
}

func TestShell_SearchSortExport(t *testing.T) {
	sh, out := newTestShell()
	script := "demo\nsearch tech\nsort gain_loss\nsort gain_loss\nexport -\nquit\nshow\n"
	if err := sh.run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"# Portfolio Analysis",
		"Analysis of demo for client N534952.",
		`3 of 12 holdings match "tech".`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q", want)
		}
	}

	// export - prints the display, sorted by gain/loss descending.
	csv := got[strings.Index(got, analyzer.ExportHeader[0]+","):]
	wantCSV := `Symbol,Company,Sector,Quantity,Current Value,Gain/Loss,Return %
INFY,"Infosys Ltd","Information Technology",75,112875,8750,8.41
WIPRO,"Wipro Ltd","Information Technology",90,43200,2800,6.94
TCS,"Tata Consultancy","Information Technology",50,180500,-5500,-2.96
`
	if csv != wantCSV {
		t.Errorf("export - =\n%s\nwant\n%s", csv, wantCSV)
	}

	// quit stops before show.
	if n := strings.Count(got, "# Portfolio Analysis"); n != 1 {
		t.Errorf("dashboard printed %d times, want 1", n)
	}
}

func TestShell_Errors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"search tech", "no portfolio loaded"},
		{"sort symbol", "no portfolio loaded"},
		{"show", "no portfolio loaded"},
		{"export", "no portfolio loaded"},
		{"analyze", "select a file first"},
		{"analyze holdings.pdf", "Excel file"},
		{"frobnicate", `unknown command "frobnicate"`},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			sh, _ := newTestShell()
			_, err := sh.exec(context.Background(), tc.line)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("exec(%q) error = %v, want containing %q", tc.line, err, tc.want)
			}
		})
	}
}

func TestShell_InvalidSortKey(t *testing.T) {
	sh, _ := newTestShell()
	sh.exec(context.Background(), "demo")
	if _, err := sh.exec(context.Background(), "sort price"); err == nil {
		t.Errorf("sort price succeeded, want an error")
	}
	if key, _ := sh.session.SortOrder(); key != analyzer.NoSort {
		t.Errorf("sort order = %v after an invalid key, want none", key)
	}
}

func TestShell_Analyze(t *testing.T) {
	name := filepath.Join(t.TempDir(), "Holdings.xlsx")
	if err := os.WriteFile(name, []byte("PK"), 0644); err != nil {
		t.Fatal(err)
	}

	sh, out := newTestShell()
	if _, err := sh.exec(context.Background(), "analyze "+name); err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out.String(), "Analysis of Holdings.xlsx for client N534952.") {
		t.Errorf("analyze output =\n%s", out)
	}

	out.Reset()
	sh.exec(context.Background(), "clear")
	if sh.session.Portfolio() != nil {
		t.Errorf("clear kept the portfolio")
	}
	if _, ok := sh.session.Upload(); ok {
		t.Errorf("clear kept the selected file")
	}
}

func TestShell_Unselect(t *testing.T) {
	name := filepath.Join(t.TempDir(), "Holdings.xlsx")
	if err := os.WriteFile(name, []byte("PK"), 0644); err != nil {
		t.Fatal(err)
	}

	sh, out := newTestShell()
	if _, err := sh.exec(context.Background(), "unselect"); !errors.Is(err, analyzer.ErrNoFile) {
		t.Errorf("unselect without a file error = %v, want ErrNoFile", err)
	}
	if _, err := sh.exec(context.Background(), "analyze "+name); err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	out.Reset()
	if _, err := sh.exec(context.Background(), "unselect"); err != nil {
		t.Fatalf("unselect error = %v", err)
	}
	if !strings.Contains(out.String(), "Unselected Holdings.xlsx (2 B).") {
		t.Errorf("unselect output = %q", out)
	}
	if _, ok := sh.session.Upload(); ok {
		t.Errorf("unselect kept the selected file")
	}
	if sh.session.Portfolio() == nil {
		t.Errorf("unselect dropped the portfolio")
	}
}

func TestShell_ExportFile(t *testing.T) {
	dir := t.TempDir()
	sh, out := newTestShell()
	sh.cfg.ExportFile = filepath.Join(dir, "portfolio_analysis.csv")

	sh.exec(context.Background(), "demo")
	sh.exec(context.Background(), "search pharma")
	if _, err := sh.exec(context.Background(), "export"); err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out.String(), "Exported 2 holdings to ") {
		t.Errorf("export output = %s", out)
	}

	data, err := os.ReadFile(sh.cfg.ExportFile)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 3 {
		t.Errorf("export has %d lines, want 3", lines)
	}
}
