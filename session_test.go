package analyzer

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSession_Demo(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	p := s.Demo()
	if s.Portfolio() != p {
		t.Errorf("Portfolio() is not the demo portfolio")
	}
	if s.RunID() == "" {
		t.Errorf("RunID() is empty after Demo()")
	}
	if got := len(s.Display()); got != 12 {
		t.Errorf("len(Display()) = %d, want 12", got)
	}
}

func TestSession_AnalyzeRequiresFile(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	if _, err := s.Analyze(context.Background()); !errors.Is(err, ErrNoFile) {
		t.Errorf("Analyze() error = %v, want ErrNoFile", err)
	}
	if _, err := s.SelectFile("export.pdf", 10); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("SelectFile(export.pdf) error = %v, want ErrUnsupportedFile", err)
	}
	if _, ok := s.Upload(); ok {
		t.Errorf("Upload() is set after a rejected file")
	}
}

func TestSession_Analyze(t *testing.T) {
	var logs bytes.Buffer
	s := NewSession(zerolog.New(&logs), time.Millisecond)
	if _, err := s.SelectFile("holdings.xlsx", 2048); err != nil {
		t.Fatalf("SelectFile() error = %v", err)
	}
	p, err := s.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if p.Summary.ClientCode != "N534952" {
		t.Errorf("Analyze() client code = %q, want the sample", p.Summary.ClientCode)
	}
	if !bytes.Contains(logs.Bytes(), []byte(`"origin":"holdings.xlsx"`)) {
		t.Errorf("logs do not mention the analyzed file: %s", logs.String())
	}
}

func TestSession_ClearFile(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	s.Demo()
	if _, err := s.SelectFile("holdings.xlsx", 2048); err != nil {
		t.Fatalf("SelectFile() error = %v", err)
	}
	s.ClearFile()

	if _, ok := s.Upload(); ok {
		t.Errorf("Upload() is set after ClearFile()")
	}
	if s.Portfolio() == nil || len(s.Display()) != 12 {
		t.Errorf("ClearFile() dropped the loaded portfolio")
	}
	if _, err := s.Analyze(context.Background()); !errors.Is(err, ErrNoFile) {
		t.Errorf("Analyze() after ClearFile() error = %v, want ErrNoFile", err)
	}
}

func TestSession_AnalyzeCancelled(t *testing.T) {
	s := NewSession(zerolog.Nop(), time.Hour)
	s.SelectFile("holdings.xlsx", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Analyze(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
	if s.Portfolio() != nil {
		t.Errorf("Portfolio() is set after a cancelled analysis")
	}
}

func TestSession_LastLoadWins(t *testing.T) {
	s := NewSession(zerolog.Nop(), 50*time.Millisecond)
	s.SelectFile("holdings.xlsx", 1)

	var wg sync.WaitGroup
	var analyzeErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, analyzeErr = s.Analyze(context.Background())
	}()

	// wait for the analysis to start, then load something else.
	for s.generationValue() == 0 {
		time.Sleep(time.Millisecond)
	}
	other := &Portfolio{Holdings: []Holding{tcs}}
	if err := s.LoadPortfolio(other, "test"); err != nil {
		t.Fatalf("LoadPortfolio() error = %v", err)
	}
	wg.Wait()

	if !errors.Is(analyzeErr, ErrSuperseded) {
		t.Errorf("Analyze() error = %v, want ErrSuperseded", analyzeErr)
	}
	if s.Portfolio() != other {
		t.Errorf("Portfolio() is not the last loaded portfolio")
	}
}

func TestSession_LoadResetsView(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	s.Demo()
	s.Search("tech")
	s.ToggleSort(ByGainLoss)

	s.Demo()
	if s.Query() != "" {
		t.Errorf("Query() = %q after a new load, want \"\"", s.Query())
	}
	if key, _ := s.SortOrder(); key != NoSort {
		t.Errorf("SortOrder() = %v after a new load, want NoSort", key)
	}
	if got := len(s.Display()); got != 12 {
		t.Errorf("len(Display()) = %d after a new load, want 12", got)
	}
}

func TestSession_Clear(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	s.SelectFile("holdings.xlsx", 1)
	s.Demo()
	s.Clear()
	if s.Portfolio() != nil || s.RunID() != "" || len(s.Display()) != 0 {
		t.Errorf("Clear() left a portfolio")
	}
	if _, ok := s.Upload(); ok {
		t.Errorf("Clear() left the selected file")
	}
	var b bytes.Buffer
	if err := s.Export(&b); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if b.String() != "Symbol,Company,Sector,Quantity,Current Value,Gain/Loss,Return %\n" {
		t.Errorf("Export() after Clear() = %q, want the header only", b.String())
	}
}

func TestSession_SortInvalid(t *testing.T) {
	s := NewSession(zerolog.Nop(), 0)
	s.Demo()
	if _, err := s.Sort(SortKey(99), true); !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("Sort(99) error = %v, want ErrInvalidSortKey", err)
	}
}

// generationValue reads the generation counter for tests.
func (s *Session) generationValue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
