package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSuperseded is returned by Analyze when another load happened while it was running.
var ErrSuperseded = errors.New("analysis superseded by a newer one")

// Session owns the state of one dashboard: the selected file, the analyzed
// portfolio and the view of its holdings.
//
// Unlike View, a Session is safe for concurrent use. Loads are applied
// atomically and the last one started wins: an analysis that completes after
// a newer load, or a clear, is discarded.
type Session struct {
	log   zerolog.Logger
	delay time.Duration

	mu         sync.Mutex
	generation uint64 // incremented by every load, analysis start and clear
	upload     *Upload
	portfolio  *Portfolio
	runID      string
	view       View
}

// NewSession creates an empty session. Analyze waits delay before producing
// its result, as the processing of a real export would.
func NewSession(log zerolog.Logger, delay time.Duration) *Session {
	return &Session{log: log, delay: delay}
}

// SelectFile validates and remembers the export to analyze.
func (s *Session) SelectFile(name string, size int64) (Upload, error) {
	u, err := NewUpload(name, size)
	if err != nil {
		return Upload{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = &u
	s.log.Debug().Str("file", u.Name).Int64("size", u.Size).Msg("file selected")
	return u, nil
}

// ClearFile forgets the selected file.
func (s *Session) ClearFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = nil
}

// Upload returns the selected file, if any.
func (s *Session) Upload() (Upload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upload == nil {
		return Upload{}, false
	}
	return *s.upload, true
}

// Demo loads the sample portfolio.
func (s *Session) Demo() *Portfolio {
	p := SampleData()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.apply(p, "demo")
	return p
}

// LoadPortfolio loads any valid portfolio, for instance one decoded from a document.
func (s *Session) LoadPortfolio(p *Portfolio, origin string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.apply(p, origin)
	return nil
}

// Analyze analyzes the selected file and loads the result.
//
// Parsing workbooks is not supported: after the processing delay the sample
// portfolio is loaded. Analyze returns ctx.Err() if ctx is done before, and
// ErrSuperseded if another load or a clear started meanwhile.
func (s *Session) Analyze(ctx context.Context) (*Portfolio, error) {
	s.mu.Lock()
	if s.upload == nil {
		s.mu.Unlock()
		return nil, ErrNoFile
	}
	s.generation++
	gen, u := s.generation, *s.upload
	s.mu.Unlock()

	s.log.Info().Str("file", u.Name).Dur("delay", s.delay).Msg("analyzing")
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("analysis of %s interrupted: %w", u.Name, ctx.Err())
	case <-timer.C:
	}

	p := SampleData()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Warn().Str("file", u.Name).Msg("analysis result discarded")
		return nil, ErrSuperseded
	}
	s.apply(p, u.Name)
	return p, nil
}

// apply replaces the portfolio and reloads the view. s.mu must be held.
func (s *Session) apply(p *Portfolio, origin string) {
	s.portfolio = p
	s.runID = uuid.NewString()
	s.view.Load(p.Holdings)
	s.log.Info().Str("run", s.runID).Str("origin", origin).Int("holdings", len(p.Holdings)).Msg("portfolio loaded")
}

// Clear returns to the empty state: no portfolio, no holdings, no file.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.runID != "" {
		s.log.Info().Str("run", s.runID).Msg("analysis cleared")
	}
	s.portfolio = nil
	s.runID = ""
	s.upload = nil
	s.view.Reset()
}

// Portfolio returns the loaded portfolio, nil if none. It must not be modified.
func (s *Session) Portfolio() *Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio
}

// RunID identifies the current load in the logs, empty when nothing is loaded.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Search sets the query of the holdings view.
func (s *Session) Search(query string) []Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.SetQuery(query)
}

// Sort sorts the holdings view.
func (s *Session) Sort(key SortKey, ascending bool) ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Sort(key, ascending)
}

// ToggleSort sorts the holdings view like a click on a column header.
func (s *Session) ToggleSort(key SortKey) ([]Holding, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.ToggleSort(key)
}

// Display returns the displayed holdings.
func (s *Session) Display() []Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Display()
}

// Query returns the current search query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Query()
}

// SortOrder returns the sort of the holdings view.
func (s *Session) SortOrder() (SortKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.SortOrder()
}

// Export writes the displayed holdings in the CSV export format.
func (s *Session) Export(w io.Writer) error {
	s.mu.Lock()
	display := s.view.Display()
	s.mu.Unlock()
	return ExportCSV(w, display)
}
