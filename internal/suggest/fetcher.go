package suggest

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"recipefinder/internal/domain"
	"recipefinder/internal/logging"
)

// DefaultFetchTimeout bounds a single suggestion request
const DefaultFetchTimeout = 5 * time.Second

// Source retrieves ranked completions for a phrase
type Source interface {
	Suggestions(ctx context.Context, phrase string) ([]domain.Suggestion, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context, phrase string) ([]domain.Suggestion, error)

func (f SourceFunc) Suggestions(ctx context.Context, phrase string) ([]domain.Suggestion, error) {
	return f(ctx, phrase)
}

// ResultMsg carries the outcome of a fetch back to the UI loop.
// A failed fetch has an empty list and a non-nil Err.
type ResultMsg struct {
	Phrase      string
	Suggestions []domain.Suggestion
	Err         error
	Cached      bool

	seq uint64
}

// Fetcher issues suggestion requests and remembers the most recently
// completed one. It is not safe for concurrent use; the commands it returns
// touch only their own captured values.
type Fetcher struct {
	source  Source
	timeout time.Duration
	now     func() time.Time
	logger  *log.Logger

	latest      string
	inflight    string
	inflightSeq uint64
	seq         uint64
	cancel      context.CancelFunc
	cache       *domain.FetchRecord
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithClock replaces time.Now for the fetchedAt timestamp
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) { f.now = now }
}

// WithLogger sets the logger used for fetch failures
func WithLogger(l *log.Logger) FetcherOption {
	return func(f *Fetcher) { f.logger = l }
}

// NewFetcher creates a fetcher reading from source
func NewFetcher(source Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:  source,
		timeout: DefaultFetchTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = logging.New("suggest")
	}
	return f
}

// Request asks for suggestions for phrase. It returns nil when nothing needs
// to happen: the phrase is empty, or the same phrase is already in flight.
// A request for the phrase of the last completed fetch, with no request for
// another phrase in between, is answered from that result.
func (f *Fetcher) Request(phrase string) tea.Cmd {
	if f.cache != nil && f.cache.Phrase != phrase {
		f.cache = nil
	}
	f.latest = phrase

	if phrase == "" {
		f.cancelInflight()
		return nil
	}

	if f.cache != nil {
		rec := *f.cache
		list := append([]domain.Suggestion(nil), rec.Suggestions...)
		return func() tea.Msg {
			return ResultMsg{Phrase: rec.Phrase, Suggestions: list, Cached: true}
		}
	}

	if f.inflight == phrase {
		return nil
	}

	f.cancelInflight()
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	f.seq++
	seq := f.seq
	f.inflight, f.inflightSeq, f.cancel = phrase, seq, cancel

	source := f.source
	return func() tea.Msg {
		defer cancel()
		list, err := source.Suggestions(ctx, phrase)
		if err != nil {
			return ResultMsg{Phrase: phrase, Err: err, seq: seq}
		}
		return ResultMsg{Phrase: phrase, Suggestions: list, seq: seq}
	}
}

// Accept records a completed fetch and reports whether it answers the latest
// requested phrase. Results for any other phrase are stale.
func (f *Fetcher) Accept(msg ResultMsg) bool {
	if !msg.Cached && msg.seq != 0 && msg.seq == f.inflightSeq {
		f.inflight, f.inflightSeq, f.cancel = "", 0, nil
		if msg.Err == nil {
			f.cache = &domain.FetchRecord{
				Phrase:      msg.Phrase,
				Suggestions: append([]domain.Suggestion(nil), msg.Suggestions...),
				FetchedAt:   f.now(),
			}
		}
	}

	// Only superseded calls are ever cancelled
	if errors.Is(msg.Err, context.Canceled) {
		return false
	}

	if msg.Err != nil {
		f.logger.Warn("suggestion fetch failed", "phrase", msg.Phrase, "err", msg.Err)
	}

	return msg.Phrase != "" && msg.Phrase == f.latest
}

// Invalidate drops the cached result unless it is for phrase. Edits that
// are not requested yet still count against reuse.
func (f *Fetcher) Invalidate(phrase string) {
	if f.cache != nil && f.cache.Phrase != phrase {
		f.cache = nil
	}
}

// Reset forgets the current phrase and the cached result
func (f *Fetcher) Reset() {
	f.cancelInflight()
	f.latest = ""
	f.cache = nil
}

// Last returns the most recently completed fetch, if one is still reusable
func (f *Fetcher) Last() (domain.FetchRecord, bool) {
	if f.cache == nil {
		return domain.FetchRecord{}, false
	}
	return *f.cache, true
}

// InFlight returns the phrase currently being fetched
func (f *Fetcher) InFlight() (string, bool) {
	return f.inflight, f.inflight != ""
}

func (f *Fetcher) cancelInflight() {
	if f.cancel != nil {
		f.cancel()
	}
	f.inflight, f.inflightSeq, f.cancel = "", 0, nil
}
