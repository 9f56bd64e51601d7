package suggest

import (
	"fmt"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"recipefinder/internal/domain"
)

// State is the focus state of the search field
type State int

const (
	Idle State = iota
	FocusedEmpty
	FocusedTyping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case FocusedEmpty:
		return "focused-empty"
	case FocusedTyping:
		return "focused-typing"
	default:
		return "unknown"
	}
}

// DebounceMsg fires once typing has paused for the configured delay
type DebounceMsg struct {
	Phrase string
}

// Submission is what the field asks the router to do on submit
type Submission struct {
	Kind     domain.NavigationKind
	RecipeID int
	Query    string
	Target   string
}

// RecipeTarget is the route of a single recipe
func RecipeTarget(id int) string {
	return fmt.Sprintf("/recipes/%d", id)
}

// SearchTarget is the route of a full-text search
func SearchTarget(query string) string {
	return "/recipes?" + url.Values{"query": {query}}.Encode()
}

// Controller owns all state of one search field instance
type Controller struct {
	state    State
	phrase   string
	list     *ListState
	fetcher  *Fetcher
	debounce time.Duration
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithDebounce delays fetching until typing pauses for d
func WithDebounce(d time.Duration) ControllerOption {
	return func(c *Controller) { c.debounce = d }
}

// NewController creates an idle controller using fetcher
func NewController(fetcher *Fetcher, opts ...ControllerOption) *Controller {
	c := &Controller{
		state:   Idle,
		list:    NewListState(),
		fetcher: fetcher,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Focus moves an idle field into a focused state. A restored phrase
// re-requests its suggestions.
func (c *Controller) Focus() tea.Cmd {
	if c.state != Idle {
		return nil
	}
	if c.phrase == "" {
		c.state = FocusedEmpty
		return nil
	}
	c.state = FocusedTyping
	return c.fetcher.Request(c.phrase)
}

// Blur returns the field to Idle unless focus moved to another part of
// the same control.
func (c *Controller) Blur(withinControl bool) {
	if withinControl || c.state == Idle {
		return
	}
	c.state = Idle
	c.list.Clear()
}

// SetText applies a free-text edit. Any highlight is dropped first.
func (c *Controller) SetText(text string) tea.Cmd {
	c.list.ClearHighlight()
	if text == c.phrase {
		return nil
	}
	c.phrase = text

	if c.state == Idle {
		return nil
	}

	if text == "" {
		c.state = FocusedEmpty
		c.list.Clear()
		c.fetcher.Request("")
		return nil
	}

	c.state = FocusedTyping
	if c.debounce > 0 {
		c.fetcher.Invalidate(text)
		return tea.Tick(c.debounce, func(time.Time) tea.Msg {
			return DebounceMsg{Phrase: text}
		})
	}
	return c.fetcher.Request(text)
}

// HandleDebounce issues the fetch if the phrase has not changed since
// the tick was scheduled.
func (c *Controller) HandleDebounce(msg DebounceMsg) tea.Cmd {
	if c.state == Idle || msg.Phrase != c.phrase {
		return nil
	}
	return c.fetcher.Request(msg.Phrase)
}

// HandleResult applies a completed fetch. It reports false when the
// result was dropped as stale or arrived while the field was idle.
func (c *Controller) HandleResult(msg ResultMsg) bool {
	current := c.fetcher.Accept(msg)
	if !current || msg.Phrase != c.phrase || c.state == Idle {
		return false
	}
	c.list.SetSuggestions(msg.Suggestions)
	return true
}

// Next highlights the next suggestion
func (c *Controller) Next() {
	if c.state == Idle {
		return
	}
	c.list.MoveNext()
}

// Previous highlights the previous suggestion
func (c *Controller) Previous() {
	if c.state == Idle {
		return
	}
	c.list.MovePrevious()
}

// SetHighlight highlights the row under the pointer
func (c *Controller) SetHighlight(i int) {
	if c.state == Idle {
		return
	}
	c.list.SetHighlight(i)
}

// ClearHighlight drops the highlight when the pointer leaves the panel
func (c *Controller) ClearHighlight() {
	c.list.ClearHighlight()
}

// Submit resolves the field into a navigation. An empty phrase with no
// highlighted suggestion is suppressed.
func (c *Controller) Submit() (Submission, bool) {
	var sub Submission
	if s, ok := c.list.Highlighted(); ok {
		sub = Submission{
			Kind:     domain.NavigateRecipe,
			RecipeID: s.ID,
			Query:    s.Name,
			Target:   RecipeTarget(s.ID),
		}
	} else if c.phrase != "" {
		sub = Submission{
			Kind:   domain.NavigateSearch,
			Query:  c.phrase,
			Target: SearchTarget(c.phrase),
		}
	} else {
		return Submission{}, false
	}

	c.state = Idle
	c.list.Clear()
	return sub, true
}

// Reset clears the phrase when leaving the search context
func (c *Controller) Reset() {
	c.state = Idle
	c.phrase = ""
	c.list.Clear()
	c.fetcher.Reset()
}

// DisplayValue is the text the input box should show
func (c *Controller) DisplayValue() string {
	return DisplayValue(c.phrase, c.list.items, c.list.highlight)
}

// State returns the focus state
func (c *Controller) State() State {
	return c.state
}

// Focused reports whether the field has focus
func (c *Controller) Focused() bool {
	return c.state != Idle
}

// Phrase returns the free-typed text
func (c *Controller) Phrase() string {
	return c.phrase
}

// Highlight returns the highlighted index
func (c *Controller) Highlight() Highlight {
	return c.list.Highlight()
}

// Suggestions returns the current candidates
func (c *Controller) Suggestions() []domain.Suggestion {
	return c.list.Suggestions()
}

// OverlayVisible reports whether the suggestion panel should be drawn
func (c *Controller) OverlayVisible() bool {
	return c.state != Idle && c.phrase != "" && c.list.Len() > 0
}

// Fetcher exposes the underlying fetcher
func (c *Controller) Fetcher() *Fetcher {
	return c.fetcher
}
