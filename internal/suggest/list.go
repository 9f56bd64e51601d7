// Package suggest implements the autocomplete search field: the suggestion
// list and its highlight, the remote fetcher, the text shown in the input,
// the geometry of the floating panel and the controller tying them together.
//
// Everything in this package runs on the UI goroutine. The only work that
// leaves it is the fetch, which is returned to the caller as a tea.Cmd.
package suggest

import "recipefinder/internal/domain"

// Highlight is the index of the keyboard-selected suggestion, or None.
type Highlight int

// None means the free-typed text is authoritative.
const None Highlight = -1

// Valid reports whether h points at a suggestion
func (h Highlight) Valid() bool {
	return h >= 0
}

// ListState holds the current candidates and the highlighted index.
// The highlight is always None or within [0, Len()-1].
type ListState struct {
	items     []domain.Suggestion
	highlight Highlight
}

// NewListState returns an empty list with no highlight
func NewListState() *ListState {
	return &ListState{highlight: None}
}

// SetSuggestions replaces the candidates and resets the highlight
func (l *ListState) SetSuggestions(list []domain.Suggestion) {
	l.items = append([]domain.Suggestion(nil), list...)
	l.highlight = None
}

// Clear drops all candidates
func (l *ListState) Clear() {
	l.items = nil
	l.highlight = None
}

// MoveNext advances the highlight: None -> 0, last -> None, otherwise +1.
func (l *ListState) MoveNext() {
	n := len(l.items)
	if n == 0 {
		return
	}
	switch {
	case l.highlight == None:
		l.highlight = 0
	case int(l.highlight) == n-1:
		l.highlight = None
	default:
		l.highlight++
	}
}

// MovePrevious is the inverse of MoveNext: None -> last, 0 -> None, otherwise -1.
func (l *ListState) MovePrevious() {
	n := len(l.items)
	if n == 0 {
		return
	}
	switch {
	case l.highlight == None:
		l.highlight = Highlight(n - 1)
	case l.highlight == 0:
		l.highlight = None
	default:
		l.highlight--
	}
}

// SetHighlight highlights index i, or clears the highlight when i is out of range
func (l *ListState) SetHighlight(i int) {
	if i < 0 || i >= len(l.items) {
		l.highlight = None
		return
	}
	l.highlight = Highlight(i)
}

// ClearHighlight returns authority to the free-typed text
func (l *ListState) ClearHighlight() {
	l.highlight = None
}

// Highlight returns the highlighted index
func (l *ListState) Highlight() Highlight {
	return l.highlight
}

// Highlighted returns the highlighted suggestion, if any
func (l *ListState) Highlighted() (domain.Suggestion, bool) {
	if !l.highlight.Valid() {
		return domain.Suggestion{}, false
	}
	return l.items[l.highlight], true
}

// Suggestions returns a copy of the candidates
func (l *ListState) Suggestions() []domain.Suggestion {
	return append([]domain.Suggestion(nil), l.items...)
}

// Len returns the number of candidates
func (l *ListState) Len() int {
	return len(l.items)
}
