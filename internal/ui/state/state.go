package state

import "recipefinder/internal/domain"

// AppState contains all the application state that is not owned by the
// search field controller or the result store
type AppState struct {
	// Selection state
	SelectedIndex int // cursor in the result list

	// UI state
	ViewportOffset int    // offset for scrolling the result list
	ViewportHeight int    // available height for the result list
	PageOffset     int    // rows the whole page is scrolled up by (flow overlays)
	StatusMessage  string // status bar message
	StatusIsError  bool

	// Loading state
	Searching     bool // first page of a search is loading
	LoadingMore   bool // a further page is loading
	LoadingRecipe int  // id of the recipe being fetched, 0 when none

	// Recipe detail shown inline when the pager is unavailable
	Recipe *domain.Recipe
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// SetStatus shows a message in the status line
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus empties the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ResetResults moves the cursor back to the top of a fresh result list
func (s *AppState) ResetResults() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	s.LoadingMore = false
}

// Busy reports whether any request is outstanding
func (s *AppState) Busy() bool {
	return s.Searching || s.LoadingMore || s.LoadingRecipe != 0
}
