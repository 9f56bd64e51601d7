package input

import (
	"recipefinder/internal/logic"
	"recipefinder/internal/suggest"
	"recipefinder/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Store      logic.RecipeStore
	Controller *suggest.Controller
}

// CurrentIndex returns the cursor position in the result list
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of loaded results
func (c *ModelContext) TotalItems() int {
	if c.Store == nil {
		return 0
	}
	return len(c.Store.Cards())
}

// HasResults reports whether the result list has anything to act on
func (c *ModelContext) HasResults() bool {
	return c.TotalItems() > 0
}

// SearchPhrase returns the free-typed text of the search field
func (c *ModelContext) SearchPhrase() string {
	if c.Controller == nil {
		return ""
	}
	return c.Controller.Phrase()
}

// OverlayVisible reports whether the suggestion panel is showing
func (c *ModelContext) OverlayVisible() bool {
	return c.Controller != nil && c.Controller.OverlayVisible()
}
