package ui

import (
	"time"

	"recipefinder/internal/domain"
	"recipefinder/internal/logic"
)

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// recipesLoadedMsg carries one page of a full-text search
type recipesLoadedMsg struct {
	query  string
	sort   logic.SortMode
	offset int
	page   domain.RecipePage
	err    error
}

// recipeLoadedMsg carries the detail of one recipe
type recipeLoadedMsg struct {
	id     int
	recipe domain.Recipe
	err    error
}

// recipePagerMsg reports how showing a recipe in the pager went
type recipePagerMsg struct {
	recipe domain.Recipe
	err    error
}

// clearStatusMsg empties the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
