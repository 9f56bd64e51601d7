package domain

import "time"

// Suggestion is a candidate completion for a partially typed search phrase
type Suggestion struct {
	ID   int
	Name string
}

// RecipeCard is the summary shown in result lists
type RecipeCard struct {
	ID            int
	Href          string
	ImageURL      string
	Title         string
	IsFavorite    bool
	Rating        float64
	TimeInMinutes int
}

// RecipePage is one "load more" slice of search results
type RecipePage struct {
	Cards      []RecipeCard
	TotalCount int
}

// Ingredient is a single line of a recipe's ingredient list
type Ingredient struct {
	Name   string
	Amount *float64 // nil when the provider gives no amount
	Unit   string
}

// InstructionPart is a titled group of steps
type InstructionPart struct {
	Title string
	Steps []string
}

// Credits names the original source of a recipe
type Credits struct {
	Name string
	URL  string
}

// Recipe holds everything the detail view shows
type Recipe struct {
	ID            int
	Title         string
	Description   string
	ImageURL      string
	Credits       Credits
	Ingredients   []Ingredient
	Instructions  []InstructionPart
	IsFavorite    bool
	Portions      int
	Rating        float64
	TimeInMinutes int
}

// FetchRecord describes the most recent completed suggestion fetch
type FetchRecord struct {
	Phrase      string
	Suggestions []Suggestion
	FetchedAt   time.Time
}
