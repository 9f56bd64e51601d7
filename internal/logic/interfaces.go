package logic

import "recipefinder/internal/domain"

// RecipeStore holds the result list of the current full-text search
type RecipeStore interface {
	Reset(query string, sort SortMode)
	Append(page domain.RecipePage) int
	Cards() []domain.RecipeCard
	Card(id int) (domain.RecipeCard, bool)
	Query() string
	Sort() SortMode
	Total() int
	HasMore() bool
	NextOffset() int
}

// SortMode is the provider-side ordering of search results
type SortMode int

const (
	SortByRelevance SortMode = iota
	SortByPopularity
	SortByHealthiness
	SortByTime
	SortByPrice
)

var sortParams = [...]string{"", "popularity", "healthiness", "time", "price"}
var sortNames = [...]string{"relevance", "popularity", "healthiness", "time", "price"}

// Param is the value of the sort query parameter
func (s SortMode) Param() string {
	if s < 0 || int(s) >= len(sortParams) {
		return ""
	}
	return sortParams[s]
}

func (s SortMode) String() string {
	if s < 0 || int(s) >= len(sortNames) {
		return "unknown"
	}
	return sortNames[s]
}

// Next cycles to the following sort mode
func (s SortMode) Next() SortMode {
	return (s + 1) % SortMode(len(sortParams))
}

// ParseSort maps a sort query parameter back onto a SortMode; unknown values mean relevance
func ParseSort(param string) SortMode {
	for i, p := range sortParams {
		if p == param {
			return SortMode(i)
		}
	}
	return SortByRelevance
}
