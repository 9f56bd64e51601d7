package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipefinder/internal/domain"
)

func cards(ids ...int) []domain.RecipeCard {
	out := make([]domain.RecipeCard, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.RecipeCard{ID: id})
	}
	return out
}

func TestRecipeStorePaging(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Reset("pasta", SortByPopularity)

	assert.True(t, s.HasMore(), "nothing loaded yet")
	assert.Equal(t, 0, s.NextOffset())

	assert.Equal(t, 2, s.Append(domain.RecipePage{Cards: cards(1, 2), TotalCount: 3}))
	assert.True(t, s.HasMore())
	assert.Equal(t, 2, s.NextOffset())

	assert.Equal(t, 1, s.Append(domain.RecipePage{Cards: cards(3), TotalCount: 3}))
	assert.False(t, s.HasMore())
	assert.Equal(t, "pasta", s.Query())
	assert.Equal(t, SortByPopularity, s.Sort())
}

func TestRecipeStoreSkipsDuplicates(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{Cards: cards(1, 2), TotalCount: 4})

	assert.Equal(t, 1, s.Append(domain.RecipePage{Cards: cards(2, 3), TotalCount: 4}))
	assert.Len(t, s.Cards(), 3)
}

func TestRecipeStoreEmptySearch(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{TotalCount: 0})
	assert.False(t, s.HasMore())
	assert.Empty(t, s.Cards())
}

func TestRecipeStoreResetForgetsResults(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{Cards: cards(1), TotalCount: 1})
	s.Reset("soup", SortByRelevance)

	assert.Empty(t, s.Cards())
	_, ok := s.Card(1)
	assert.False(t, ok)
	assert.True(t, s.HasMore())
}

func TestRecipeStoreCard(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{Cards: []domain.RecipeCard{{ID: 5, Title: "Soup"}}, TotalCount: 1})

	c, ok := s.Card(5)
	require.True(t, ok)
	assert.Equal(t, "Soup", c.Title)
}

func TestSortModeCycle(t *testing.T) {
	m := SortByRelevance
	seen := []string{}
	for i := 0; i < 5; i++ {
		seen = append(seen, m.Param())
		m = m.Next()
	}
	assert.Equal(t, []string{"", "popularity", "healthiness", "time", "price"}, seen)
	assert.Equal(t, SortByRelevance, m)
	assert.Equal(t, "relevance", SortByRelevance.String())
}

func TestRecipeStoreOffsetCountsSkippedCards(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{Cards: cards(1, 2), TotalCount: 10})
	s.Append(domain.RecipePage{Cards: cards(2, 3), TotalCount: 10})

	assert.Equal(t, 4, s.NextOffset())
	assert.Len(t, s.Cards(), 3)
}

func TestRecipeStoreStopsOnEmptyPage(t *testing.T) {
	s := NewMemoryRecipeStore()
	s.Append(domain.RecipePage{Cards: cards(1), TotalCount: 10})
	s.Append(domain.RecipePage{TotalCount: 10})

	assert.False(t, s.HasMore())
}

func TestParseSort(t *testing.T) {
	for m := SortByRelevance; m <= SortByPrice; m++ {
		assert.Equal(t, m, ParseSort(m.Param()))
	}
	assert.Equal(t, SortByRelevance, ParseSort("bogus"))
}
