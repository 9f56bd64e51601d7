package api

import "recipefinder/internal/domain"

// Envelope is the shape of every /api response: data on success, error on
// failure. Upstream failures still answer 200.
type Envelope[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
}

// SuggestionJSON is one entry of /api/search-suggestions
type SuggestionJSON struct {
	SuggestionID   int    `json:"suggestionId"`
	SuggestionName string `json:"suggestionName"`
}

// RecipeCardJSON is one entry of /api/recipes
type RecipeCardJSON struct {
	ID            int     `json:"id"`
	Href          string  `json:"href"`
	ImageURL      string  `json:"imageURL"`
	Title         string  `json:"title"`
	IsFavorite    bool    `json:"isFavorite"`
	Rating        float64 `json:"rating"`
	TimeInMinutes int     `json:"timeInMinutes"`
}

// RecipesJSON is the data of /api/recipes
type RecipesJSON struct {
	CardsInfo              []RecipeCardJSON `json:"cardsInfo"`
	TotalRecipesFoundCount int              `json:"totalRecipesFoundCount"`
}

type IngredientJSON struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   string   `json:"unit"`
}

type InstructionPartJSON struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type CreditsJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RecipeJSON is the data of /api/recipes/{id}
type RecipeJSON struct {
	ID            int                   `json:"id"`
	Credits       CreditsJSON           `json:"credits"`
	Description   string                `json:"description"`
	ImageURL      string                `json:"imageUrl"`
	Ingredients   []IngredientJSON      `json:"ingredients"`
	Instructions  []InstructionPartJSON `json:"instructions"`
	IsFavorite    bool                  `json:"isFavorite"`
	Portions      int                   `json:"portions"`
	Rating        float64               `json:"rating"`
	TimeInMinutes int                   `json:"timeInMinutes"`
	Title         string                `json:"title"`
}

// SuggestionsToJSON converts domain suggestions to their wire form
func SuggestionsToJSON(list []domain.Suggestion) []SuggestionJSON {
	out := make([]SuggestionJSON, 0, len(list))
	for _, s := range list {
		out = append(out, SuggestionJSON{SuggestionID: s.ID, SuggestionName: s.Name})
	}
	return out
}

func suggestionsFromJSON(list []SuggestionJSON) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(list))
	for _, s := range list {
		out = append(out, domain.Suggestion{ID: s.SuggestionID, Name: s.SuggestionName})
	}
	return out
}

// PageToJSON converts a result page to its wire form
func PageToJSON(p domain.RecipePage) RecipesJSON {
	cards := make([]RecipeCardJSON, 0, len(p.Cards))
	for _, c := range p.Cards {
		cards = append(cards, RecipeCardJSON{
			ID:            c.ID,
			Href:          c.Href,
			ImageURL:      c.ImageURL,
			Title:         c.Title,
			IsFavorite:    c.IsFavorite,
			Rating:        c.Rating,
			TimeInMinutes: c.TimeInMinutes,
		})
	}
	return RecipesJSON{CardsInfo: cards, TotalRecipesFoundCount: p.TotalCount}
}

func pageFromJSON(r RecipesJSON) domain.RecipePage {
	cards := make([]domain.RecipeCard, 0, len(r.CardsInfo))
	for _, c := range r.CardsInfo {
		cards = append(cards, domain.RecipeCard{
			ID:            c.ID,
			Href:          c.Href,
			ImageURL:      c.ImageURL,
			Title:         c.Title,
			IsFavorite:    c.IsFavorite,
			Rating:        c.Rating,
			TimeInMinutes: c.TimeInMinutes,
		})
	}
	return domain.RecipePage{Cards: cards, TotalCount: r.TotalRecipesFoundCount}
}

// RecipeToJSON converts a recipe to its wire form
func RecipeToJSON(r domain.Recipe) RecipeJSON {
	out := RecipeJSON{
		ID:            r.ID,
		Credits:       CreditsJSON{Name: r.Credits.Name, URL: r.Credits.URL},
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Ingredients:   make([]IngredientJSON, 0, len(r.Ingredients)),
		Instructions:  make([]InstructionPartJSON, 0, len(r.Instructions)),
		IsFavorite:    r.IsFavorite,
		Portions:      r.Portions,
		Rating:        r.Rating,
		TimeInMinutes: r.TimeInMinutes,
		Title:         r.Title,
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, IngredientJSON{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
	}
	for _, part := range r.Instructions {
		out.Instructions = append(out.Instructions, InstructionPartJSON{Title: part.Title, Steps: part.Steps})
	}
	return out
}

func recipeFromJSON(r RecipeJSON) domain.Recipe {
	out := domain.Recipe{
		ID:            r.ID,
		Credits:       domain.Credits{Name: r.Credits.Name, URL: r.Credits.URL},
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		IsFavorite:    r.IsFavorite,
		Portions:      r.Portions,
		Rating:        r.Rating,
		TimeInMinutes: r.TimeInMinutes,
		Title:         r.Title,
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, domain.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
	}
	for _, part := range r.Instructions {
		out.Instructions = append(out.Instructions, domain.InstructionPart{Title: part.Title, Steps: part.Steps})
	}
	return out
}
