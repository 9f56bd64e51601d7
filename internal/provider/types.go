package provider

// autocompleteItem is one entry of GET /recipes/autocomplete
type autocompleteItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	ImageType string `json:"imageType"`
}

// complexSearchResponse is the body of GET /recipes/complexSearch
type complexSearchResponse struct {
	Offset  int `json:"offset"`
	Number  int `json:"number"`
	Results []struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		Image     string `json:"image"`
		ImageType string `json:"imageType"`
	} `json:"results"`
	TotalResults int `json:"totalResults"`
}

type extendedIngredient struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   string   `json:"unit"`
}

type instructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

type analyzedInstruction struct {
	Name  string            `json:"name"`
	Steps []instructionStep `json:"steps"`
}

// recipeInformation is the body of GET /recipes/{id}/information and one
// entry of GET /recipes/informationBulk
type recipeInformation struct {
	ID                   int                   `json:"id"`
	Title                string                `json:"title"`
	Image                string                `json:"image"`
	ImageType            string                `json:"imageType"`
	Servings             int                   `json:"servings"`
	ReadyInMinutes       int                   `json:"readyInMinutes"`
	SourceName           string                `json:"sourceName"`
	SourceURL            string                `json:"sourceUrl"`
	SpoonacularScore     *float64              `json:"spoonacularScore"`
	Summary              string                `json:"summary"`
	ExtendedIngredients  []extendedIngredient  `json:"extendedIngredients"`
	AnalyzedInstructions []analyzedInstruction `json:"analyzedInstructions"`
}
