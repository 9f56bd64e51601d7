package suggest

import "recipefinder/internal/domain"

// DisplayValue returns the text the input should show: the highlighted
// suggestion's name, or the free-typed text when nothing is highlighted.
func DisplayValue(freeText string, suggestions []domain.Suggestion, highlight Highlight) string {
	if !highlight.Valid() || int(highlight) >= len(suggestions) {
		return freeText
	}
	return suggestions[highlight].Name
}
