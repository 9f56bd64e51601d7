package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"recipefinder/internal/domain"
	"recipefinder/internal/ui/logic"
)

// ResultRenderer handles rendering of recipe cards in the result list
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderCard renders one recipe card as a single line of the given width
func (r *ResultRenderer) RenderCard(card domain.RecipeCard, isSelected bool, width int) string {
	stars := Stars(card.Rating)
	duration := FormatTime(card.TimeInMinutes)

	// "▶ " + title + "  " + stars + "  " + duration
	fixed := 2 + 2 + runewidth.StringWidth(stars) + 2 + runewidth.StringWidth(duration)
	titleWidth := width - fixed
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := runewidth.FillRight(runewidth.Truncate(card.Title, titleWidth, "…"), titleWidth)

	base := lipgloss.NewStyle()
	ratingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(RatingColor(card.Rating)))
	timeStyle := r.styles.Time
	cursor := "  "
	if isSelected {
		cursor = "▶ "
		base = base.Inherit(r.styles.SelectionBg).Bold(true)
		ratingStyle = ratingStyle.Inherit(r.styles.SelectionBg)
		timeStyle = timeStyle.Inherit(r.styles.SelectionBg)
	}

	return base.Render(cursor+title+"  ") +
		ratingStyle.Render(stars) +
		base.Render("  ") +
		timeStyle.Render(duration)
}

// Summary describes the loaded slice of a search
func (r *ResultRenderer) Summary(query, sort string, loaded, total int) string {
	if total == 0 {
		return r.styles.Summary.Render(fmt.Sprintf("No recipes found for %q", query))
	}
	return r.styles.Summary.Render(fmt.Sprintf("%d of %d recipes for %q · sorted by %s", loaded, total, query, sort))
}

// RenderList renders the visible slice of cards with scroll indicators
func (r *ResultRenderer) RenderList(cards []domain.RecipeCard, selected, offset, height, width int, hasMore bool) string {
	var lines []string
	rows := logic.VisibleRows(offset, height, len(cards))

	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + rows
	if end > len(cards) {
		end = len(cards)
	}
	for i := offset; i < end; i++ {
		lines = append(lines, r.RenderCard(cards[i], i == selected, width))
	}

	below := len(cards) - end
	switch {
	case below > 0:
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	case hasMore && len(lines) < height:
		lines = append(lines, r.styles.Scroll.Render("↓ more on the server ↓"))
	}

	return strings.Join(lines, "\n")
}
