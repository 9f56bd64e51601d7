package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recipefinder/internal/domain"
)

// FormatTime renders a duration as "X h Y min" or "Y min"
func FormatTime(minutes int) string {
	hours := minutes / 60
	mins := minutes - hours*60
	if hours > 0 {
		return fmt.Sprintf("%d h %d min", hours, mins)
	}
	return fmt.Sprintf("%d min", mins)
}

// Stars renders a 0-10 rating as five stars with halves
func Stars(rating float64) string {
	scaled := math.Round(rating) / 2
	if scaled > 5 {
		scaled = 5
	}
	if scaled < 0 {
		scaled = 0
	}
	full := int(math.Floor(scaled))
	half := scaled != math.Floor(scaled)

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	empty := 5 - full
	if half {
		b.WriteString("½")
		empty--
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

var quarters = map[int]string{1: "¼", 2: "½", 3: "¾"}

// FormatAmount renders an ingredient amount, using ¼ ½ ¾ for quarter fractions
func FormatAmount(amount *float64) string {
	if amount == nil || *amount == 0 {
		return ""
	}
	a := *amount
	if a == math.Trunc(a) {
		return strconv.FormatFloat(a, 'f', -1, 64)
	}

	whole := math.Trunc(a)
	frac := math.Round((a-whole)*100) / 100
	if q, ok := quarters[int(math.Round(frac/0.25))]; ok && math.Abs(frac-math.Round(frac/0.25)*0.25) < 0.005 {
		if whole == 0 {
			return q
		}
		return strconv.FormatFloat(whole, 'f', -1, 64) + " " + q
	}
	return strconv.FormatFloat(math.Round(a*100)/100, 'f', -1, 64)
}

// FormatCredits names the source of a recipe
func FormatCredits(c domain.Credits) string {
	switch {
	case c.Name == "" && c.URL == "":
		return "By unknown"
	case c.URL == "":
		return "By " + c.Name
	case c.Name == "":
		return "By " + c.URL
	default:
		return fmt.Sprintf("By %s (%s)", c.Name, c.URL)
	}
}

// RecipeDocument renders a recipe as a colored text document for the pager
func RecipeDocument(r domain.Recipe) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var doc strings.Builder

	doc.WriteString(titleStyle.Render(r.Title))
	doc.WriteString("\n\n")
	doc.WriteString(fmt.Sprintf("%s  %s  %d portions\n",
		lipgloss.NewStyle().Foreground(lipgloss.Color(RatingColor(r.Rating))).Render(Stars(r.Rating)),
		FormatTime(r.TimeInMinutes),
		r.Portions))
	doc.WriteString(dimStyle.Render(FormatCredits(r.Credits)))
	doc.WriteString("\n")

	if r.Description != "" {
		doc.WriteString("\n")
		doc.WriteString(r.Description)
		doc.WriteString("\n")
	}

	doc.WriteString(sectionStyle.Render("Ingredients"))
	doc.WriteString("\n")
	if len(r.Ingredients) == 0 {
		doc.WriteString(dimStyle.Render("  No ingredients listed"))
		doc.WriteString("\n")
	}
	for _, ing := range r.Ingredients {
		qty := strings.TrimSpace(FormatAmount(ing.Amount) + " " + ing.Unit)
		doc.WriteString(fmt.Sprintf("  %s %s\n", amountStyle.Render(fmt.Sprintf("%-12s", qty)), ing.Name))
	}

	doc.WriteString(sectionStyle.Render("Instructions"))
	doc.WriteString("\n")
	if len(r.Instructions) == 0 {
		doc.WriteString(dimStyle.Render("  No instructions available"))
		doc.WriteString("\n")
	}
	for _, part := range r.Instructions {
		if part.Title != "" {
			doc.WriteString("  " + lipgloss.NewStyle().Bold(true).Render(part.Title) + "\n")
		}
		for i, step := range part.Steps {
			doc.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return doc.String()
}
