package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"recipefinder/internal/domain"
	"recipefinder/internal/suggest"
)

// Page geometry in screen cells
const (
	PageTop       = 1 // Main padding
	PageLeft      = 2
	FieldTop      = PageTop + 2 // below the title and its margin
	FieldHeight   = 3
	ResultsTop    = FieldTop + FieldHeight + 2
	MaxFieldWidth = 60
	footerRows    = 4
)

// FieldWidth is the outer width of the search field box
func FieldWidth(termWidth int) int {
	w := termWidth - 2*PageLeft
	if w > MaxFieldWidth {
		w = MaxFieldWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// FieldRect is where the search field box sits once the page is scrolled by pageOffset rows
func FieldRect(termWidth, pageOffset int) suggest.Rect {
	return suggest.Rect{
		Top:    FieldTop - pageOffset,
		Left:   PageLeft,
		Width:  FieldWidth(termWidth),
		Height: FieldHeight,
	}
}

// ResultsHeight is how many rows the result list may use
func ResultsHeight(termHeight int) int {
	h := termHeight - ResultsTop - footerRows
	if h < 3 {
		h = 3
	}
	return h
}

// MaxPageOffset is how far a flow-mode page can scroll: just past the field
func MaxPageOffset() int {
	return FieldTop + FieldHeight
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Field          string
	FieldFocused   bool
	Searching      bool
	LoadingMore    bool
	LoadingRecipe  bool
	Searched       bool
	Query          string
	Sort           string
	Cards          []domain.RecipeCard
	Total          int
	HasMore        bool
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	StatusIsError  bool
	HelpView       string
	PageOffset     int
	Overlay        *OverlayState
	RecipeDetail   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	resultRender  *ResultRenderer
	suggestRender *SuggestionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		resultRender:  NewResultRenderer(styles),
		suggestRender: NewSuggestionRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	fieldStyle := r.styles.Field
	if state.FieldFocused {
		fieldStyle = r.styles.FieldFocused
	}
	content.WriteString(fieldStyle.Width(FieldWidth(state.Width) - 2).Render(state.Field))
	content.WriteString("\n")

	switch {
	case state.Searching:
		content.WriteString(r.styles.StatusLoading.Render(fmt.Sprintf("Searching for %q...", state.Query)))
	case state.Searched:
		content.WriteString(r.resultRender.Summary(state.Query, state.Sort, len(state.Cards), state.Total))
	default:
		content.WriteString(r.styles.Dim.Render("Press / to search for recipes"))
	}
	content.WriteString("\n\n")

	if len(state.Cards) > 0 {
		content.WriteString(r.resultRender.RenderList(
			state.Cards, state.SelectedIndex, state.ViewportOffset,
			state.ViewportHeight, state.Width-2*PageLeft, state.HasMore))
	}

	// Push the status line and help to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2*PageTop
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - strings.Count(footer, "\n") - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	page := r.styles.Main.Render(content.String())
	page = scrollPage(page, state.PageOffset, state.Height)

	if state.Overlay != nil {
		panel := r.suggestRender.Render(*state.Overlay)
		page = PlaceOverlay(page, panel, state.Overlay.Position.Left, state.Overlay.Position.Top)
	}

	if state.RecipeDetail != "" {
		return RenderPopup(page, state.RecipeDetail, state.Height, state.Width, r.styles.InfoBox)
	}
	return page
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("recipefinder")

	var indicators []string
	if state.Searching || state.LoadingMore || state.LoadingRecipe {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		switch {
		case state.LoadingRecipe:
			indicators = append(indicators, spinner[frame]+" Loading recipe")
		case state.LoadingMore:
			indicators = append(indicators, spinner[frame]+" Loading more")
		default:
			indicators = append(indicators, spinner[frame]+" Searching")
		}
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	padding := state.Width - 2*PageLeft - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	// Title carries a bottom margin, so join on its first line only
	lines := strings.SplitN(logo, "\n", 2)
	lines[0] += strings.Repeat(" ", padding) + right
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	status := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			status = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			status = r.styles.StatusSuccess.Render(state.StatusMessage)
		}
	}
	return status + "\n" + r.styles.Help.Render(state.HelpView)
}

// scrollPage drops the first offset rows of page and pads the bottom to height
func scrollPage(page string, offset, height int) string {
	if offset <= 0 {
		return page
	}
	lines := strings.Split(page, "\n")
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
