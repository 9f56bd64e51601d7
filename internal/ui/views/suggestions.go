package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"recipefinder/internal/domain"
	"recipefinder/internal/suggest"
)

// OverlayState is everything needed to draw the suggestion panel
type OverlayState struct {
	Position    suggest.Position
	Phrase      string
	Suggestions []domain.Suggestion
	Highlight   suggest.Highlight
	MaxVisible  int
}

// WindowStart is the index of the first suggestion shown when only max rows fit
func WindowStart(n int, highlight suggest.Highlight, max int) int {
	if max <= 0 || n <= max || !highlight.Valid() {
		return 0
	}
	start := int(highlight) - max + 1
	if start < 0 {
		start = 0
	}
	return start
}

func (o OverlayState) visibleCount() int {
	n := len(o.Suggestions)
	if o.MaxVisible > 0 && n > o.MaxVisible {
		return o.MaxVisible
	}
	return n
}

// Height is the panel height in rows, borders included
func (o OverlayState) Height() int {
	if len(o.Suggestions) == 0 {
		return 0
	}
	return o.visibleCount() + 2
}

// RowAt maps a screen cell onto a suggestion index. inPanel is true for any
// cell of the panel, borders included; index is -1 off the rows.
func (o OverlayState) RowAt(x, y int) (index int, inPanel bool) {
	p := o.Position
	if x < p.Left || x >= p.Left+p.Width || y < p.Top || y >= p.Top+o.Height() {
		return -1, false
	}
	row := y - p.Top - 1
	if row < 0 || row >= o.visibleCount() {
		return -1, true
	}
	return WindowStart(len(o.Suggestions), o.Highlight, o.MaxVisible) + row, true
}

// SuggestionRenderer draws the floating suggestion panel
type SuggestionRenderer struct {
	styles *Styles
}

// NewSuggestionRenderer creates a new suggestion renderer
func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{styles: styles}
}

// Render returns the panel as screen lines, width o.Position.Width
func (r *SuggestionRenderer) Render(o OverlayState) []string {
	inner := o.Position.Width - 2
	if inner < 2 || len(o.Suggestions) == 0 {
		return nil
	}

	start := WindowStart(len(o.Suggestions), o.Highlight, o.MaxVisible)
	rows := make([]string, 0, o.visibleCount())
	for i := start; i < start+o.visibleCount(); i++ {
		rows = append(rows, r.renderRow(o.Suggestions[i].Name, o.Phrase, inner, suggest.Highlight(i) == o.Highlight))
	}

	panel := r.styles.Panel.Width(inner).Render(strings.Join(rows, "\n"))
	return strings.Split(panel, "\n")
}

func (r *SuggestionRenderer) renderRow(name, phrase string, width int, highlighted bool) string {
	text := runewidth.Truncate(name, width-1, "…")
	matched := matchedBytes(phrase, text)

	base := lipgloss.NewStyle()
	match := r.styles.Match
	if highlighted {
		base = base.Inherit(r.styles.HighlightBg)
		match = match.Inherit(r.styles.HighlightBg)
	}

	var b strings.Builder
	b.WriteString(base.Render(" "))

	// Render runs of matched and unmatched characters
	var run strings.Builder
	runMatched := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatched {
			b.WriteString(match.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}
	for i, ch := range text {
		if matched[i] != runMatched {
			flush()
			runMatched = matched[i]
		}
		run.WriteRune(ch)
	}
	flush()

	if pad := width - 1 - runewidth.StringWidth(text); pad > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

// matchedBytes returns the byte offsets of text matched by phrase
func matchedBytes(phrase, text string) map[int]bool {
	out := make(map[int]bool)
	if phrase == "" {
		return out
	}
	matches := fuzzy.Find(phrase, []string{text})
	if len(matches) == 0 {
		return out
	}
	for _, i := range byteOffsets(phrase, text, matches[0].MatchedIndexes) {
		out[i] = true
	}
	return out
}

// byteOffsets normalizes match positions to byte offsets. Positions that do
// not land on the phrase's runes in order are read as rune ordinals.
func byteOffsets(phrase, text string, idx []int) []int {
	if landsOnPhrase(phrase, text, idx) {
		return idx
	}
	starts := make([]int, 0, len(text))
	for i := range text {
		starts = append(starts, i)
	}
	out := make([]int, 0, len(idx))
	for _, n := range idx {
		if n >= 0 && n < len(starts) {
			out = append(out, starts[n])
		}
	}
	return out
}

func landsOnPhrase(phrase, text string, idx []int) bool {
	pattern := []rune(phrase)
	if len(pattern) != len(idx) {
		return false
	}
	for k, i := range idx {
		if i < 0 || i >= len(text) || !utf8.RuneStart(text[i]) {
			return false
		}
		r, _ := utf8.DecodeRuneInString(text[i:])
		if !strings.EqualFold(string(r), string(pattern[k])) {
			return false
		}
	}
	return true
}
