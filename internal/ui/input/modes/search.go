package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipefinder/internal/ui/input/types"
)

// SearchMode edits the search phrase and walks the suggestion list
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "> ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "down", "ctrl+n":
		return []types.Action{types.HighlightAction{Direction: "next"}}, true
	case "up", "ctrl+p":
		return []types.Action{types.HighlightAction{Direction: "prev"}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
