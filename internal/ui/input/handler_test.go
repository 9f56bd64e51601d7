package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipefinder/internal/domain"
	"recipefinder/internal/logic"
	"recipefinder/internal/ui/input/types"
	"recipefinder/internal/ui/state"
)

func testContext(cards int) *ModelContext {
	store := logic.NewMemoryRecipeStore()
	page := domain.RecipePage{TotalCount: cards}
	for i := 0; i < cards; i++ {
		page.Cards = append(page.Cards, domain.RecipeCard{ID: i + 1})
	}
	if cards > 0 {
		store.Append(page)
	}
	return &ModelContext{State: state.NewAppState(), Store: store}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashEntersSearchMode(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(key("/"), testContext(0))

	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestTypingReportsTextChanges(t *testing.T) {
	h := New()
	ctx := testContext(0)
	h.HandleKey(key("/"), ctx)

	actions, _ := h.HandleKey(key("p"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "p"}, actions[0])

	// Cursor movement changes nothing
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Empty(t, actions)
}

func TestSearchModeKeys(t *testing.T) {
	h := New()
	ctx := testContext(0)
	h.HandleKey(key("/"), ctx)
	h.SetText("pasta")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.HighlightAction{Direction: "next"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlP}, ctx)
	assert.Equal(t, []types.Action{types.HighlightAction{Direction: "prev"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "pasta", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode(), "submitting does not leave the mode by itself")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestNormalModeKeys(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(key("j"), testContext(3))
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(key("G"), testContext(3))
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, testContext(3))
	assert.Equal(t, []types.Action{types.OpenRecipeAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, testContext(0))
	assert.Empty(t, actions, "nothing to open")

	actions, _ = h.HandleKey(key("q"), testContext(0))
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}

func TestDoubleGJumpsToTop(t *testing.T) {
	h := New()
	ctx := testContext(3)

	actions, _ := h.HandleKey(key("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(key("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestChangeModeRestoresText(t *testing.T) {
	h := New()
	cmd := h.ChangeMode(types.ModeSearch, "soup", testContext(0))

	assert.NotNil(t, cmd)
	assert.Equal(t, "soup", h.Value())
	assert.Nil(t, h.ChangeMode(types.ModeSearch, "other", testContext(0)))
	assert.Equal(t, "soup", h.Value())
}
