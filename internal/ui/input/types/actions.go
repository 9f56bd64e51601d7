package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// CancelTextAction leaves the search field without submitting
type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Suggestion list actions
type HighlightAction struct {
	Direction string // "next" or "prev"
}

func (a HighlightAction) Type() string { return "highlight" }

// Result list actions
type OpenRecipeAction struct{}

func (a OpenRecipeAction) Type() string { return "open_recipe" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
