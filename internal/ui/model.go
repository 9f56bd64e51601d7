package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"recipefinder/internal/config"
	"recipefinder/internal/domain"
	"recipefinder/internal/eventbus"
	"recipefinder/internal/logging"
	"recipefinder/internal/logic"
	"recipefinder/internal/suggest"
	"recipefinder/internal/ui/input"
	inputtypes "recipefinder/internal/ui/input/types"
	uilogic "recipefinder/internal/ui/logic"
	"recipefinder/internal/ui/state"
	"recipefinder/internal/ui/views"
)

// ReadyMarker is written into the help line when end-to-end tests drive the app
const ReadyMarker = "__READY__"

// RecipeClient loads full-text results and recipe details
type RecipeClient interface {
	Recipes(ctx context.Context, query, sort string, offset int) (domain.RecipePage, error)
	Recipe(ctx context.Context, id int) (domain.Recipe, error)
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width       int
	height      int
	help        help.Model
	inPagerMode bool
	ticking     bool
	inPanel     bool // pointer is over the suggestion panel
	readyMarker bool
	initial     string // target to open on start

	client       RecipeClient
	store        logic.RecipeStore
	controller   *suggest.Controller
	tracker      *suggest.Tracker
	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps
	logger       *log.Logger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. source answers suggestion requests and
// client loads results and recipes; bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, client RecipeClient, source suggest.Source) *Model {
	logger := logging.New("ui")

	fetcher := suggest.NewFetcher(source,
		suggest.WithTimeout(cfg.APITimeout()),
		suggest.WithLogger(logger))

	positioner := suggest.Positioner{
		Threshold: cfg.Suggest.ThresholdColumns,
		Mode:      suggest.ParseMode(cfg.Suggest.OverlayMode),
	}

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		help:         help.New(),
		client:       client,
		store:        logic.NewMemoryRecipeStore(),
		controller:   suggest.NewController(fetcher, suggest.WithDebounce(cfg.DebounceDuration())),
		tracker:      suggest.NewTracker(positioner),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		logger:       logger,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// SetReadyMarker makes the first rendered frame announce itself
func (m *Model) SetReadyMarker(on bool) {
	m.readyMarker = on
}

// OpenOnStart navigates to target once the program starts
func (m *Model) OpenOnStart(target string) {
	m.initial = target
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initial != "" {
		return m.route(m.initial)
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(views.FieldWidth(msg.Width) - 5)
		m.updateViewportHeight()
		m.tracker.Resize(msg.Width)
		m.tracker.Anchor(views.FieldRect(m.width, m.state.PageOffset))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var helpView string
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		helpView = m.help.View(searchKeys)
	} else {
		helpView = m.help.View(normalKeys)
	}
	if m.readyMarker {
		helpView += "  " + ReadyMarker
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Field:          m.inputHandler.View(),
		FieldFocused:   m.controller.Focused(),
		Searching:      m.state.Searching,
		LoadingMore:    m.state.LoadingMore,
		LoadingRecipe:  m.state.LoadingRecipe != 0,
		Searched:       m.store.Query() != "",
		Query:          m.store.Query(),
		Sort:           m.store.Sort().String(),
		Cards:          m.store.Cards(),
		Total:          m.store.Total(),
		HasMore:        m.store.Query() != "" && m.store.HasMore(),
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		HelpView:       helpView,
		PageOffset:     m.state.PageOffset,
		Overlay:        m.overlayState(),
	}
	if m.state.Recipe != nil {
		vs.RecipeDetail = views.RecipeDocument(*m.state.Recipe)
	}
	return m.renderer.Render(vs)
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:      m.state,
		Store:      m.store,
		Controller: m.controller,
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The inline recipe popup swallows keys until closed
	if m.state.Recipe != nil {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc", "q", "enter":
			m.state.Recipe = nil
		}
		return nil
	}

	oldMode := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, m.context())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	if newMode := m.inputHandler.CurrentMode(); newMode != oldMode {
		cmds = append(cmds, m.modeChanged(newMode))
	}
	return tea.Batch(cmds...)
}

// modeChanged moves the search field in or out of focus to follow the input mode
func (m *Model) modeChanged(mode inputtypes.Mode) tea.Cmd {
	var cmd tea.Cmd
	if mode == inputtypes.ModeSearch {
		cmd = m.controller.Focus()
		if p, ok := m.controller.Fetcher().InFlight(); ok {
			m.publish(eventbus.SuggestionsRequestedEvent{Phrase: p})
		}
	} else {
		m.controller.Blur(false)
	}
	m.syncField()
	return cmd
}

func (m *Model) setMode(mode inputtypes.Mode) tea.Cmd {
	if m.inputHandler.CurrentMode() == mode {
		return nil
	}
	blink := m.inputHandler.ChangeMode(mode, m.controller.Phrase(), m.context())
	return tea.Batch(blink, m.modeChanged(mode))
}

// syncField copies the controller's display value into the text input and
// attaches or detaches the overlay tracker
func (m *Model) syncField() {
	m.inputHandler.SetText(m.controller.DisplayValue())

	visible := m.controller.OverlayVisible()
	switch {
	case visible && !m.tracker.Attached():
		m.tracker.Show(views.FieldRect(m.width, m.state.PageOffset), m.width)
	case !visible && m.tracker.Attached():
		m.tracker.Hide()
		m.inPanel = false
	}
}

func (m *Model) overlayState() *views.OverlayState {
	if !m.controller.OverlayVisible() || !m.tracker.Attached() {
		return nil
	}
	return &views.OverlayState{
		Position:    m.tracker.Position(),
		Phrase:      m.controller.Phrase(),
		Suggestions: m.controller.Suggestions(),
		Highlight:   m.controller.Highlight(),
		MaxVisible:  m.config.Suggest.MaxVisible,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		cmd := m.controller.SetText(a.Text)
		if p, ok := m.controller.Fetcher().InFlight(); ok && p == a.Text && cmd != nil {
			m.publish(eventbus.SuggestionsRequestedEvent{Phrase: p})
		}
		m.syncField()
		return cmd

	case inputtypes.SubmitTextAction:
		return m.submit()

	case inputtypes.CancelTextAction:
		m.controller.Blur(false)
		m.syncField()

	case inputtypes.HighlightAction:
		if a.Direction == "next" {
			m.controller.Next()
		} else {
			m.controller.Previous()
		}
		m.syncField()

	case inputtypes.OpenRecipeAction:
		if card, ok := m.selectedCard(); ok {
			return m.route(suggest.RecipeTarget(card.ID))
		}

	case inputtypes.CycleSortAction:
		if q := m.store.Query(); q != "" {
			return m.startSearch(q, m.store.Sort().Next())
		}

	case inputtypes.CopyLinkAction:
		if card, ok := m.selectedCard(); ok {
			if err := clipboard.WriteAll(card.Href); err != nil {
				m.logger.Warn("clipboard write failed", "err", err)
				m.state.SetStatus(fmt.Sprintf("Could not copy link: %v", err), true)
				return nil
			}
			m.state.SetStatus("Copied "+card.Href, false)
			return clearStatusAfter(3 * time.Second)
		}

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.updateViewportHeight()

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// submit resolves the search field into a navigation
func (m *Model) submit() tea.Cmd {
	sub, ok := m.controller.Submit()
	if !ok {
		return nil
	}
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", m.context())
	m.syncField()

	m.publish(eventbus.NavigationRequestedEvent{
		Kind:     sub.Kind,
		RecipeID: sub.RecipeID,
		Query:    sub.Query,
		Target:   sub.Target,
	})
	m.logger.Info("navigate", "target", sub.Target)
	return m.route(sub.Target)
}

// route performs a navigation target
func (m *Model) route(target string) tea.Cmd {
	r, err := ParseTarget(target)
	if err != nil {
		m.logger.Warn("cannot route", "target", target, "err", err)
		m.state.SetStatus(err.Error(), true)
		return nil
	}

	switch r.Kind {
	case domain.NavigateRecipe:
		// Leaving the search context for a recipe page
		m.controller.Reset()
		m.syncField()
		return m.loadRecipe(r.RecipeID)
	default:
		return m.startSearch(r.Query, logic.ParseSort(r.Sort))
	}
}

func (m *Model) startSearch(query string, sort logic.SortMode) tea.Cmd {
	m.store.Reset(query, sort)
	m.state.ResetResults()
	m.state.Searching = true
	m.state.ClearStatus()
	return tea.Batch(m.fetchPage(query, sort, 0), m.startTicking())
}

func (m *Model) loadMore() tea.Cmd {
	if m.state.LoadingMore || m.state.Searching || m.store.Query() == "" || !m.store.HasMore() {
		return nil
	}
	m.state.LoadingMore = true
	return tea.Batch(m.fetchPage(m.store.Query(), m.store.Sort(), m.store.NextOffset()), m.startTicking())
}

func (m *Model) fetchPage(query string, sort logic.SortMode, offset int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		page, err := client.Recipes(context.Background(), query, sort.Param(), offset)
		return recipesLoadedMsg{query: query, sort: sort, offset: offset, page: page, err: err}
	}
}

func (m *Model) loadRecipe(id int) tea.Cmd {
	m.state.LoadingRecipe = id
	client := m.client
	return tea.Batch(func() tea.Msg {
		recipe, err := client.Recipe(context.Background(), id)
		return recipeLoadedMsg{id: id, recipe: recipe, err: err}
	}, m.startTicking())
}

// showRecipePager returns a command that shows a recipe using the ov pager
func (m *Model) showRecipePager(recipe domain.Recipe) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(views.RecipeDocument(recipe))

		m.program.Send(resumeRenderingMsg{})

		return recipePagerMsg{recipe: recipe, err: err}
	}
}

func (m *Model) navigate(direction string) tea.Cmd {
	m.syncNavigatorState()

	switch direction {
	case "up":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
	case "down":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
	case "pageup":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
	case "pagedown":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
	case "home":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
	case "end":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.GetMaxIndex())
	}

	if m.navigator.AtEnd() {
		return m.loadMore()
	}
	return nil
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.store.Cards()),
	)
}

func (m *Model) updateViewportHeight() {
	h := views.ResultsHeight(m.height)
	if m.help.ShowAll {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	m.state.ViewportHeight = h
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

func (m *Model) selectedCard() (domain.RecipeCard, bool) {
	cards := m.store.Cards()
	if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(cards) {
		return domain.RecipeCard{}, false
	}
	return cards[m.state.SelectedIndex], true
}

// handleMouse routes pointer events to the suggestion panel, the field and the results
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.Recipe != nil {
		return nil
	}

	idx, inPanel := -1, false
	if ov := m.overlayState(); ov != nil {
		idx, inPanel = ov.RowAt(msg.X, msg.Y)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scroll(-1)

	case msg.Button == tea.MouseButtonWheelDown:
		return m.scroll(1)

	case msg.Action == tea.MouseActionMotion:
		if inPanel && idx >= 0 {
			m.controller.SetHighlight(idx)
			m.syncField()
		} else if !inPanel && m.inPanel {
			m.controller.ClearHighlight()
			m.syncField()
		}
		m.inPanel = inPanel

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inPanel {
			// Focus stays within the search control
			m.controller.Blur(true)
			if idx >= 0 {
				m.controller.SetHighlight(idx)
				return m.submit()
			}
			return nil
		}

		field := views.FieldRect(m.width, m.state.PageOffset)
		if msg.Y >= field.Top && msg.Y < field.Bottom() && msg.X >= field.Left && msg.X < field.Left+field.Width {
			return m.setMode(inputtypes.ModeSearch)
		}

		cmd := m.setMode(inputtypes.ModeNormal)
		if i, ok := m.resultAt(msg.Y); ok {
			m.syncNavigatorState()
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(i)
		}
		return cmd
	}

	return nil
}

// resultAt maps a screen row onto a loaded result
func (m *Model) resultAt(y int) (int, bool) {
	row := y - (views.ResultsTop - m.state.PageOffset)
	if m.state.ViewportOffset > 0 {
		row-- // top scroll indicator
	}
	if row < 0 {
		return 0, false
	}
	n := len(m.store.Cards())
	if row >= uilogic.VisibleRows(m.state.ViewportOffset, m.state.ViewportHeight, n) {
		return 0, false
	}
	i := m.state.ViewportOffset + row
	return i, i < n
}

// scroll handles the mouse wheel. Flow overlays scroll the whole page until
// the field is out of view; otherwise the wheel moves through the results.
func (m *Model) scroll(dy int) tea.Cmd {
	if m.tracker.Mode() == suggest.Flow {
		next := m.state.PageOffset + dy
		if next >= 0 && next <= views.MaxPageOffset() {
			m.state.PageOffset = next
			m.tracker.Scroll(dy)
			return nil
		}
	}
	if dy < 0 {
		return m.navigate("up")
	}
	return m.navigate("down")
}

func (m *Model) handleSuggestions(msg suggest.ResultMsg) {
	current := m.controller.Phrase()
	shown := m.controller.HandleResult(msg)

	switch {
	case msg.Err != nil && errors.Is(msg.Err, context.Canceled):
		// superseded
	case msg.Err != nil && shown:
		// The list degrades to empty; plain search keeps working
		m.publish(eventbus.SuggestionsFailedEvent{Phrase: msg.Phrase, Err: msg.Err})
	case shown:
		m.publish(eventbus.SuggestionsReceivedEvent{Phrase: msg.Phrase, Count: len(msg.Suggestions), Cached: msg.Cached})
	default:
		m.publish(eventbus.SuggestionsDiscardedEvent{Phrase: msg.Phrase, Current: current})
	}
	m.syncField()
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggest.ResultMsg:
		m.handleSuggestions(msg)
		return m, nil

	case suggest.DebounceMsg:
		cmd := m.controller.HandleDebounce(msg)
		if cmd != nil {
			m.publish(eventbus.SuggestionsRequestedEvent{Phrase: msg.Phrase})
		}
		return m, cmd

	case recipesLoadedMsg:
		if msg.query != m.store.Query() || msg.sort != m.store.Sort() || msg.offset != m.store.NextOffset() {
			return m, nil
		}
		m.state.Searching = false
		m.state.LoadingMore = false
		if msg.err != nil {
			m.logger.Error("search failed", "query", msg.query, "offset", msg.offset, "err", msg.err)
			m.state.SetStatus(fmt.Sprintf("Search failed: %v", msg.err), true)
			return m, nil
		}
		m.store.Append(msg.page)
		m.publish(eventbus.RecipesLoadedEvent{
			Query:  msg.query,
			Offset: msg.offset,
			Count:  len(msg.page.Cards),
			Total:  msg.page.TotalCount,
		})
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
		return m, nil

	case recipeLoadedMsg:
		if msg.id != m.state.LoadingRecipe {
			return m, nil
		}
		m.state.LoadingRecipe = 0
		if msg.err != nil {
			m.logger.Error("recipe failed", "id", msg.id, "err", msg.err)
			m.state.SetStatus(fmt.Sprintf("Could not load recipe: %v", msg.err), true)
			return m, nil
		}
		if m.program == nil {
			m.state.Recipe = &msg.recipe
			return m, nil
		}
		return m, m.showRecipePager(msg.recipe)

	case recipePagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			m.logger.Warn("recipe pager failed, falling back to popup", "err", msg.err)
			m.state.Recipe = &msg.recipe
		}
		return m, nil

	case tickMsg:
		if m.inPagerMode || !m.state.Busy() {
			m.ticking = false
			return m, nil
		}
		return m, tick()

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if !m.state.StatusIsError {
			m.state.ClearStatus()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) quit() tea.Cmd {
	m.controller.Fetcher().Reset()
	return tea.Quit
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
