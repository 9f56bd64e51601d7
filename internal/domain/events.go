package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionsRequested EventType = "SuggestionsRequested"
	EventSuggestionsReceived  EventType = "SuggestionsReceived"
	EventSuggestionsDiscarded EventType = "SuggestionsDiscarded"
	EventSuggestionsFailed    EventType = "SuggestionsFailed"
	EventNavigationRequested  EventType = "NavigationRequested"
	EventRecipesLoaded        EventType = "RecipesLoaded"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionsRequestedEvent is emitted when a fetch is issued for a phrase
type SuggestionsRequestedEvent struct {
	Phrase string
}

func (e SuggestionsRequestedEvent) Type() EventType { return EventSuggestionsRequested }

// SuggestionsReceivedEvent is emitted when suggestions for the current phrase are shown
type SuggestionsReceivedEvent struct {
	Phrase string
	Count  int
	Cached bool
}

func (e SuggestionsReceivedEvent) Type() EventType { return EventSuggestionsReceived }

// SuggestionsDiscardedEvent is emitted when a response arrives for a superseded phrase
type SuggestionsDiscardedEvent struct {
	Phrase  string
	Current string
}

func (e SuggestionsDiscardedEvent) Type() EventType { return EventSuggestionsDiscarded }

// SuggestionsFailedEvent is emitted when a fetch fails; the list degrades to empty
type SuggestionsFailedEvent struct {
	Phrase string
	Err    error
}

func (e SuggestionsFailedEvent) Type() EventType { return EventSuggestionsFailed }

// NavigationKind tells the router what a submission asks for
type NavigationKind int

const (
	NavigateRecipe NavigationKind = iota
	NavigateSearch
)

func (k NavigationKind) String() string {
	switch k {
	case NavigateRecipe:
		return "recipe"
	case NavigateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// NavigationRequestedEvent is emitted when the search field is submitted
type NavigationRequestedEvent struct {
	Kind     NavigationKind
	RecipeID int
	Query    string
	Target   string
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// RecipesLoadedEvent is emitted when a page of results has been appended
type RecipesLoadedEvent struct {
	Query  string
	Offset int
	Count  int
	Total  int
}

func (e RecipesLoadedEvent) Type() EventType { return EventRecipesLoaded }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
