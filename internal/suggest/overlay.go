package suggest

// Rect is a measured box in terminal cells
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom is the first row below the box
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Mode says how the panel is attached to the page
type Mode int

const (
	// Fixed panels stay put while the page scrolls
	Fixed Mode = iota
	// Flow panels move with the page content
	Flow
)

func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Flow:
		return "flow"
	default:
		return "unknown"
	}
}

// ParseMode maps a config value onto a Mode, defaulting to Fixed
func ParseMode(s string) Mode {
	if s == "flow" {
		return Flow
	}
	return Fixed
}

// Position is where the suggestion panel goes
type Position struct {
	Top       int
	Left      int
	Width     int
	FullWidth bool
}

// Positioner places the panel directly below its anchor
type Positioner struct {
	// Threshold is the viewport width under which the panel spans the
	// whole viewport.
	Threshold int
	Mode      Mode
}

// ComputePosition returns the panel geometry for an anchor and viewport width
func (p Positioner) ComputePosition(anchor Rect, viewportWidth int) Position {
	pos := Position{Top: anchor.Bottom()}
	if viewportWidth < p.Threshold {
		pos.Left = 0
		pos.Width = viewportWidth
		pos.FullWidth = true
		return pos
	}
	pos.Left = anchor.Left
	pos.Width = anchor.Width
	return pos
}

// Tracker keeps a panel's position current for as long as it is shown.
// Resize and scroll notifications are only honoured between Show and Hide.
type Tracker struct {
	positioner Positioner
	anchor     Rect
	viewport   int
	attached   bool
	pos        Position
}

// NewTracker creates a detached tracker
func NewTracker(p Positioner) *Tracker {
	return &Tracker{positioner: p}
}

// Show attaches the tracker and computes the initial position
func (t *Tracker) Show(anchor Rect, viewportWidth int) Position {
	t.anchor = anchor
	t.viewport = viewportWidth
	t.attached = true
	t.pos = t.positioner.ComputePosition(anchor, viewportWidth)
	return t.pos
}

// Hide detaches the tracker
func (t *Tracker) Hide() {
	t.attached = false
}

// Attached reports whether resize and scroll notifications are being handled
func (t *Tracker) Attached() bool {
	return t.attached
}

// Resize recomputes the position for a new viewport width
func (t *Tracker) Resize(viewportWidth int) (Position, bool) {
	if !t.attached {
		return t.pos, false
	}
	t.viewport = viewportWidth
	t.pos = t.positioner.ComputePosition(t.anchor, viewportWidth)
	return t.pos, true
}

// Scroll moves a Flow-mode anchor up by dy rows (negative dy moves it down)
func (t *Tracker) Scroll(dy int) (Position, bool) {
	if !t.attached || t.positioner.Mode != Flow {
		return t.pos, false
	}
	t.anchor.Top -= dy
	t.pos = t.positioner.ComputePosition(t.anchor, t.viewport)
	return t.pos, true
}

// Anchor updates the anchor after a re-layout
func (t *Tracker) Anchor(anchor Rect) (Position, bool) {
	if !t.attached {
		return t.pos, false
	}
	t.anchor = anchor
	t.pos = t.positioner.ComputePosition(anchor, t.viewport)
	return t.pos, true
}

// Position returns the last computed position
func (t *Tracker) Position() Position {
	return t.pos
}

// Mode returns the positioning mode
func (t *Tracker) Mode() Mode {
	return t.positioner.Mode
}
