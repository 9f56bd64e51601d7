package logic

// Navigator handles cursor movement and viewport management for the result list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize is how far pageup/pagedown move, leaving some overlap
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 2
	if size < 1 {
		size = 1
	}
	return size
}

// GetMaxIndex returns the maximum selectable index
func (n *Navigator) GetMaxIndex() int {
	return n.totalItems - 1
}

// AtEnd reports whether the cursor sits on the last loaded item
func (n *Navigator) AtEnd() bool {
	return n.totalItems > 0 && n.selectedIndex >= n.totalItems-1
}

func (n *Navigator) clamp() {
	if n.selectedIndex > n.totalItems-1 {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// VisibleRows is how many items fit in a viewport of height rows starting at
// offset once the scroll indicators have taken their rows
func VisibleRows(offset, height, total int) int {
	rows := height
	if offset > 0 {
		rows--
	}
	if offset+rows < total {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	for n.selectedIndex >= n.viewportOffset+VisibleRows(n.viewportOffset, n.viewportHeight, n.totalItems) {
		n.viewportOffset++
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
