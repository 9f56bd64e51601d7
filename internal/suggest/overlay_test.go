package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePosition(t *testing.T) {
	anchor := Rect{Top: 3, Left: 10, Width: 40, Height: 1}

	tests := []struct {
		name     string
		viewport int
		want     Position
	}{
		{"narrow viewport spans full width", 60, Position{Top: 4, Left: 0, Width: 60, FullWidth: true}},
		{"one below threshold", 75, Position{Top: 4, Left: 0, Width: 75, FullWidth: true}},
		{"at threshold follows anchor", 76, Position{Top: 4, Left: 10, Width: 40}},
		{"wide viewport follows anchor", 200, Position{Top: 4, Left: 10, Width: 40}},
	}

	p := Positioner{Threshold: 76}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ComputePosition(anchor, tt.viewport))
		})
	}
}

func TestComputePositionTopIsAnchorBottomInBothModes(t *testing.T) {
	anchor := Rect{Top: 7, Left: 2, Width: 30, Height: 3}
	for _, mode := range []Mode{Fixed, Flow} {
		for _, vw := range []int{20, 76, 120} {
			pos := Positioner{Threshold: 76, Mode: mode}.ComputePosition(anchor, vw)
			assert.Equal(t, 10, pos.Top, "mode=%s vw=%d", mode, vw)
		}
	}
}

func TestTrackerIgnoresEventsWhileDetached(t *testing.T) {
	tr := NewTracker(Positioner{Threshold: 76, Mode: Flow})

	_, ok := tr.Resize(50)
	assert.False(t, ok)
	_, ok = tr.Scroll(2)
	assert.False(t, ok)

	tr.Show(Rect{Top: 2, Left: 5, Width: 30, Height: 1}, 100)
	tr.Hide()

	_, ok = tr.Resize(50)
	assert.False(t, ok, "hidden panels must not react to resize")
	assert.Equal(t, Position{Top: 3, Left: 5, Width: 30}, tr.Position())
}

func TestTrackerResizeCrossesThreshold(t *testing.T) {
	tr := NewTracker(Positioner{Threshold: 76})
	tr.Show(Rect{Top: 2, Left: 5, Width: 30, Height: 1}, 100)

	pos, ok := tr.Resize(60)
	assert.True(t, ok)
	assert.Equal(t, Position{Top: 3, Left: 0, Width: 60, FullWidth: true}, pos)

	pos, ok = tr.Resize(100)
	assert.True(t, ok)
	assert.Equal(t, Position{Top: 3, Left: 5, Width: 30}, pos)
}

func TestTrackerScrollOnlyInFlowMode(t *testing.T) {
	anchor := Rect{Top: 10, Left: 0, Width: 30, Height: 1}

	fixed := NewTracker(Positioner{Threshold: 76, Mode: Fixed})
	fixed.Show(anchor, 100)
	_, ok := fixed.Scroll(3)
	assert.False(t, ok)
	assert.Equal(t, 11, fixed.Position().Top)

	flow := NewTracker(Positioner{Threshold: 76, Mode: Flow})
	flow.Show(anchor, 100)
	pos, ok := flow.Scroll(3)
	assert.True(t, ok)
	assert.Equal(t, 8, pos.Top)

	pos, _ = flow.Scroll(-3)
	assert.Equal(t, 11, pos.Top)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, Flow, ParseMode("flow"))
	assert.Equal(t, Fixed, ParseMode("fixed"))
	assert.Equal(t, Fixed, ParseMode(""))
	assert.Equal(t, "flow", Flow.String())
}
