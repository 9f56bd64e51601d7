package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorClampsCursor(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 10, 3)

	idx, _ := n.Move(-1)
	assert.Equal(t, 0, idx)

	idx, _ = n.SetSelectedIndex(99)
	assert.Equal(t, 2, idx)
	assert.True(t, n.AtEnd())
}

func TestNavigatorScrollsToKeepCursorVisible(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 50)

	idx, offset := n.SetSelectedIndex(10)
	assert.Equal(t, 10, idx)
	assert.LessOrEqual(t, offset, 10)
	assert.Greater(t, offset+5, 10)

	idx, offset = n.SetSelectedIndex(0)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, offset)
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 0)

	idx, offset := n.Move(1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, offset)
	assert.False(t, n.AtEnd())
}

func TestNavigatorPageSize(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 10, 100)
	assert.Equal(t, 8, n.PageSize())

	n.UpdateState(0, 0, 2, 100)
	assert.Equal(t, 1, n.PageSize())
}

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		name                  string
		offset, height, total int
		want                  int
	}{
		{"everything fits", 0, 10, 5, 10},
		{"bottom indicator", 0, 10, 20, 9},
		{"both indicators", 3, 10, 20, 8},
		{"top indicator only", 15, 10, 20, 9},
		{"never below one", 3, 1, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleRows(tt.offset, tt.height, tt.total))
		})
	}
}
