package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveSelectionClamps(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 3

	s.MoveSelection(-1, 10, nil)
	assert.Equal(t, 0, s.SelectedIndex)

	s.MoveSelection(20, 10, nil)
	assert.Equal(t, 9, s.SelectedIndex)
	assert.Equal(t, 7, s.ViewportOffset)

	s.MoveSelection(-8, 10, nil)
	assert.Equal(t, 1, s.SelectedIndex)
	assert.Equal(t, 1, s.ViewportOffset)
}

func TestMoveSelectionWithoutItems(t *testing.T) {
	s := NewAppState()
	s.SelectedIndex = 4
	s.ViewportOffset = 2

	s.MoveSelection(1, 0, nil)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestMoveSelectionSkipsUnselectable(t *testing.T) {
	s := NewAppState()
	hidden := map[int]bool{0: true, 2: true, 3: true, 5: true}
	selectable := func(i int) bool { return !hidden[i] }

	// Snap from an unselectable cursor onto the first selectable item
	s.MoveSelection(0, 6, selectable)
	assert.Equal(t, 1, s.SelectedIndex)

	s.MoveSelection(1, 6, selectable)
	assert.Equal(t, 4, s.SelectedIndex)

	s.MoveSelection(1, 6, selectable)
	assert.Equal(t, 4, s.SelectedIndex, "last selectable item is the end")

	s.MoveSelection(-5, 6, selectable)
	assert.Equal(t, 1, s.SelectedIndex)
}

func TestMoveSelectionNothingSelectable(t *testing.T) {
	s := NewAppState()
	s.SelectedIndex = 2

	s.MoveSelection(1, 3, func(int) bool { return false })
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestClosePopups(t *testing.T) {
	s := NewAppState()
	s.ShowHelp = true
	s.ShowDetail = true
	s.DetailContent = "x"

	s.ClosePopups()
	assert.False(t, s.ShowHelp)
	assert.False(t, s.ShowDetail)
	assert.Empty(t, s.DetailContent)
}
