package state

// AppState contains the UI state that is not part of the search form
type AppState struct {
	// Selection state
	SelectedIndex int // index into the current page's items

	// Viewport
	ViewportOffset int // first visible item
	ViewportHeight int // number of items that fit on screen

	// Popups
	ShowHelp      bool
	ShowDetail    bool
	DetailContent string

	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 5, // Default until the first WindowSizeMsg
	}
}

// ResetSelection moves the cursor back to the first item
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// MoveSelection moves the cursor delta steps over the selectable indices
// in [0, count), clamping at both ends. A nil selectable accepts every
// index. With nothing selectable the cursor goes back to the top.
func (s *AppState) MoveSelection(delta, count int, selectable func(int) bool) {
	var indices []int
	for i := 0; i < count; i++ {
		if selectable == nil || selectable(i) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		s.ResetSelection()
		return
	}

	// Position of the cursor among the selectable indices; an
	// unselectable cursor counts as the next selectable one
	pos := len(indices) - 1
	for p, idx := range indices {
		if idx >= s.SelectedIndex {
			pos = p
			break
		}
	}

	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(indices) {
		pos = len(indices) - 1
	}
	s.SelectedIndex = indices[pos]
	s.EnsureSelectedVisible()
}

// EnsureSelectedVisible scrolls the viewport so the cursor is on screen
func (s *AppState) EnsureSelectedVisible() {
	if s.ViewportHeight < 1 {
		s.ViewportHeight = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// ClosePopups hides the help and detail popups
func (s *AppState) ClosePopups() {
	s.ShowHelp = false
	s.ShowDetail = false
	s.DetailContent = ""
}
