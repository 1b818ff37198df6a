package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"websearch/internal/ui/input/types"
)

// BrowseKeys are the bindings BrowseMode reacts to
type BrowseKeys struct {
	Focus, Up, Down, Next, Previous, Open, Help, Quit key.Binding
}

// BrowseMode moves through results and pages
type BrowseMode struct {
	keys BrowseKeys
}

func NewBrowseMode(keys BrowseKeys) *BrowseMode {
	return &BrowseMode{keys: keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case msg.Type == tea.KeyHome || msg.String() == "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case msg.Type == tea.KeyEnd || msg.String() == "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NextPageAction{}}, true

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.PreviousPageAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.ItemCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenResultAction{Index: ctx.CurrentIndex()}}, true
	}

	return nil, false
}
