package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"websearch/internal/ui/input/modes"
	"websearch/internal/ui/input/types"
)

// Handler routes key messages to the active mode and owns the shared text input
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        KeyMap
}

// New creates a handler that starts in query mode with the input focused
func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search for..."
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        DefaultKeyMap(),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(modes.BrowseKeys{
		Focus:    h.keys.Focus,
		Up:       h.keys.Up,
		Down:     h.keys.Down,
		Next:     h.keys.Next,
		Previous: h.keys.Previous,
		Open:     h.keys.Open,
		Help:     h.keys.Help,
		Quit:     h.keys.Quit,
	})

	return h
}

// HandleKey turns a key press into actions. Mode changes are applied
// here; every other action is returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Keys the text mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches modes outside of key handling, e.g. after a submit
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	h.switchMode(mode, ctx)
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetValue replaces the text in the input
func (h *Handler) SetValue(s string) {
	h.textInput.SetValue(s)
}

// Keys returns the key bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeQuery
}

// Update handles non-keyboard messages for text input, such as cursor blinks
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
