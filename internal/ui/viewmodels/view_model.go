package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"websearch/internal/config"
	"websearch/internal/ui/search"
	"websearch/internal/ui/state"
	"websearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	form   *search.Form
	config *config.Config
	width  int
	height int
	help   help.Model

	inputView    string
	inputFocused bool
	loadingView  string
	helpContent  string
	footer       []key.Binding
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, form *search.Form, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  appState,
		form:   form,
		config: cfg,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetInput sets the rendered text input and whether it has focus
func (vm *ViewModel) SetInput(view string, focused bool) {
	vm.inputView = view
	vm.inputFocused = focused
}

// SetLoadingView sets the current spinner frame
func (vm *ViewModel) SetLoadingView(view string) {
	vm.loadingView = view
}

// SetHelpContent sets the text of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetFooterBindings sets the key bindings listed in the footer
func (vm *ViewModel) SetFooterBindings(bindings []key.Binding) {
	vm.footer = bindings
}

// Paginator returns the paginator for the form's current page
func (vm *ViewModel) Paginator() views.Paginator {
	return views.Paginator{
		CurrentPage: vm.form.Page(),
		TotalItems:  vm.form.Total(),
		PerPage:     vm.form.PerPage(),
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	var footer string
	if len(vm.footer) > 0 {
		footer = vm.help.ShortHelpView(vm.footer)
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		InputView:      vm.inputView,
		InputFocused:   vm.inputFocused,
		Area:           vm.form.Area(),
		ActiveTerm:     vm.form.ActiveTerm(),
		Items:          vm.form.Items(),
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		Paginator:      vm.Paginator(),
		LoadingView:    vm.loadingView,
		StatusMessage:  vm.state.StatusMessage,
		ShowHelp:       vm.state.ShowHelp,
		HelpContent:    vm.helpContent,
		ShowDetail:     vm.state.ShowDetail,
		DetailContent:  vm.state.DetailContent,
		HelpFooter:     footer,
	}
}
