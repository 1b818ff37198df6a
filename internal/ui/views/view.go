package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"websearch/internal/domain"
	"websearch/internal/ui/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string // rendered text input
	InputFocused   bool
	Area           search.Area
	ActiveTerm     string
	Items          []domain.SearchResultItem
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // in items
	Paginator      Paginator
	LoadingView    string // spinner frame
	StatusMessage  string
	ShowHelp       bool
	HelpContent    string
	ShowDetail     bool
	DetailContent  string
	HelpFooter     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDisplayURL bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles, showDisplayURL),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Results returns the result renderer
func (r *Renderer) Results() *ResultRenderer {
	return r.resultRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopup(state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.ShowDetail && state.DetailContent != "" {
		return r.popupRender.RenderPopup(state.DetailContent, state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	prompt := r.styles.Dim.Render("Search: ")
	if state.InputFocused {
		prompt = r.styles.Prompt.Render("Search: ")
	}
	content.WriteString(prompt + state.InputView)
	content.WriteString("\n\n")

	content.WriteString(r.RenderArea(state))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.HelpFooter != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(state.HelpFooter)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("websearch")
	if state.Area != search.AreaLoading || state.LoadingView == "" {
		return logo
	}

	indicator := r.styles.Dim.Render(state.LoadingView + " Searching")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(indicator)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + indicator
}

// RenderArea renders the result area for its single active state
func (r *Renderer) RenderArea(state ViewState) string {
	switch state.Area {
	case search.AreaValidation:
		return r.styles.StatusWarning.Render(search.ValidationMessage)
	case search.AreaAPIError:
		return r.styles.StatusError.Render(search.APIErrorMessage)
	case search.AreaLoading:
		return r.styles.StatusLoading.Render(strings.TrimSpace(state.LoadingView + " Loading..."))
	case search.AreaResults:
		return r.renderResults(state)
	default:
		return r.styles.Dim.Render("Type a search term and press Enter.")
	}
}

func (r *Renderer) renderResults(state ViewState) string {
	if len(state.Items) == 0 {
		return r.styles.Dim.Render(fmt.Sprintf("No results for: %s", state.ActiveTerm))
	}

	var b strings.Builder
	b.WriteString(r.styles.ResultsFor.Render(fmt.Sprintf("Results for: %s", state.ActiveTerm)))
	b.WriteString("\n")

	if state.ViewportOffset > 0 {
		b.WriteString(r.styles.Scroll.Render("↑ (more above)"))
		b.WriteString("\n")
	}

	width := state.Width - 4
	b.WriteString(r.resultRender.RenderList(state.Items, state.SelectedIndex, state.ViewportOffset, state.ViewportHeight, width))
	b.WriteString("\n")

	if state.ViewportHeight > 0 && state.ViewportOffset+state.ViewportHeight < len(state.Items) {
		b.WriteString(r.styles.Scroll.Render("↓ (more below)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(state.Paginator.Render(r.styles))
	return b.String()
}
