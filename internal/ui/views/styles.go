package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Prompt          lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	InfoBox         lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Scroll          lipgloss.Style
	ResultsFor      lipgloss.Style
	ItemTitle       lipgloss.Style
	ItemTitleActive lipgloss.Style
	ItemURL         lipgloss.Style
	ItemSnippet     lipgloss.Style
	SelectionBar    lipgloss.Style
	PageEnabled     lipgloss.Style
	PageDisabled    lipgloss.Style
	StatusError     lipgloss.Style
	StatusWarning   lipgloss.Style
	StatusLoading   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(72).
			BorderForeground(lipgloss.Color("241")),
		Help:            lipgloss.NewStyle().Faint(true),
		Main:            lipgloss.NewStyle().Padding(1, 2),
		Scroll:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ResultsFor:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginBottom(1),
		ItemTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		ItemTitleActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("226")),
		ItemURL:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		ItemSnippet:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectionBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		PageEnabled:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PageDisabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		StatusError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
