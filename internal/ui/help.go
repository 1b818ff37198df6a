package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"websearch/internal/ui/input"
)

// HelpRenderer builds the help text from the key bindings
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// Render returns the styled help text used by both the popup and the pager
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []helpSection{
		{title: "Query", bindings: []key.Binding{r.keys.Submit, r.keys.Leave, r.keys.Focus}},
		{title: "Results", bindings: []key.Binding{r.keys.Up, r.keys.Down, r.keys.Open}},
		{title: "Pages", bindings: []key.Binding{r.keys.Previous, r.keys.Next}},
		{title: "Other", bindings: []key.Binding{r.keys.Help, r.keys.Quit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("websearch Help"))
	help.WriteString("\n")

	for i, section := range sections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(strings.Join(b.Keys(), ", ")), descStyle.Render(h.Desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Press esc or ? to close"))

	return help.String()
}
