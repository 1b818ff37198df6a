package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers the styled popup in a width x height area,
// replacing the main content behind it
func (pr *PopupRenderer) RenderPopup(popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	style := popupStyle
	if style.GetWidth() > width-6 {
		style = style.Width(width - 6)
	}
	styled := style.Render(popupContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}
