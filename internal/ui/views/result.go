package views

import (
	"strings"

	"websearch/internal/domain"
)

// ItemHeight is the number of lines a rendered item occupies, including the gap
const ItemHeight = 4

// ResultRenderer renders single search results
type ResultRenderer struct {
	styles         *Styles
	showDisplayURL bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, showDisplayURL bool) *ResultRenderer {
	return &ResultRenderer{
		styles:         styles,
		showDisplayURL: showDisplayURL,
	}
}

// RenderItem renders one result. Items without a name or URL render as
// the empty string so a malformed API entry cannot break the list.
func (r *ResultRenderer) RenderItem(item domain.SearchResultItem, isSelected bool, width int) string {
	if !item.Renderable() {
		return ""
	}

	marker := "  "
	titleStyle := r.styles.ItemTitle
	if isSelected {
		marker = r.styles.SelectionBar.Render("▌ ")
		titleStyle = r.styles.ItemTitleActive
	}

	// A non-positive width disables truncation
	contentWidth := width
	if width > 0 {
		contentWidth = width - 2
		if contentWidth < 20 {
			contentWidth = 20
		}
	}

	displayURL := item.DisplayURL
	if displayURL == "" || !r.showDisplayURL {
		displayURL = item.URL
	}

	lines := []string{
		marker + titleStyle.Render(truncate(item.Name, contentWidth)),
		"  " + r.styles.ItemURL.Render(truncate(displayURL, contentWidth)),
		"  " + r.styles.ItemSnippet.Render(truncate(item.Snippet, contentWidth)),
	}
	return strings.Join(lines, "\n")
}

// RenderList renders every renderable item separated by blank lines.
// selected indexes into items; offset skips leading items for scrolling.
func (r *ResultRenderer) RenderList(items []domain.SearchResultItem, selected, offset, visible, width int) string {
	var blocks []string
	shown := 0
	for i, item := range items {
		if i < offset {
			continue
		}
		if visible > 0 && shown >= visible {
			break
		}
		if block := r.RenderItem(item, i == selected, width); block != "" {
			blocks = append(blocks, block)
			shown++
		}
	}
	return strings.Join(blocks, "\n\n")
}

// RenderDetail renders the full text of an item for the pager or popup
func (r *ResultRenderer) RenderDetail(item domain.SearchResultItem) string {
	if !item.Renderable() {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.styles.ItemTitle.Render(item.Name))
	b.WriteString("\n\n")
	b.WriteString(r.styles.ItemURL.Render(item.URL))
	b.WriteString("\n")
	if item.DisplayURL != "" && item.DisplayURL != item.URL {
		b.WriteString(r.styles.Dim.Render(item.DisplayURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(item.Snippet)
	return b.String()
}

// truncate shortens s to width runes, ending with an ellipsis when cut
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
