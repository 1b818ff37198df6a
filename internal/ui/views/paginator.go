package views

import (
	"fmt"

	"websearch/internal/domain"
)

// Paginator is the stateless previous/next control. It only reports
// intent through callbacks; it never changes the page itself.
type Paginator struct {
	CurrentPage int
	TotalItems  int
	PerPage     int
}

// LastPage returns ceil(TotalItems/PerPage)
func (p Paginator) LastPage() int {
	return domain.LastPage(p.TotalItems, p.PerPage)
}

// PreviousEnabled reports whether "previous" is active
func (p Paginator) PreviousEnabled() bool {
	return p.CurrentPage > 1
}

// NextEnabled reports whether "next" is active. It is also disabled
// when there is no last page yet.
func (p Paginator) NextEnabled() bool {
	return p.CurrentPage < p.LastPage()
}

// Previous calls fn when "previous" is enabled and reports whether it did
func (p Paginator) Previous(fn func()) bool {
	if !p.PreviousEnabled() || fn == nil {
		return false
	}
	fn()
	return true
}

// Next calls fn when "next" is enabled and reports whether it did
func (p Paginator) Next(fn func()) bool {
	if !p.NextEnabled() || fn == nil {
		return false
	}
	fn()
	return true
}

// Render draws both controls with the page position between them
func (p Paginator) Render(styles *Styles) string {
	prev := styles.PageDisabled.Render("‹ Previous")
	if p.PreviousEnabled() {
		prev = styles.PageEnabled.Render("‹ Previous")
	}
	next := styles.PageDisabled.Render("Next ›")
	if p.NextEnabled() {
		next = styles.PageEnabled.Render("Next ›")
	}
	position := styles.Dim.Render(fmt.Sprintf("Page %d of %d", p.CurrentPage, p.LastPage()))
	return fmt.Sprintf("%s   %s   %s", prev, position, next)
}
