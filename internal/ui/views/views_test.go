package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"websearch/internal/domain"
	"websearch/internal/ui/search"
)

var (
	goItem = domain.SearchResultItem{
		ID: "1", Name: "The Go Programming Language", URL: "https://go.dev/",
		DisplayURL: "go.dev", Snippet: "Go is an open source programming language.",
	}
	rustItem = domain.SearchResultItem{
		ID: "2", Name: "Rust", URL: "https://rust-lang.org/", DisplayURL: "rust-lang.org", Snippet: "A language.",
	}
)

func TestRenderItemRequiresNameAndURL(t *testing.T) {
	r := NewResultRenderer(NewStyles(), true)

	assert.Empty(t, r.RenderItem(domain.SearchResultItem{URL: "https://x.test"}, false, 80))
	assert.Empty(t, r.RenderItem(domain.SearchResultItem{Name: "x"}, false, 80))
	assert.Empty(t, r.RenderItem(domain.SearchResultItem{}, true, 80))
	assert.Empty(t, r.RenderDetail(domain.SearchResultItem{Name: "x"}))
}

func TestRenderItemVerbatim(t *testing.T) {
	r := NewResultRenderer(NewStyles(), true)
	out := r.RenderItem(goItem, false, 120)

	assert.Contains(t, out, goItem.Name)
	assert.Contains(t, out, goItem.DisplayURL)
	assert.Contains(t, out, goItem.Snippet)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRenderItemFallsBackToURL(t *testing.T) {
	r := NewResultRenderer(NewStyles(), false)
	out := r.RenderItem(goItem, false, 120)
	assert.Contains(t, out, goItem.URL)
}

func TestRenderListSkipsMalformed(t *testing.T) {
	r := NewResultRenderer(NewStyles(), true)
	items := []domain.SearchResultItem{goItem, {ID: "bad", Snippet: "orphan snippet"}, rustItem}

	out := r.RenderList(items, 0, 0, 0, 120)
	assert.Contains(t, out, goItem.Name)
	assert.Contains(t, out, rustItem.Name)
	assert.NotContains(t, out, "orphan snippet")
}

func TestRenderListViewport(t *testing.T) {
	r := NewResultRenderer(NewStyles(), true)
	items := []domain.SearchResultItem{goItem, rustItem}

	out := r.RenderList(items, 1, 1, 1, 120)
	assert.NotContains(t, out, goItem.Name)
	assert.Contains(t, out, rustItem.Name)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hell…", truncate("hello!", 5))
	assert.Equal(t, "…", truncate("hello", 1))
	assert.Equal(t, "héll…", truncate("héllo wörld", 5))
}

func TestPaginatorBounds(t *testing.T) {
	for perPage := 1; perPage <= 10; perPage++ {
		for total := 0; total <= 50; total++ {
			last := domain.LastPage(total, perPage)
			p := Paginator{CurrentPage: 1, TotalItems: total, PerPage: perPage}
			assert.Equal(t, last, p.LastPage())
			assert.False(t, p.PreviousEnabled(), "previous is inert on page 1")

			if last >= 1 {
				p.CurrentPage = last
				assert.False(t, p.NextEnabled(), "next is inert on the last page")
			}
		}
	}
}

func TestPaginatorCallbacks(t *testing.T) {
	calls := 0
	inc := func() { calls++ }

	first := Paginator{CurrentPage: 1, TotalItems: 23, PerPage: 10}
	assert.False(t, first.Previous(inc))
	assert.True(t, first.Next(inc))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, first.CurrentPage, "the paginator never moves itself")

	last := Paginator{CurrentPage: 3, TotalItems: 23, PerPage: 10}
	assert.False(t, last.Next(inc))
	assert.True(t, last.Previous(inc))
	assert.Equal(t, 2, calls)

	empty := Paginator{CurrentPage: 1, TotalItems: 0, PerPage: 10}
	assert.False(t, empty.Next(inc))
	assert.False(t, first.Next(nil))
}

func TestPaginatorRender(t *testing.T) {
	out := Paginator{CurrentPage: 2, TotalItems: 23, PerPage: 10}.Render(NewStyles())
	assert.Contains(t, out, "Previous")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "Page 2 of 3")
}

func TestRenderAreaIsExclusive(t *testing.T) {
	r := NewRenderer(true)
	base := ViewState{
		Width: 100, Height: 40, ActiveTerm: "go",
		Items:     []domain.SearchResultItem{goItem},
		Paginator: Paginator{CurrentPage: 1, TotalItems: 23, PerPage: 10},
	}

	tests := []struct {
		area    search.Area
		want    string
		notWant []string
	}{
		{search.AreaValidation, search.ValidationMessage, []string{search.APIErrorMessage, "Loading...", goItem.Name}},
		{search.AreaAPIError, search.APIErrorMessage, []string{search.ValidationMessage, "Loading...", goItem.Name}},
		{search.AreaLoading, "Loading...", []string{search.ValidationMessage, search.APIErrorMessage, goItem.Name}},
		{search.AreaResults, goItem.Name, []string{search.ValidationMessage, search.APIErrorMessage, "Loading..."}},
	}
	for _, tt := range tests {
		t.Run(tt.area.String(), func(t *testing.T) {
			state := base
			state.Area = tt.area
			out := r.RenderArea(state)
			assert.Contains(t, out, tt.want)
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderResultsShowsTermAndPaginator(t *testing.T) {
	r := NewRenderer(true)
	out := r.Render(ViewState{
		Width: 100, Height: 40, Area: search.AreaResults, ActiveTerm: "go",
		Items:      []domain.SearchResultItem{goItem, rustItem},
		Paginator:  Paginator{CurrentPage: 1, TotalItems: 23, PerPage: 10},
		HelpFooter: "? help",
	})
	assert.Contains(t, out, "websearch")
	assert.Contains(t, out, "Results for: go")
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "? help")
}

func TestRenderPopupTakesOver(t *testing.T) {
	r := NewRenderer(true)
	out := r.Render(ViewState{Width: 100, Height: 30, ShowHelp: true, HelpContent: "Keys go here"})
	assert.Contains(t, out, "Keys go here")
	assert.NotContains(t, out, "Search:")
}
