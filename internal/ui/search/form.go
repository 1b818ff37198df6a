// Package search holds the search form state machine: the query text,
// the page cursor and the lifecycle of the single outstanding request.
//
// The form never performs I/O. Operations that need a fetch return a
// Request; the caller runs it and reports back with Resolve or Reject,
// passing the request's generation. Only the newest generation may
// commit, so responses for superseded requests are dropped.
package search

import (
	"strings"

	"websearch/internal/domain"
)

// Form is the search form state machine
type Form struct {
	input      string // live text in the input field
	activeTerm string // term of the most recent submission
	page       int
	perPage    int
	lifecycle  domain.Lifecycle
	generation uint64

	showValidation bool
	showAPIError   bool

	items   []domain.SearchResultItem
	total   int // from the most recent success
	lastErr error
}

// NewForm creates an idle form on page 1
func NewForm() *Form {
	return &Form{
		page:      1,
		perPage:   domain.PerPage,
		lifecycle: domain.Idle,
	}
}

// SetTerm stores the text currently typed in the input
func (f *Form) SetTerm(term string) {
	f.input = term
}

// Term returns the live input text
func (f *Form) Term() string { return f.input }

// ActiveTerm returns the term results are shown (or loading) for
func (f *Form) ActiveTerm() string { return f.activeTerm }

// Page returns the current 1-based page
func (f *Form) Page() int { return f.page }

// PerPage returns the fixed page size
func (f *Form) PerPage() int { return f.perPage }

// Lifecycle returns the state of the current request
func (f *Form) Lifecycle() domain.Lifecycle { return f.lifecycle }

// Generation returns the identifier of the newest request
func (f *Form) Generation() uint64 { return f.generation }

// Items returns the results of the current page
func (f *Form) Items() []domain.SearchResultItem { return f.items }

// Total returns the estimated total from the most recent success
func (f *Form) Total() int { return f.total }

// LastError returns the error of the most recent committed failure
func (f *Form) LastError() error { return f.lastErr }

// ShowValidation reports whether the empty-term message is displayed
func (f *Form) ShowValidation() bool { return f.showValidation }

// ShowAPIError reports whether the API error message is displayed
func (f *Form) ShowAPIError() bool { return f.showAPIError }

// LastPage returns ceil(total/perPage) for the most recent success, 0 before any
func (f *Form) LastPage() int {
	return domain.LastPage(f.total, f.perPage)
}

// Submit validates the live input and starts a search for page 1.
// An empty term shows the validation message and starts nothing; the
// lifecycle is left as it was.
func (f *Form) Submit() (Request, bool) {
	term := strings.TrimSpace(f.input)
	if term == "" {
		f.showValidation = true
		return Request{}, false
	}

	f.activeTerm = term
	f.page = 1
	return f.begin(), true
}

// PreviousPage moves back one page. It is a no-op on page 1.
func (f *Form) PreviousPage() (Request, bool) {
	return f.goTo(f.page - 1)
}

// NextPage moves forward one page. It is a no-op on the last page and
// before any successful search.
func (f *Form) NextPage() (Request, bool) {
	return f.goTo(f.page + 1)
}

// CanGoTo reports whether page is inside [1, LastPage()]
func (f *Form) CanGoTo(page int) bool {
	return f.activeTerm != "" && page >= 1 && page <= f.LastPage()
}

func (f *Form) goTo(page int) (Request, bool) {
	if !f.CanGoTo(page) {
		return Request{}, false
	}
	f.page = page
	return f.begin(), true
}

// begin supersedes any in-flight request and clears what it displayed,
// including a validation message left by an earlier empty submit
func (f *Form) begin() Request {
	f.generation++
	f.items = nil
	f.showValidation = false
	f.showAPIError = false
	f.lastErr = nil
	f.lifecycle = domain.Submitted

	return Request{
		Generation: f.generation,
		Query: domain.SearchQuery{
			Term:    f.activeTerm,
			Page:    f.page,
			PerPage: f.perPage,
		},
	}
}

// IsCurrent reports whether gen belongs to the newest request
func (f *Form) IsCurrent(gen uint64) bool {
	return gen != 0 && gen == f.generation
}

// Start marks the current request as loading
func (f *Form) Start(gen uint64) bool {
	if !f.IsCurrent(gen) || f.lifecycle != domain.Submitted {
		return false
	}
	f.lifecycle = domain.Loading
	return true
}

// Resolve commits a successful response. Superseded responses are ignored.
func (f *Form) Resolve(gen uint64, set *domain.SearchResultSet) bool {
	if !f.IsCurrent(gen) || !f.pending() {
		return false
	}
	if set == nil {
		set = &domain.SearchResultSet{}
	}

	f.items = set.Items
	f.total = max(set.TotalEstimated, 0)
	f.lifecycle = domain.Success
	return true
}

// Reject commits a failed response. Superseded failures are ignored so
// they cannot leak an error into a newer cycle.
func (f *Form) Reject(gen uint64, err error) bool {
	if !f.IsCurrent(gen) || !f.pending() {
		return false
	}

	f.items = nil
	f.showAPIError = true
	f.lastErr = err
	f.lifecycle = domain.Failed
	return true
}

func (f *Form) pending() bool {
	return f.lifecycle == domain.Submitted || f.lifecycle == domain.Loading
}

// Area returns the single state the result area displays
func (f *Form) Area() Area {
	switch {
	case f.showValidation:
		return AreaValidation
	case f.showAPIError:
		return AreaAPIError
	case f.pending():
		return AreaLoading
	case f.lifecycle == domain.Success:
		return AreaResults
	default:
		return AreaEmpty
	}
}
