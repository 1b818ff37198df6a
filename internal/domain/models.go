package domain

// PerPage is the fixed number of results requested per page
const PerPage = 10

// SearchQuery identifies one page of results for a search term
type SearchQuery struct {
	Term    string
	Page    int // 1-based
	PerPage int
}

// NewSearchQuery creates a query for the given term and page, clamping page to 1
func NewSearchQuery(term string, page int) SearchQuery {
	if page < 1 {
		page = 1
	}
	return SearchQuery{
		Term:    term,
		Page:    page,
		PerPage: PerPage,
	}
}

// Offset returns the API offset for this query
func (q SearchQuery) Offset() int {
	return Offset(q.Page, q.PerPage)
}

// SearchResultItem is a single web page result, passed through from the API
type SearchResultItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	DisplayURL string `json:"displayUrl"`
	Snippet    string `json:"snippet"`
}

// Renderable reports whether the item has the fields needed to display it
func (i SearchResultItem) Renderable() bool {
	return i.Name != "" && i.URL != ""
}

// SearchResultSet is one page of results plus the API's total estimate
type SearchResultSet struct {
	Items          []SearchResultItem `json:"items"`
	TotalEstimated int                `json:"total_estimated"`
}

// LastPage returns the last navigable page for this result set
func (s SearchResultSet) LastPage(perPage int) int {
	return LastPage(s.TotalEstimated, perPage)
}

// Lifecycle is the state of the current search request
type Lifecycle int

const (
	Idle Lifecycle = iota
	Submitted
	Loading
	Success
	Failed
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Submitted:
		return "submitted"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
