package search

import "websearch/internal/domain"

// Request is a fetch the caller must perform for the form.
// Generation identifies it when its result comes back.
type Request struct {
	Generation uint64
	Query      domain.SearchQuery
}

// Area is what the result area shows; exactly one at a time
type Area int

const (
	AreaEmpty Area = iota
	AreaValidation
	AreaAPIError
	AreaLoading
	AreaResults
)

func (a Area) String() string {
	switch a {
	case AreaValidation:
		return "validation"
	case AreaAPIError:
		return "api-error"
	case AreaLoading:
		return "loading"
	case AreaResults:
		return "results"
	default:
		return "empty"
	}
}

// User-facing messages
const (
	ValidationMessage = "Please enter a search term"
	APIErrorMessage   = "An error happened please try again later."
)
