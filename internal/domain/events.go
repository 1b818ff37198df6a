package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted  EventType = "SearchSubmitted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventSearchSuperseded EventType = "SearchSuperseded"
	EventValidationFailed EventType = "ValidationFailed"
	EventPageChanged      EventType = "PageChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a request for a (term, page) pair starts
type SearchSubmittedEvent struct {
	Generation uint64
	Query      SearchQuery
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SearchCompletedEvent is emitted when the current request commits its results
type SearchCompletedEvent struct {
	Generation     uint64
	Query          SearchQuery
	ItemCount      int
	TotalEstimated int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the current request fails
type SearchFailedEvent struct {
	Generation uint64
	Query      SearchQuery
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchSupersededEvent is emitted when a stale response is dropped
type SearchSupersededEvent struct {
	Generation uint64 // generation of the dropped response
	Current    uint64
}

func (e SearchSupersededEvent) Type() EventType { return EventSearchSuperseded }

// ValidationFailedEvent is emitted when an empty term is submitted
type ValidationFailedEvent struct{}

func (e ValidationFailedEvent) Type() EventType { return EventValidationFailed }

// PageChangedEvent is emitted when page navigation moves the cursor
type PageChangedEvent struct {
	From int
	To   int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }
