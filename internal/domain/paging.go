package domain

// LastPage returns ceil(total/perPage), or 0 when there is nothing to page through
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Offset returns the number of results to skip for a 1-based page.
// Bing Web Search treats offset as zero-based, so page 1 starts at 0.
func Offset(page, perPage int) int {
	if page < 1 || perPage <= 0 {
		return 0
	}
	return (page - 1) * perPage
}
