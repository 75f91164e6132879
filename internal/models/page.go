package models

// Pagination limits shared across all list endpoints.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// PageMeta describes the window a paginated response covers.
type PageMeta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// PageParams is a normalized page request.
type PageParams struct {
	Page    int
	PerPage int
}

// Normalize clamps the parameters to the allowed window.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}
