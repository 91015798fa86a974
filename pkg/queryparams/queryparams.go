package queryparams

// ListParams carries the raw list-page query parameters after parsing.
type ListParams struct {
	Search  string `query:"search"`
	Type    string `query:"type"` // global search only
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "asc"
)

// DefaultListParams returns params for page 1 sorted by the given column.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    1,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate clamps the paging values into their allowed ranges. A missing or
// non-positive page defaults to 1. There is deliberately no upper bound on
// Page: a page past the end yields an empty window with a real total count.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset returns the row offset for the current page.
func (p ListParams) CalculateOffset() int {
	return p.PerPage * (p.Page - 1)
}
