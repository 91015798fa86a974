package queryparams

// PaginationMeta describes the page-control strip. Every field is derived
// purely from (page, perPage, totalCount), never from the row window itself.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// PaginatedResult is what list endpoints hand to the view layer.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// pageWindowSize is the width of the sliding page-number strip.
const pageWindowSize = 5

// lastPageProximity suppresses the jump-to-last shortcut when the current page
// is this close to the end.
const lastPageProximity = 3

// NewPaginationMeta computes the control-strip state. A zero total count yields
// zero pages and no navigation.
func NewPaginationMeta(page, perPage int, totalCount int64) PaginationMeta {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(perPage) - 1) / int64(perPage))
	}
	return PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     int64(page)*int64(perPage) < totalCount,
	}
}

// PrevPage is the page the back control targets, never below 1.
func (m PaginationMeta) PrevPage() int {
	if m.CurrentPage <= 1 {
		return 1
	}
	return m.CurrentPage - 1
}

// NextPage is the page the forward control targets, capped at the last page.
func (m PaginationMeta) NextPage() int {
	if m.CurrentPage >= m.TotalPages {
		return m.TotalPages
	}
	return m.CurrentPage + 1
}

// PageNumbers returns the sliding window of up to five page numbers centered on
// the current page, clamped at both ends. Empty when there are no pages.
func (m PaginationMeta) PageNumbers() []int {
	if m.TotalPages == 0 {
		return nil
	}
	start := m.CurrentPage - pageWindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + pageWindowSize - 1
	if end > m.TotalPages {
		end = m.TotalPages
		start = end - pageWindowSize + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ShowLast reports whether the jump-to-last-page shortcut should be rendered.
// It is suppressed when the current page is within lastPageProximity pages of
// the end, where the window already reaches the last page.
func (m PaginationMeta) ShowLast() bool {
	return m.TotalPages > 0 && m.TotalPages-m.CurrentPage > lastPageProximity
}

// SlicePage is the client-side variant for row sets already held in memory: it
// slices the given page out of rows locally, with no storage round trip.
func SlicePage[T any](rows []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	start := perPage * (page - 1)
	if start >= len(rows) {
		return []T{}
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// NeedsPaging reports whether the in-memory variant should display controls at
// all: only when the row set exceeds one page.
func NeedsPaging[T any](rows []T, perPage int) bool {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return len(rows) > perPage
}
