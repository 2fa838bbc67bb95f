package user

// Pagination describes one page of a list result.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// NewPagination computes page counts for the given totals. A non-positive
// limit yields zero total pages.
func NewPagination(total, page, limit int64) *Pagination {
	p := &Pagination{Total: total, Page: page, Limit: limit}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}
