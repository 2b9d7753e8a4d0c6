package v1

// Pagination describes one page of the execution history, newest first.
type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
}

func NewPagination(page, limit uint64, total int) Pagination {
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}

	if limit > 0 {
		p.TotalPages = (total + int(limit) - 1) / int(limit)
	}
	p.HasNext = page < uint64(p.TotalPages)

	return p
}

// Offset is the number of executions skipped before this page.
func (p Pagination) Offset() uint64 {
	if p.Page == 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
