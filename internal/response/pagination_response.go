package response

import "math"

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination builds the envelope for one page of a result set. returned
// is the number of items actually on this page.
func NewPagination(page, limit int, total int64, returned int) *Pagination {
	totalPages := int64(math.Ceil(float64(total) / float64(limit)))
	from := 0
	to := 0
	if returned > 0 {
		from = (page-1)*limit + 1
		to = from + returned - 1
	}
	return &Pagination{
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
