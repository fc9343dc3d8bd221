package aggregate

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 50

// Page is one window of a sequence. Page numbers start at 1.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns items[(page-1)*pageSize : page*pageSize] clipped to the
// sequence. A page number outside [1, TotalPages] is clamped to the nearest
// valid page.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return Page[T]{
		Items:      window,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
