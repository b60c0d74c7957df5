package app

// DefaultPerPage applies when a request does not set a page size. Larger
// requests are capped at MaxPerPage.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is one slice of a filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
}

func paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)
	if page <= 0 {
		page = 1
	}
	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	p.Items = items[start:end]
	return p
}
