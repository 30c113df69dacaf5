package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 12
	// MaxPageSize caps how many rows a paged query can request.
	MaxPageSize = 30
)

// Page holds offset pagination inputs from controllers or services.
type Page struct {
	Page     int
	PageSize int
}

// Normalize clamps page to >= 1 and page size to [1, MaxPageSize].
func Normalize(page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Page{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Take clamps a row limit to [1, max], using def when the input is unset.
func Take(take, def, max int) int {
	if take <= 0 {
		take = def
	}
	if take > max {
		return max
	}
	if take < 1 {
		return 1
	}
	return take
}
