package ports

// ListQuery carries the pagination, sorting, and search parameters accepted by
// every list endpoint. Page is zero-based.
type ListQuery struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
	Search    string
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps page and size into range and defaults the sort direction.
// Unknown sort fields are resolved by the repository, which falls back to its
// default sort column.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	if q.Direction != "asc" && q.Direction != "desc" {
		q.Direction = "asc"
	}
	return q
}
