package repository

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResult carries a slice of items and the total count matching the query.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
