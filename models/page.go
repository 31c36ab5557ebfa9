package models

// Default window used by list operations.
const (
	DefaultPageLimit = 20
)

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// Normalize fills the default limit and clamps negative values.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Window returns the [start, end) bounds of p over a collection of n items.
func (p Page) Window(n int) (int, int) {
	p = p.Normalize()
	start := min(p.Offset, n)
	end := min(start+p.Limit, n)
	return start, end
}
