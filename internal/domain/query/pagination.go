// Package query holds cross-domain query primitives shared by repositories.
package query

// Pagination carries list paging parameters down to repositories. Limit and
// Offset are nil when the caller did not request them; After is a cursor on
// the internal numeric ID.
type Pagination struct {
	Limit  *int
	Offset *int
	After  *uint
	Order  string // "asc" or "desc"
}

// LimitOrDefault returns the requested limit, or def when unset or invalid.
func (p *Pagination) LimitOrDefault(def int) int {
	if p == nil || p.Limit == nil || *p.Limit <= 0 {
		return def
	}
	return *p.Limit
}

// OffsetOrZero returns the requested offset, or zero when unset.
func (p *Pagination) OffsetOrZero() int {
	if p == nil || p.Offset == nil || *p.Offset < 0 {
		return 0
	}
	return *p.Offset
}

// Descending reports whether results should be ordered newest first. The
// empty order defaults to descending.
func (p *Pagination) Descending() bool {
	return p == nil || p.Order != "asc"
}
