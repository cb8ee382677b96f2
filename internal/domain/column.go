package domain

import "sort"

// Column is a named stage in the board workflow. Order defines the
// left-to-right board position and is a unique total order.
type Column struct {
	ID    string
	Title string
	Order int
}

// Columns is the externally configured, ordered column set.
type Columns []Column

// Sorted returns a copy of the columns sorted by Order.
func (cs Columns) Sorted() Columns {
	out := make(Columns, len(cs))
	copy(out, cs)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// First returns the lowest-ordered column, the default status for new
// issues. ok is false for an empty column set.
func (cs Columns) First() (Column, bool) {
	if len(cs) == 0 {
		return Column{}, false
	}
	first := cs[0]
	for _, c := range cs[1:] {
		if c.Order < first.Order {
			first = c
		}
	}
	return first, true
}

// ByID returns the column with the given id.
func (cs Columns) ByID(id string) (Column, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Contains reports whether id names a known column.
func (cs Columns) Contains(id string) bool {
	_, ok := cs.ByID(id)
	return ok
}
