// Package list implements the client-side browse model shared by every
// table view: case-insensitive substring search over selected fields, a
// single equality filter, and fixed-size pagination. All of it runs over an
// in-memory snapshot; the server is never consulted for narrowing.
package list

import "strings"

// FilterAll is the filter value that passes every item.
const FilterAll = "all"

// Field extracts a searchable or filterable string from an item.
type Field[T any] func(T) string

// List holds a snapshot of items plus the current search, filter, and page
// state. Not safe for concurrent use; each view owns its own List and
// mutates it from the event loop.
type List[T any] struct {
	id       Field[T]
	searched []Field[T]
	filtered Field[T]
	pageSize int

	items  []T
	search string
	filter string
	page   int
}

// New creates a List. id extracts the stable identifier used by the
// mutation helpers; searchFields are matched by Search.
func New[T any](pageSize int, id Field[T], searchFields ...Field[T]) *List[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List[T]{
		id:       id,
		searched: searchFields,
		pageSize: pageSize,
		filter:   FilterAll,
		page:     1,
	}
}

// SetFilterField installs the field the equality filter compares against.
func (l *List[T]) SetFilterField(field Field[T]) {
	l.filtered = field
}

// SetItems replaces the snapshot, keeping search and filter but clamping
// the current page to the new bounds.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	l.clampPage()
}

// SetSearch updates the search query and resets to the first page.
func (l *List[T]) SetSearch(query string) {
	l.search = strings.TrimSpace(query)
	l.page = 1
}

// Search returns the current query.
func (l *List[T]) Search() string { return l.search }

// SetFilter updates the equality filter and resets to the first page.
func (l *List[T]) SetFilter(value string) {
	if value == "" {
		value = FilterAll
	}
	l.filter = value
	l.page = 1
}

// Filter returns the current filter value.
func (l *List[T]) Filter() string { return l.filter }

// matches applies search and filter to one item.
func (l *List[T]) matches(item T) bool {
	if l.filter != FilterAll && l.filtered != nil {
		if !strings.EqualFold(l.filtered(item), l.filter) {
			return false
		}
	}
	if l.search == "" {
		return true
	}
	needle := strings.ToLower(l.search)
	for _, field := range l.searched {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

// Matching returns every item passing the current search and filter, in
// snapshot order.
func (l *List[T]) Matching() []T {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if l.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Visible returns the current page of matching items.
func (l *List[T]) Visible() []T {
	matching := l.Matching()
	start := (l.page - 1) * l.pageSize
	if start >= len(matching) {
		return nil
	}
	end := start + l.pageSize
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end]
}

// All returns a copy of the full snapshot, ignoring search and filter.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the total snapshot size, ignoring search and filter.
func (l *List[T]) Len() int { return len(l.items) }

// MatchCount returns how many items pass the current search and filter.
func (l *List[T]) MatchCount() int { return len(l.Matching()) }

// Page returns the current 1-based page number.
func (l *List[T]) Page() int { return l.page }

// TotalPages returns the page count for the current match set, never below 1.
func (l *List[T]) TotalPages() int {
	n := l.MatchCount()
	if n == 0 {
		return 1
	}
	return (n + l.pageSize - 1) / l.pageSize
}

// SetPage moves to the given page, clamped to [1, TotalPages].
func (l *List[T]) SetPage(page int) {
	l.page = page
	l.clampPage()
}

// NextPage advances one page if one exists.
func (l *List[T]) NextPage() { l.SetPage(l.page + 1) }

// PrevPage steps back one page if one exists.
func (l *List[T]) PrevPage() { l.SetPage(l.page - 1) }

// RemoveByID deletes the item with the given id from the snapshot. Used to
// patch the view after a successful delete, avoiding a refetch. Reports
// whether an item was removed.
func (l *List[T]) RemoveByID(id string) bool {
	for i, item := range l.items {
		if l.id(item) == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.clampPage()
			return true
		}
	}
	return false
}

// ReplaceByID swaps the item with the given id for the updated value. Used
// to patch the view after a successful mutation. Reports whether a
// replacement happened.
func (l *List[T]) ReplaceByID(id string, updated T) bool {
	for i, item := range l.items {
		if l.id(item) == id {
			l.items[i] = updated
			return true
		}
	}
	return false
}

func (l *List[T]) clampPage() {
	if max := l.TotalPages(); l.page > max {
		l.page = max
	}
	if l.page < 1 {
		l.page = 1
	}
}
