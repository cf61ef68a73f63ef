package core

import (
	"slices"
	"strings"
)

// PageSize is the number of articles per index page and per feed.
const PageSize = 10

// Order returns a copy of articles sorted by Date descending. Dates are
// compared as plain strings; the yyyy-mm-dd form makes lexical order match
// chronological order. Equal dates have no guaranteed relative order.
func Order(articles []Article) []Article {
	out := slices.Clone(articles)
	slices.SortFunc(out, func(a, b Article) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// Paginate returns the index-th block of size articles from ordered, clamped
// to the available range. An out-of-range or negative index yields an empty
// slice rather than an error.
func Paginate(ordered []Article, index, size int) []Article {
	if index < 0 || size <= 0 {
		return nil
	}
	start := index * size
	if start >= len(ordered) {
		return nil
	}
	return ordered[start:min(start+size, len(ordered))]
}

// PageCount is the page total used for Last links: floor division of the
// article count by the page size. A trailing partial page is reachable by
// index but not counted, so navigation built on this value never links a
// partial last page from itself.
func PageCount(total, size int) int {
	if size <= 0 {
		return 0
	}
	return total / size
}
