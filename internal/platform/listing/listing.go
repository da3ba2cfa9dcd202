// Package listing holds the search and pagination rules shared by the admin
// tables.
package listing

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	QueryMinLength = 3
	QueryMaxLength = 50
	PageSize       = 5
)

var spaces = regexp.MustCompile(`\s+`)

// NormalizeQuery collapses whitespace and truncates to QueryMaxLength. A
// non-empty result shorter than QueryMinLength is rejected.
func NormalizeQuery(raw string) (string, error) {
	q := strings.TrimSpace(spaces.ReplaceAllString(raw, " "))
	if utf8.RuneCountInString(q) > QueryMaxLength {
		q = string([]rune(q)[:QueryMaxLength])
	}
	if q != "" && utf8.RuneCountInString(q) < QueryMinLength {
		return "", fmt.Errorf("search must be between %d and %d characters", QueryMinLength, QueryMaxLength)
	}
	return q, nil
}

// Contains reports a case-insensitive match of query in any field. An empty
// query matches everything.
func Contains(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

type Window[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
}

// Paginate returns page (1-based) of items. The page is clamped into
// [1, TotalPages], so a page past the end after a delete shows the last one.
func Paginate[T any](items []T, page, size int) Window[T] {
	if size <= 0 {
		size = PageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	end := min(start+size, total)
	w := Window[T]{Page: page, TotalPages: pages, Total: total}
	if start < end {
		w.Items = items[start:end]
	}
	return w
}

// Truncate shortens s to n runes with a trailing ellipsis.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
