// AngelaMos | 2026
// paginate.go

// Package query holds the shared list helpers used by both the in-memory
// filter path and the HTTP list handlers.
package query

import "strings"

// Paginate returns the pageIndex-th slice of size pageSize, zero-based and
// clipped to the bounds of items. A page beyond the end yields an empty
// slice, never an error.
func Paginate[T any](items []T, pageIndex, pageSize int) []T {
	if pageIndex < 0 || pageSize <= 0 {
		return nil
	}

	start := pageIndex * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// ContainsFold reports whether s contains substr case-insensitively. This
// is the single keyword-match primitive: the in-memory filter and any
// storage pushdown must agree with it.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
