package repository

import "strings"

// likePattern lowers the term and wraps it in wildcards so that a
// LOWER(col) LIKE ? predicate performs a case-insensitive substring
// match, the same contract the original search forms offered.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
