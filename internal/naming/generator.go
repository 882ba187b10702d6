package naming

import (
	"strings"
	"unicode/utf8"
)

// maxBaseLen caps the base username length. The numeric collision suffix is
// appended after truncation and may push the final name past this limit.
const maxBaseLen = 8

// Base derives the candidate username for a record: the first letter of the
// forename, the first letter of the middle name when present, then the full
// surname, all lowercased and truncated to at most 8 characters.
//
// Truncation can cut away the characters that distinguished two identities,
// turning them into a collision for [Table.Resolve] to suffix. That is the
// intended behavior, not a bug.
func Base(forename, middlename, surname string) string {
	var b strings.Builder
	b.WriteString(firstLetter(forename))
	if middlename != "" {
		b.WriteString(firstLetter(middlename))
	}
	b.WriteString(strings.ToLower(surname))
	return truncate(b.String(), maxBaseLen)
}

// firstLetter returns the lowercased first character of s, or "" when s is
// empty.
func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return strings.ToLower(string(r))
}

// truncate limits s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
