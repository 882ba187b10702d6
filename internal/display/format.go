package display

import (
	"fmt"
)

// Pluralize returns "n word" with an "s" appended when n != 1
// (e.g. "1 file", "3 files").
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
