package pipeline

import (
	"bufio"
	"fmt"
	"os"

	"github.com/backmassage/ugen/internal/record"
)

// OutputRow is one generated assignment, immutable once produced.
type OutputRow struct {
	ID       string
	Username string
}

// WriteOutput writes rows as ID:username lines to path in order, truncating
// any existing file.
func WriteOutput(path string, rows []OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, row := range rows {
		fmt.Fprintf(w, "%s%s%s\n", row.ID, record.Delimiter, row.Username)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
