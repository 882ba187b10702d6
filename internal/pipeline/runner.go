// Package pipeline orchestrates input reading, username generation, and
// output writing for a single run.
package pipeline

import (
	"bufio"
	"os"
	"strings"

	"github.com/backmassage/ugen/internal/config"
	"github.com/backmassage/ugen/internal/display"
	"github.com/backmassage/ugen/internal/logging"
	"github.com/backmassage/ugen/internal/naming"
	"github.com/backmassage/ugen/internal/record"
)

// Run is the top-level entry point. It processes each input file in CLI
// order against a shared username table, writes the output file (unless
// dry-run), and returns aggregate stats. Usernames depend on processing
// order, so files are never reordered and lines are handled strictly
// top to bottom.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats
	table := naming.NewTable()
	var rows []OutputRow

	for i, path := range cfg.InputFiles {
		log.Info("[%d/%d] %s", i+1, len(cfg.InputFiles), path)
		processFile(cfg, log, path, &stats, table, &rows)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would write %s to %s",
			display.Pluralize(len(rows), "username"), cfg.OutputPath)
	} else if err := WriteOutput(cfg.OutputPath, rows); err != nil {
		log.Error("Cannot write output: %v", err)
		stats.WriteFailed = true
	} else {
		log.Success("Wrote %s to %s",
			display.Pluralize(len(rows), "username"), cfg.OutputPath)
	}

	logSummary(log, &stats)
	return stats
}

// processFile reads one input file line by line: skip blanks, parse, derive
// a username, collect the output row. A malformed line is skipped with a
// warning and does not touch the username table; an unreadable file is
// counted as failed and the run continues with the remaining files.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	table *naming.Table,
	rows *[]OutputRow,
) {
	f, err := os.Open(path)
	if err != nil {
		log.Error("Cannot read input file: %v", err)
		stats.FailedFiles++
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		rec, err := record.ParseLine(line)
		if err != nil {
			log.Warn("%s:%d: skipping line: %v", path, lineNo, err)
			stats.Skipped++
			stats.Skips = append(stats.Skips, SkippedLine{File: path, Line: lineNo, Reason: err.Error()})
			continue
		}

		username := table.Resolve(naming.Base(rec.Forename, rec.Middlename, rec.Surname))
		*rows = append(*rows, OutputRow{ID: rec.ID, Username: username})
		stats.Generated++
		log.Debug(cfg.Verbose, "  %s -> %s", rec.ID, username)
	}

	if err := sc.Err(); err != nil {
		log.Error("Error reading %s: %v", path, err)
		stats.FailedFiles++
		return
	}
	stats.Files++
}

// logSummary prints the end-of-run counters.
func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("")
	log.Info("=== Summary ===")
	log.Info("Read %s, generated %s",
		display.Pluralize(stats.Files, "file"),
		display.Pluralize(stats.Generated, "username"))
	if stats.Skipped > 0 {
		log.Warn("Skipped %s", display.Pluralize(stats.Skipped, "malformed line"))
	}
	if stats.FailedFiles > 0 {
		log.Error("Failed to read %s", display.Pluralize(stats.FailedFiles, "file"))
	}
}
