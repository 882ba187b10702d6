// Command ugen generates unique login usernames from colon-delimited user
// records and writes ID:username pairs to an output file.
//
// It parses flags and environment overrides, validates configuration, and
// either runs input/output diagnostics (--check) or the generation pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/ugen/internal/check"
	"github.com/backmassage/ugen/internal/config"
	"github.com/backmassage/ugen/internal/display"
	"github.com/backmassage/ugen/internal/logging"
	"github.com/backmassage/ugen/internal/pipeline"
	"github.com/backmassage/ugen/internal/report"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "ugen: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "ugen: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ugen: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ugen: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg.InputFiles, cfg.OutputPath, log) {
			return 1
		}
		return 0
	}

	rep := report.New(&cfg, version)

	log.Info("=== ugen v%s (%s) ===", version, commit)
	log.Info("Out: %s", cfg.OutputPath)
	log.Debug(cfg.Verbose, "Run ID: %s", rep.RunID)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Info("")

	stats := pipeline.Run(&cfg, log)

	if cfg.ReportPath != "" {
		rep.Finish(stats)
		if err := rep.Write(cfg.ReportPath); err != nil {
			log.Warn("Cannot write report: %v", err)
		} else {
			log.Debug(cfg.Verbose, "Report written to %s", cfg.ReportPath)
		}
	}

	if !stats.OK() {
		return 1
	}
	return 0
}
