// Package report writes an optional machine-readable YAML summary of a run
// (--report). The output file is the product; a report failure is reported
// as a warning by the caller, never as a fatal error.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/ugen/internal/config"
	"github.com/backmassage/ugen/internal/pipeline"
)

// Report is the serialized run summary.
type Report struct {
	RunID      string    `yaml:"run_id"`
	Version    string    `yaml:"version"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`

	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`
	DryRun bool     `yaml:"dry_run,omitempty"`

	FilesRead   int `yaml:"files_read"`
	FilesFailed int `yaml:"files_failed"`
	Lines       int `yaml:"lines"`
	Generated   int `yaml:"usernames_generated"`
	Skipped     int `yaml:"lines_skipped"`

	Skips []Skip `yaml:"skips,omitempty"`
}

// Skip records one malformed input line.
type Skip struct {
	File   string `yaml:"file"`
	Line   int    `yaml:"line"`
	Reason string `yaml:"reason"`
}

// New starts a report for the configured run with a fresh run ID.
func New(cfg *config.Config, version string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Version:   version,
		StartedAt: time.Now().UTC(),
		Inputs:    cfg.InputFiles,
		Output:    cfg.OutputPath,
		DryRun:    cfg.DryRun,
	}
}

// Finish copies the run counters into the report and stamps the end time.
func (r *Report) Finish(stats pipeline.RunStats) {
	r.FinishedAt = time.Now().UTC()
	r.FilesRead = stats.Files
	r.FilesFailed = stats.FailedFiles
	r.Lines = stats.Lines
	r.Generated = stats.Generated
	r.Skipped = stats.Skipped
	for _, s := range stats.Skips {
		r.Skips = append(r.Skips, Skip{File: s.File, Line: s.Line, Reason: s.Reason})
	}
}

// Write serializes the report as YAML to path.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
