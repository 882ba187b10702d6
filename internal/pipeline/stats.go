package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Files       int // input files read to completion
	FailedFiles int // input files that could not be read
	Lines       int // non-blank lines seen
	Generated   int // usernames emitted
	Skipped     int // malformed lines skipped
	WriteFailed bool

	// Skips lists every skipped line for the summary and the run report.
	Skips []SkippedLine
}

// SkippedLine records one malformed input line and why it was skipped.
type SkippedLine struct {
	File   string
	Line   int
	Reason string
}

// OK reports whether the run completed without file-level failures.
func (s *RunStats) OK() bool {
	return s.FailedFiles == 0 && !s.WriteFailed
}
