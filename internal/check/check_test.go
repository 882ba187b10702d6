package check

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// mockLogger records formatted messages per level.
type mockLogger struct {
	errors    []string
	successes []string
}

func (m *mockLogger) Info(string, ...interface{})  {}
func (m *mockLogger) Warn(string, ...interface{})  {}
func (m *mockLogger) Success(format string, args ...interface{}) {
	m.successes = append(m.successes, fmt.Sprintf(format, args...))
}
func (m *mockLogger) Error(format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

func TestRunCheck_AllGood(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "users.txt")
	if err := os.WriteFile(in, []byte("1:A:B:C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "output.txt")

	log := &mockLogger{}
	if !RunCheck([]string{in}, out, log) {
		t.Errorf("RunCheck = false, want true; errors: %v", log.errors)
	}
	if len(log.successes) != 2 {
		t.Errorf("got %d success lines, want 2", len(log.successes))
	}
}

func TestRunCheck_MissingInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.txt")
	out := filepath.Join(dir, "output.txt")

	log := &mockLogger{}
	if RunCheck([]string{missing}, out, log) {
		t.Error("RunCheck = true, want false for missing input")
	}
	if len(log.errors) != 1 {
		t.Errorf("got %d error lines, want 1", len(log.errors))
	}
}

func TestRunCheck_InputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")

	log := &mockLogger{}
	if RunCheck([]string{dir}, out, log) {
		t.Error("RunCheck = true, want false for directory input")
	}
}

func TestRunCheck_OutputDirMissing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "users.txt")
	if err := os.WriteFile(in, []byte("1:A:B:C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "no", "such", "dir", "output.txt")

	log := &mockLogger{}
	if RunCheck([]string{in}, out, log) {
		t.Error("RunCheck = true, want false for unwritable output")
	}
}

func TestRunCheck_OutputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "users.txt")
	if err := os.WriteFile(in, []byte("1:A:B:C\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	log := &mockLogger{}
	if RunCheck([]string{in}, dir, log) {
		t.Error("RunCheck = true, want false when output path is a directory")
	}
}

func TestRunCheck_ReportsAllProblems(t *testing.T) {
	dir := t.TempDir()
	missingA := filepath.Join(dir, "a.txt")
	missingB := filepath.Join(dir, "b.txt")
	out := filepath.Join(dir, "no", "dir", "output.txt")

	log := &mockLogger{}
	if RunCheck([]string{missingA, missingB}, out, log) {
		t.Error("RunCheck = true, want false")
	}
	if len(log.errors) != 3 {
		t.Errorf("got %d error lines, want 3 (two inputs plus output)", len(log.errors))
	}
}

func TestRunCheck_LeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "users.txt")
	if err := os.WriteFile(in, []byte("1:A:B:C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "output.txt")
	if err := os.WriteFile(out, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !RunCheck([]string{in}, out, &mockLogger{}) {
		t.Fatal("RunCheck = false, want true")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "previous run\n" {
		t.Errorf("check modified the output file: %q", data)
	}
}
