// Package check implements the --check mode: it verifies that every
// configured input file is readable and that the output location is
// writable, without running the pipeline.
package check

import (
	"errors"
	"os"
	"path/filepath"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck verifies each input path and the output path, logging one line
// per item. It checks everything before returning so all problems are
// reported at once; the result is false if any check failed.
func RunCheck(inputs []string, output string, log Logger) bool {
	log.Info("=== Input/output check ===")

	ok := true
	for _, path := range inputs {
		if err := checkReadable(path); err != nil {
			log.Error("input %s: %v", path, err)
			ok = false
			continue
		}
		log.Success("input %s: readable", path)
	}

	if err := checkWritable(output); err != nil {
		log.Error("output %s: %v", output, err)
		ok = false
	} else {
		log.Success("output %s: writable", output)
	}
	return ok
}

// checkReadable verifies path names a regular file that opens for reading.
func checkReadable(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return errors.New("is a directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// checkWritable verifies a file could be created (or overwritten) at path
// by creating and removing a probe file in the same directory. The real
// output path is left untouched.
func checkWritable(path string) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return errors.New("is a directory")
	}
	dir := filepath.Dir(path)
	probe, err := os.CreateTemp(dir, ".ugen-check-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Remove(name)
}
