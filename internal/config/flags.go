package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into output, behavior, display, and utility. Color
// override flags are captured as bools and applied after Parse so Config
// defaults (and env overrides) hold unless the user passes the flag.

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("ugen", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var ov overrideFlags

	defineOutputFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &ov)
	defineUtilityFlags(fs, cfg, &ov)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &ov)

	if ov.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "ugen v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either pin a tri-state default (color) or trigger exit (help, version).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineOutputFlags registers -o/--output and --report.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Output file for ID:username pairs")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "Same as --output")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "Write a YAML run report to this path")
}

// defineBehaviorFlags registers -d/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Process input but do not write the output file")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, ov *overrideFlags) {
	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, ov *overrideFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Check inputs and output are usable, then exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies post-Parse override values into cfg.
func applyOverrideFlags(cfg *Config, ov *overrideFlags) {
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputFiles from the remaining args. The presence
// check lives in [Config.Validate]; here we only reject stray empty args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	for _, a := range args {
		if strings.TrimSpace(a) == "" {
			return errors.New("empty input file argument")
		}
	}
	cfg.InputFiles = args
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "ugen v" + version + " - login name generator"},
		{"", ""},
		{"  ugen [OPTIONS] -o <output_file> <input_file>...", ""},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "Output file for ID:username pairs (required)"},
		{"  --report <path>", "Write a YAML run report"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Process input but do not write the output file"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Check inputs and output are usable, then exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Input lines: ID:Forename[:Middlename]:Surname:Department", ""},
		{"Environment: UGEN_OUTPUT, UGEN_REPORT, UGEN_LOG_FILE, UGEN_VERBOSE, UGEN_COLOR", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
