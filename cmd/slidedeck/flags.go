package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	envFile  string
	logLevel string
	quiet    bool
	verbose  bool
}

// inputFlags selects the deck source. Exactly one may be set.
type inputFlags struct {
	sections string // "a|b|c" quick deck
	title    string // quick deck title, or title override for files
	data     string // JSON or YAML descriptors
	markdown string // Markdown outline
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	input   inputFlags
	output  string
	workers int
	strict  bool
	watch   bool
	author  string
	closing bool

	// set records flags given on the command line, so zero values can
	// still override env and config.
	set map[string]bool
}

// changed reports whether name was given on the command line.
func (f *buildFlags) changed(name string) bool {
	return f.set[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file with SLIDEDECK_* variables")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addInputFlags adds deck source flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.sections, "sections", "s", "", "content lines separated by '|'")
	fs.StringVarP(&f.title, "title", "t", "", "deck title")
	fs.StringVarP(&f.data, "data", "j", "", "slide descriptors file (JSON or YAML)")
	fs.StringVarP(&f.markdown, "markdown", "m", "", "Markdown article to import")
}

// newBuildFlagSet registers every build flag on a new FlagSet bound to f.
// Shared by parseBuildFlags and completion generation.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output .pptx path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel render workers (0 = sequential)")
	fs.BoolVar(&f.strict, "strict", false, "reject unknown slide types")
	fs.BoolVar(&f.watch, "watch", false, "rebuild when the input file changes")
	fs.StringVar(&f.author, "author", "", "author recorded in document properties")
	fs.BoolVar(&f.closing, "closing", false, "append a closing slide to Markdown imports")

	addInputFlags(fs, &f.input)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{set: make(map[string]bool)}
	fs := newBuildFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err // usage already printed by fs.Usage
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json   bool
	output string
}

// newDoctorFlagSet registers doctor flags on a new FlagSet bound to f.
func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	fs.StringVarP(&f.output, "output", "o", "", "check this output path is writable")
	return fs
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newDoctorFlagSet(f)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}
