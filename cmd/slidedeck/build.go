package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-slidedeck"
	"github.com/alnah/go-slidedeck/internal/config"
	"github.com/alnah/go-slidedeck/internal/fileutil"
	"github.com/alnah/go-slidedeck/internal/hints"
	"github.com/alnah/go-slidedeck/internal/logging"
)

// Sentinel errors for the build command.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrConflictingInput = errors.New("only one of --sections, --data, --markdown or an input file may be given")
	ErrNoOutput         = errors.New("no output path: use --output or output.path in config")
	ErrReadInput        = errors.New("failed to read input")
	ErrWatchNeedsFile   = errors.New("--watch needs --data, --markdown or an input file")
)

// Pipeline stages named in error output.
const (
	stageInput  = "input"
	stageRender = "render"
	stageWrite  = "write"
)

// deckExtension is appended to output paths without an extension.
const deckExtension = "pptx"

// stageError tags an error with the pipeline stage that produced it.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return e.stage + ": " + e.err.Error() }

func (e *stageError) Unwrap() error { return e.err }

// sourceKind identifies where slide descriptors come from.
type sourceKind int

const (
	sourceSections sourceKind = iota // "a|b|c" on the command line
	sourceData                       // JSON or YAML descriptor file
	sourceMarkdown                   // Markdown article
)

// deckSource is the resolved input of a build.
type deckSource struct {
	kind     sourceKind
	path     string // data or markdown file
	sections string
	title    string // quick deck title
}

// buildPlan carries everything one build needs. Watch mode reuses it for
// each rebuild.
type buildPlan struct {
	source deckSource
	cfg    *config.Config
	title  string // explicit --title, overrides the input's title
	author bool   // --author given, overrides the input's author
	quiet  bool
}

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		printError(env.Stderr, err, "")
		return exitCodeFor(err)
	}

	if err := runBuild(ctx, flags, positional, env); err != nil {
		printError(env.Stderr, err, configName(flags, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild resolves settings and input, then builds once or watches.
func runBuild(ctx context.Context, f *buildFlags, args []string, env *Environment) error {
	src, err := resolveSource(f, args)
	if err != nil {
		return err
	}

	cfg, vars, err := resolveSettings(f, env)
	if err != nil {
		return err
	}

	logger := newCLILogger(env, resolveLevel(f, cfg))
	warnUnknownEnvVars(logger, vars)
	logger.Debug("runtime", "gomaxprocs", runtime.GOMAXPROCS(0), "workers", cfg.Build.Workers)

	if cfg.Output.Path == "" {
		return ErrNoOutput
	}
	if filepath.Ext(cfg.Output.Path) == "" {
		cfg.Output.Path = fileutil.EnsureExtension(cfg.Output.Path, deckExtension)
		logger.Info("output has no extension, writing ."+deckExtension, "path", cfg.Output.Path)
	}

	title := ""
	if f.changed("title") && src.kind != sourceSections {
		title = f.input.title
	}
	plan := &buildPlan{
		source: src,
		cfg:    cfg,
		title:  title,
		author: f.changed("author"),
		quiet:  f.common.quiet,
	}

	if f.watch {
		if src.path == "" {
			return ErrWatchNeedsFile
		}
		w := &watcher{
			path:     src.path,
			debounce: defaultDebounce,
			logger:   logger,
			build: func(ctx context.Context) error {
				return buildDeck(ctx, plan, env, logger)
			},
		}
		return w.Run(ctx)
	}

	return buildDeck(ctx, plan, env, logger)
}

// resolveSource picks the single deck source from flags and positional args.
// A positional file is Markdown when its extension says so, descriptors otherwise.
func resolveSource(f *buildFlags, args []string) (deckSource, error) {
	if len(args) > 1 {
		return deckSource{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, args[1])
	}

	var sources []deckSource
	if f.changed("sections") {
		sources = append(sources, deckSource{kind: sourceSections, sections: f.input.sections, title: f.input.title})
	}
	if f.input.data != "" {
		sources = append(sources, deckSource{kind: sourceData, path: f.input.data})
	}
	if f.input.markdown != "" {
		sources = append(sources, deckSource{kind: sourceMarkdown, path: f.input.markdown})
	}
	if len(args) == 1 {
		kind := sourceData
		if looksLikeMarkdown(args[0]) {
			kind = sourceMarkdown
		}
		sources = append(sources, deckSource{kind: kind, path: args[0]})
	}

	switch len(sources) {
	case 0:
		return deckSource{}, ErrNoInput
	case 1:
		return sources[0], nil
	default:
		return deckSource{}, ErrConflictingInput
	}
}

// looksLikeMarkdown reports whether path has a Markdown extension.
func looksLikeMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// resolveSettings layers config file, environment and flags.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveSettings(f *buildFlags, env *Environment) (*config.Config, map[string]string, error) {
	vars, err := envVars(f.common.envFile, env)
	if err != nil {
		return nil, nil, err
	}
	envCfg, err := loadEnvConfig(vars)
	if err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultConfig()
	name := f.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("resolving settings: %w", err)
	}
	return cfg, vars, nil
}

// mergeFlags merges CLI flags into config. Only flags given on the command
// line override, so "--workers 0" still forces sequential rendering.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.changed("output") {
		cfg.Output.Path = f.output
	}
	if f.changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if f.changed("strict") {
		cfg.Build.Strict = f.strict
	}
	if f.changed("author") {
		cfg.Metadata.Author = f.author
	}
	if f.changed("closing") {
		cfg.Markdown.Closing = f.closing
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.common.logLevel
	}
}

// resolveLevel maps --verbose and --quiet over the configured level.
func resolveLevel(f *buildFlags, cfg *config.Config) logging.Level {
	switch {
	case f.common.verbose:
		return logging.LevelDebug
	case f.common.quiet:
		return logging.LevelError
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

// newCLILogger logs to stderr, in color only on a terminal.
func newCLILogger(env *Environment, level logging.Level) *slog.Logger {
	return logging.NewLogger(env.Stderr, logging.Options{
		Level:   level,
		NoColor: logging.ColorDisabled(env.getenv) || !isTerminal(env.Stderr),
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// buildDeck loads the input, renders it and writes the package.
func buildDeck(ctx context.Context, plan *buildPlan, env *Environment, logger *slog.Logger) error {
	start := env.Now()
	cfg := plan.cfg

	deck, err := loadDeck(ctx, plan.source, cfg, logger)
	if err != nil {
		return &stageError{stage: stageInput, err: err}
	}
	if len(deck.Slides) == 0 {
		logger.Warn("input has no slides", "path", plan.source.path)
	}

	doc, err := newAssembler(cfg, logger).Assemble(ctx, deck.Slides)
	if err != nil {
		return &stageError{stage: stageRender, err: err}
	}
	doc.Title = deck.Title
	doc.Author = deck.Author
	if plan.title != "" {
		doc.Title = plan.title
	}
	if plan.author {
		doc.Author = cfg.Author()
	}

	w, err := slidedeck.NewWriter(
		slidedeck.WithClock(clockFor(env)),
		slidedeck.WithDefaultTitle(cfg.Metadata.Title),
		slidedeck.WithDefaultAuthor(cfg.Author()),
		slidedeck.WithWriterLogger(logger),
	)
	if err != nil {
		return &stageError{stage: stageRender, err: err}
	}

	path := cfg.Output.Path
	if err := w.Write(doc, path); err != nil {
		stage := stageWrite
		if errors.Is(err, slidedeck.ErrEncodeDeck) {
			stage = stageRender
		}
		return &stageError{stage: stage, err: err}
	}

	logger.Info("deck written", "path", path, "slides", doc.Len(), "elapsed", env.Now().Sub(start))
	if !plan.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	return nil
}

// loadDeck produces descriptors from the build's source.
func loadDeck(ctx context.Context, src deckSource, cfg *config.Config, logger *slog.Logger) (*slidedeck.Deck, error) {
	switch src.kind {
	case sourceSections:
		return &slidedeck.Deck{Title: src.title, Slides: slidedeck.QuickDeck(src.title, src.sections)}, nil

	case sourceMarkdown:
		data, err := os.ReadFile(src.path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return slidedeck.FromMarkdown(ctx, data, slidedeck.MarkdownOptions{
			SummaryHeadings: cfg.Markdown.SummaryHeadings,
			Closing:         cfg.Markdown.Closing,
			ClosingTitle:    cfg.Markdown.ClosingTitle,
			ClosingSubtitle: cfg.Markdown.ClosingSubtitle,
		})

	default:
		data, err := os.ReadFile(src.path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return slidedeck.ParseDeck(data, slidedeck.ParseOptions{
			Strict: cfg.Build.Strict,
			Logger: logger,
		})
	}
}

// newAssembler renders sequentially unless workers are configured.
func newAssembler(cfg *config.Config, logger *slog.Logger) *slidedeck.Assembler {
	opts := []slidedeck.Option{slidedeck.WithLogger(logger)}
	if cfg.Build.Workers > 0 {
		opts = append(opts, slidedeck.WithWorkers(cfg.Build.Workers))
	}
	return slidedeck.NewAssembler(opts...)
}

// clockFor honors SOURCE_DATE_EPOCH for reproducible builds.
func clockFor(env *Environment) func() time.Time {
	if v := env.getenv("SOURCE_DATE_EPOCH"); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.Unix(sec, 0).UTC()
			return func() time.Time { return t }
		}
	}
	return env.Now
}

// configName returns the config name the build would load, for hints.
func configName(f *buildFlags, env *Environment) string {
	if f.common.config != "" {
		return f.common.config
	}
	return env.getenv(envPrefix + "CONFIG")
}

// printError writes one "<stage>: <error>" line plus an optional hint.
func printError(w io.Writer, err error, cfgName string) {
	fmt.Fprintln(w, err.Error()+hintFor(err, cfgName))
}

// hintFor picks an actionable hint for err, or "".
func hintFor(err error, cfgName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if cfgName != "" && !fileutil.IsFilePath(cfgName) {
			return hints.ForConfigNotFound(config.SearchPaths(cfgName))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, slidedeck.ErrUnknownSlideType):
		return hints.ForUnknownSlideType(slidedeck.KnownTags())
	case errors.Is(err, slidedeck.ErrDescriptorParse):
		return hints.ForInputFormat()
	case errors.Is(err, slidedeck.ErrEmptyInput):
		return hints.ForEmptyInput()
	case errors.Is(err, slidedeck.ErrWriteDeck) && errors.Is(err, os.ErrPermission):
		return hints.ForPermission()
	case errors.Is(err, slidedeck.ErrWriteDeck) && errors.Is(err, os.ErrNotExist):
		return hints.ForOutputDirectory()
	}
	return ""
}
