package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidedeck <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build a .pptx deck (default when only flags are given)")
	fmt.Fprintln(w, "  doctor      Check the installation and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'slidedeck help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidedeck build -o <out.pptx> (-s \"a|b|c\" [-t title] | -j slides.json | -m article.md | <file>) [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render slides to a PowerPoint file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input (choose one):")
	fmt.Fprintln(w, "  -s, --sections <s>        Content lines separated by '|' (title + content deck)")
	fmt.Fprintln(w, "  -t, --title <s>           Deck title (with --sections), or title override")
	fmt.Fprintln(w, "  -j, --data <path>         Slide descriptors, JSON or YAML")
	fmt.Fprintln(w, "  -m, --markdown <path>     Markdown article, one slide per H2 section")
	fmt.Fprintln(w, "      <file>                .md/.markdown imports Markdown, anything else descriptors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .pptx path (or output.path in config)")
	fmt.Fprintln(w, "      --author <s>          Author recorded in document properties")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel render workers, 1-64 (0 = sequential)")
	fmt.Fprintln(w, "      --strict              Reject unknown slide types instead of rendering as content")
	fmt.Fprintln(w, "      --closing             Append a closing slide to Markdown imports")
	fmt.Fprintln(w, "      --watch               Rebuild when the input file changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Dotenv file with SLIDEDECK_* variables")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SLIDEDECK_CONFIG, SLIDEDECK_OUTPUT, SLIDEDECK_WORKERS, SLIDEDECK_STRICT,")
	fmt.Fprintln(w, "  SLIDEDECK_LOG_LEVEL, SLIDEDECK_AUTHOR")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage/config, 3 I/O, 4 input data, 5 render")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidedeck doctor [--json] [-o out.pptx]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Encode a probe deck and check the environment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w, "  -o, --output <path>       Also check this output path is writable")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: slidedeck version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: slidedeck help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
