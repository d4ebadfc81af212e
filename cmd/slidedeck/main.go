package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	code := runMain(os.Args[1:], DefaultEnv())
	undo()
	os.Exit(code)
}

// runMain dispatches args to a command and returns the exit code.
// Flags without a command run build.
func runMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[0], args[1:]
	switch {
	case cmd == "build":
		return runBuildCmd(ctx, rest, env)
	case cmd == "doctor":
		return runDoctorCmd(rest, env)
	case cmd == "completion":
		if err := runCompletion(rest, env); err != nil {
			printError(env.Stderr, err, "")
			return exitCodeFor(err)
		}
		return ExitSuccess
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "slidedeck %s\n", Version)
		return ExitSuccess
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		return runHelp(rest, env)
	case strings.HasPrefix(cmd, "-"):
		return runBuildCmd(ctx, args, env)
	case strings.ContainsAny(cmd, "./\\"):
		// Bare input file: "slidedeck deck.yaml -o out.pptx".
		return runBuildCmd(ctx, args, env)
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printError(env.Stderr, err, "")
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}
}
