package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional values
	FilePattern string   // glob for file arguments (e.g., "*.json")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"log-level": {Values: []string{"debug", "info", "warn", "error"}},

	"config":   {FileGlob: "*.yaml,*.yml"},
	"env-file": {FileGlob: "*.env,.env*"},
	"data":     {FileGlob: "*.json,*.yaml,*.yml"},
	"markdown": {FileGlob: "*.md,*.markdown"},
	"output":   {FileGlob: "*.pptx"},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "build",
			Desc:        "Build a .pptx deck",
			Flags:       extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
			FilePattern: "*.json,*.yaml,*.yml,*.md,*.markdown",
		},
		{
			Name:  "doctor",
			Desc:  "Check the installation and environment",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "doctor", "completion", "version"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slidedeck completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(slidedeck completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(slidedeck completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    slidedeck completion fish > ~/.config/fish/completions/slidedeck.fish")
}

// commandNames lists command names in registry order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// generateBash renders a bash completion function.
func generateBash(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for slidedeck\n")
	b.WriteString("_slidedeck() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var valued []flagDef
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
			if f.Type == flagEnum || f.Type == flagFile {
				valued = append(valued, f)
			}
		}

		if len(valued) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range valued {
				names := "--" + f.Long
				if f.Short != "" {
					names += "|-" + f.Short
				}
				fmt.Fprintf(&b, "        %s)\n", names)
				if f.Type == flagEnum {
					fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				} else {
					b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
				}
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}

		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		case len(words) > 0:
			b.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(words, " "))
			if c.FilePattern != "" {
				b.WriteString("        else\n")
				b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
			}
			b.WriteString("        fi\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -o default -F _slidedeck slidedeck\n")
	return b.String()
}

// zshEscape escapes characters special inside a zsh _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("[", "\\[", "]", "\\]", ":", "\\:", "'", "'\\''")
	return r.Replace(s)
}

// generateZsh renders a zsh completion function.
func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef slidedeck\n\n")
	b.WriteString("_slidedeck() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
		case len(c.Flags) > 0:
			b.WriteString("        _arguments \\\n")
			for _, f := range c.Flags {
				fmt.Fprintf(&b, "            %s \\\n", zshFlagSpec(f))
			}
			if c.FilePattern != "" {
				b.WriteString("            '*:file:_files'\n")
			} else {
				b.WriteString("            && return\n")
			}
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _slidedeck slidedeck\n")
	return b.String()
}

// zshFlagSpec renders one _arguments spec.
func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		var parts []string
		for _, g := range globs(f.FileGlob) {
			parts = append(parts, "-g '"+g+"'")
		}
		action = fmt.Sprintf(":%s:_files %s", f.Long, strings.Join(parts, " "))
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, strings.ReplaceAll(action, "'", "\""))
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'",
		f.Short, f.Long, f.Short, f.Long, desc, strings.ReplaceAll(action, "'", "\""))
}

// generateFish renders fish completions.
func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for slidedeck\n")
	b.WriteString("function __fish_slidedeck_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_slidedeck_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c slidedeck -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c slidedeck -n '__fish_slidedeck_needs_command' -a %s -d '%s'\n",
			c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_slidedeck_using_command %s'", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c slidedeck %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c slidedeck %s -F\n", cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c slidedeck %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagString, flagInt:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// fishEscape escapes single quotes for fish strings.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
