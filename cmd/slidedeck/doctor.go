package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-slidedeck"
	"github.com/alnah/go-slidedeck/internal/fileutil"
	"github.com/alnah/go-slidedeck/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Assets   assetInfo  `json:"assets"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// assetInfo holds the result of encoding a probe deck.
type assetInfo struct {
	OK     bool `json:"ok"`
	Slides int  `json:"slides"`
	Parts  int  `json:"parts"`
	Bytes  int  `json:"bytes"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	GoMaxProcs    int    `json:"gomaxprocs"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable   bool   `json:"temp_writable"`
	OutputDir      string `json:"output_dir,omitempty"`
	OutputWritable bool   `json:"output_writable,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		printError(env.Stderr, err, "")
		return exitCodeFor(err)
	}

	result := runDoctor(flags.output, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(output string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoMaxProcs: runtime.GOMAXPROCS(0),
		},
	}

	checkAssets(result)
	checkEnvironment(result, env)
	checkSystem(result, output)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkAssets encodes a probe deck with the embedded parts and reads the
// archive back.
func checkAssets(result *doctorResult) {
	doc := slidedeck.Assemble([]slidedeck.Descriptor{
		slidedeck.TitleSlide{Title: "doctor"},
		slidedeck.ContentSlide{Title: slidedeck.DefaultContentTitle, Lines: []string{"probe"}},
		slidedeck.SummarySlide{Title: "summary", Points: []string{"probe"}},
		slidedeck.ClosingSlide{Title: slidedeck.DefaultClosingTitle},
	})

	w, err := slidedeck.NewWriter()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Embedded package parts unusable: %v", err))
		return
	}
	data, err := w.Encode(doc)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Probe deck failed to encode: %v", err))
		return
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Probe deck is not a valid archive: %v", err))
		return
	}

	result.Assets = assetInfo{
		OK:     true,
		Slides: doc.Len(),
		Parts:  len(zr.File),
		Bytes:  len(data),
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env)
	result.Env.CI = hints.IsCI(env.getenv)
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(env *Environment) (bool, string) {
	// Explicit override (highest priority)
	if env.getenv(envPrefix+"CONTAINER") == "1" {
		return true, envPrefix + "CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := env.getenv("container"); v != "" {
		return true, "container=" + v
	}
	if env.getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory and, when given, the output
// directory accept new files.
func checkSystem(result *doctorResult, output string) {
	tmpDir := os.TempDir()
	if err := fileutil.DirWritable(tmpDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		result.System.TempWritable = true
	}

	if output == "" {
		return
	}
	dir := filepath.Dir(output)
	result.System.OutputDir = dir
	if err := fileutil.DirWritable(dir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s (%v)", dir, err))
		return
	}
	result.System.OutputWritable = true
	if fileutil.FileExists(output) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output %s exists and will be replaced", output))
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "slidedeck doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Package parts")
	if r.Assets.OK {
		fmt.Fprintf(w, "  [OK] Probe deck: %d slides, %d parts, %d bytes\n",
			r.Assets.Slides, r.Assets.Parts, r.Assets.Bytes)
	} else {
		fmt.Fprintln(w, "  [ERROR] Probe deck failed")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d\n", r.Env.GoMaxProcs)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.OutputDir != "" {
		if r.System.OutputWritable {
			fmt.Fprintf(w, "  [OK] Output directory: %s writable\n", r.System.OutputDir)
		} else {
			fmt.Fprintf(w, "  [ERROR] Output directory: %s not writable\n", r.System.OutputDir)
		}
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
