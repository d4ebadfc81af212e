package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/alnah/go-slidedeck/internal/config"
)

// envPrefix namespaces every recognized environment variable.
const envPrefix = "SLIDEDECK_"

// Sentinel errors for environment loading.
var (
	ErrEnvFile   = errors.New("failed to read env file")
	ErrEnvConfig = errors.New("invalid environment variable")
)

// envConfig holds configuration from SLIDEDECK_* environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Pointer fields stay nil when the variable is unset.
type envConfig struct {
	ConfigPath string `env:"CONFIG"`    // config file name or path
	Output     string `env:"OUTPUT"`    // destination .pptx
	Workers    *int   `env:"WORKERS"`   // parallel render workers
	Strict     *bool  `env:"STRICT"`    // reject unknown slide types
	LogLevel   string `env:"LOG_LEVEL"` // debug, info, warn, error
	Author     string `env:"AUTHOR"`    // document author
}

// knownEnvVars lists valid SLIDEDECK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envPrefix + "CONFIG":    true,
	envPrefix + "OUTPUT":    true,
	envPrefix + "WORKERS":   true,
	envPrefix + "STRICT":    true,
	envPrefix + "LOG_LEVEL": true,
	envPrefix + "AUTHOR":    true,
}

// envVars merges the dotenv file (if any) beneath the process environment:
// a variable set in both places keeps its process value.
func envVars(envFile string, env *Environment) (map[string]string, error) {
	vars := make(map[string]string)

	if envFile != "" {
		f, err := os.Open(envFile) // #nosec G304 -- env file path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEnvFile, err)
		}
		defer func() { _ = f.Close() }()

		fileVars, err := godotenv.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEnvFile, envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range env.environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return vars, nil
}

// loadEnvConfig parses SLIDEDECK_* values out of vars.
func loadEnvConfig(vars map[string]string) (*envConfig, error) {
	cfg := &envConfig{}
	if err := envparse.ParseWithOptions(cfg, envparse.Options{
		Environment: vars,
		Prefix:      envPrefix,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return cfg, nil
}

// unknownEnvVars returns unrecognized SLIDEDECK_* names in vars, sorted.
// Helps catch typos like SLIDEDECK_WORKER instead of SLIDEDECK_WORKERS.
func unknownEnvVars(vars map[string]string) []string {
	var unknown []string
	for name := range vars {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars logs a warning per unrecognized SLIDEDECK_* variable.
func warnUnknownEnvVars(logger *slog.Logger, vars map[string]string) {
	for _, name := range unknownEnvVars(vars) {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig applies set environment values over config file values.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Workers != nil {
		cfg.Build.Workers = *env.Workers
	}
	if env.Strict != nil {
		cfg.Build.Strict = *env.Strict
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Author != "" {
		cfg.Metadata.Author = env.Author
	}
}
