package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and process environment lookup.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// getenv looks up key, tolerating a partially filled Environment.
func (e *Environment) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// environ lists KEY=VALUE pairs, tolerating a partially filled Environment.
func (e *Environment) environ() []string {
	if e.Environ == nil {
		return nil
	}
	return e.Environ()
}
