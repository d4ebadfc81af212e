//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals end a build or watch session. SIGHUP covers a watch left
// running in a closed terminal.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
