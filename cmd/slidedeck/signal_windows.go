//go:build windows

package main

import "os"

// shutdownSignals end a build or watch session.
// syscall.SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
