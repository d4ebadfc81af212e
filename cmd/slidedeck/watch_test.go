package main

// Notes:
// - watcher.Run: we drive a real fsnotify watcher on t.TempDir() with a short
//   debounce and a build func that reports each call on a channel.
// - Timing: waits are bounded by generous timeouts so slow CI machines only
//   slow the test down. Goroutine leaks are caught by goleak in TestMain.
// - Events for sibling files must not trigger a rebuild. We check that a
//   sibling write alone produces no build within a few debounce periods.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-slidedeck/internal/logging"
)

const (
	testDebounce = 20 * time.Millisecond
	waitTimeout  = 5 * time.Second
)

// startWatcher runs a watcher on path in the background. It returns the
// channel of build calls and a stop func that cancels and waits for Run.
func startWatcher(t *testing.T, path string, buildErr error) (<-chan int, func() error) {
	t.Helper()

	builds := make(chan int, 16)
	var n atomic.Int32
	w := &watcher{
		path:     path,
		debounce: testDebounce,
		logger:   logging.Discard(),
		build: func(context.Context) error {
			builds <- int(n.Add(1))
			return buildErr
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	stop := sync.OnceValue(func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(waitTimeout):
			t.Error("watcher did not stop")
			return nil
		}
	})
	t.Cleanup(func() { _ = stop() })
	return builds, stop
}

// waitBuild waits for the next build call and returns its sequence number.
func waitBuild(t *testing.T, builds <-chan int) int {
	t.Helper()
	select {
	case n := <-builds:
		return n
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for build")
		return 0
	}
}

// ---------------------------------------------------------------------------
// TestWatcher - Rebuild on change
// ---------------------------------------------------------------------------

func TestWatcher_RebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", "- type: title\n  title: v1\n")

	builds, stop := startWatcher(t, path, nil)

	if n := waitBuild(t, builds); n != 1 {
		t.Fatalf("initial build = %d, want 1", n)
	}

	if err := os.WriteFile(path, []byte("- type: title\n  title: v2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if n := waitBuild(t, builds); n != 2 {
		t.Errorf("rebuild = %d, want 2", n)
	}

	if err := stop(); err != nil {
		t.Errorf("Run() error = %v, want nil after cancel", err)
	}
}

func TestWatcher_RebuildsOnReplace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", "[]")

	builds, _ := startWatcher(t, path, nil)
	waitBuild(t, builds)

	// Editors often save by writing a temp file and renaming it over the original.
	tmp := writeFile(t, dir, ".deck.yaml.swp", "- title: new\n")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	if n := waitBuild(t, builds); n != 2 {
		t.Errorf("rebuild = %d, want 2", n)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", "[]")

	builds, _ := startWatcher(t, path, nil)
	waitBuild(t, builds)

	writeFile(t, dir, "notes.txt", "unrelated")

	select {
	case n := <-builds:
		t.Errorf("sibling change triggered build %d", n)
	case <-time.After(10 * testDebounce):
	}
}

func TestWatcher_KeepsWatchingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", "not: [valid")

	builds, _ := startWatcher(t, path, errors.New("parse failed"))
	waitBuild(t, builds)

	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if n := waitBuild(t, builds); n != 2 {
		t.Errorf("rebuild after failure = %d, want 2", n)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := &watcher{
		path:     filepath.Join(t.TempDir(), "missing", "deck.yaml"),
		debounce: testDebounce,
		logger:   logging.Discard(),
		build:    func(context.Context) error { return nil },
	}

	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() on a missing directory should fail")
	}
}
