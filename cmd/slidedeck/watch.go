package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce collapses the burst of events an editor save produces.
const defaultDebounce = 200 * time.Millisecond

// watcher rebuilds the deck whenever its input file changes.
// The parent directory is watched, so saves that replace the file by
// rename are seen as a Create of the same name.
type watcher struct {
	path     string
	debounce time.Duration
	build    func(context.Context) error
	logger   *slog.Logger
}

// Run builds once, then rebuilds after each settled change until ctx is
// done. Build failures are logged and do not stop watching.
func (w *watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.logger.Info("watching for changes", "path", target)

	w.rebuild(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("change detected", "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			w.logger.Info("rebuilding", "path", target)
			w.rebuild(ctx)
		}
	}
}

// rebuild runs one build and logs its failure.
func (w *watcher) rebuild(ctx context.Context) {
	if err := w.build(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("build failed", "err", err)
	}
}
