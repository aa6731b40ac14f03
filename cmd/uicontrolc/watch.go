package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/shaderui/internal/console"
)

const debounceDelay = 300 * time.Millisecond

// watch checks paths once, then again every time one of them changes, until
// ctx is cancelled or the process is interrupted.
func (a *app) watch(ctx context.Context, paths []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so the parent directories are
	// watched instead of the files themselves.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	fmt.Fprintln(a.stderr, console.FormatInfoMessage(fmt.Sprintf("Watching %d files for changes", len(watched))))
	a.recheck(paths)

	batch := newDebouncer(debounceDelay, a.recheck)
	defer batch.stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if !watched[event.Name] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			a.log.Debug("detected change", "file", event.Name, "op", event.Op.String())
			batch.add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			a.log.Warn("watcher error", "error", err)

		case <-ctx.Done():
			a.log.Debug("stopping watch mode")
			return nil
		}
	}
}

// recheck runs check on paths, reporting failures without stopping.
func (a *app) recheck(paths []string) {
	if err := a.check(paths); err != nil && !errors.Is(err, errDiagnostics) {
		fmt.Fprintln(a.stderr, console.FormatWarningMessage(err.Error()))
	}
}

// debouncer collects changed files and hands them to fn in one sorted batch
// once no change arrived for delay. Calls to fn never overlap.
type debouncer struct {
	delay time.Duration
	fn    func(files []string)

	mu      sync.Mutex // guards timer, pending and stopped
	timer   *time.Timer
	pending map[string]bool
	stopped bool

	running sync.Mutex // held while fn runs
}

func newDebouncer(delay time.Duration, fn func(files []string)) *debouncer {
	return &debouncer{
		delay:   delay,
		fn:      fn,
		pending: make(map[string]bool),
	}
}

// add records a change to file and restarts the delay.
func (d *debouncer) add(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending[file] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.running.Lock()
	defer d.running.Unlock()

	d.mu.Lock()
	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	files := slices.Sorted(maps.Keys(d.pending))
	d.pending = make(map[string]bool)
	d.mu.Unlock()

	d.fn(files)
}

// stop cancels pending batches and waits for a running one to finish.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.running.Lock()
	d.running.Unlock()
}
