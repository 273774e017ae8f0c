package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change represents a detected change to a watched file.
type Change struct {
	Path    string
	Removed bool
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// Extensions limits directory watching to matching files
	// (default: .yaml, .yml, .json).
	Extensions []string

	// Interval is the polling interval (default: 500ms).
	Interval time.Duration
}

var defaultExtensions = []string{".yaml", ".yml", ".json"}

// Watcher polls files for modification time changes. Polling needs no
// platform notification APIs and behaves the same on network and overlay
// filesystems.
type Watcher struct {
	config     WatcherConfig
	onChange   func(Change)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 500 * time.Millisecond
	}
	if len(config.Extensions) == 0 {
		config.Extensions = defaultExtensions
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes. The callback runs on the
// watcher's goroutine.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins polling. It blocks until the context is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	// Seed timestamps so the first tick only reports real changes.
	w.scan(nil)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan walks the watched paths and records modification times. When visit
// is non-nil it runs for every file whose timestamp moved forward.
func (w *Watcher) scan(visit func(path string, mod time.Time)) {
	for _, p := range w.config.Paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			w.record(p, info.ModTime(), visit)
			continue
		}
		filepath.Walk(p, func(fp string, fi os.FileInfo, err error) error {
			if err != nil || fi.IsDir() {
				return nil
			}
			if !w.watchable(fp) {
				return nil
			}
			w.record(fp, fi.ModTime(), visit)
			return nil
		})
	}
}

func (w *Watcher) record(path string, mod time.Time, visit func(string, time.Time)) {
	w.mu.Lock()
	last, seen := w.timestamps[path]
	w.timestamps[path] = mod
	w.mu.Unlock()

	if visit != nil && (!seen || mod.After(last)) {
		visit(path, mod)
	}
}

func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback == nil {
		return
	}

	var changes []Change
	w.scan(func(path string, _ time.Time) {
		changes = append(changes, Change{Path: path})
	})

	// Deleted files
	w.mu.Lock()
	for p := range w.timestamps {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.timestamps, p)
			changes = append(changes, Change{Path: p, Removed: true})
		}
	}
	w.mu.Unlock()

	for _, c := range changes {
		callback(c)
	}
}

// watchable reports whether a file in a watched directory is interesting.
func (w *Watcher) watchable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.config.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
