package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PlanWatcher watches a single plan file and triggers a callback when it
// changes. Changes are debounced: editors often emit several write events
// for one save, and some replace the file entirely.
type PlanWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// NewPlanWatcher creates a watcher for the given plan file
func NewPlanWatcher(file string, debounce time.Duration, callback func(string)) (*PlanWatcher, error) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent directory: save-by-rename replaces the file inode,
	// which silently drops a watch on the file itself
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &PlanWatcher{
		watcher:  fsWatcher,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for file changes. Errors from the underlying
// watcher are reported through errs; the loop ends when the watcher is
// closed.
func (pw *PlanWatcher) Start(errs func(error)) {
	go func() {
		for {
			select {
			case event, ok := <-pw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != pw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					pw.fileChanged()
				}

			case err, ok := <-pw.watcher.Errors:
				if !ok {
					return
				}
				if errs != nil {
					errs(err)
				}
			}
		}
	}()
}

// fileChanged schedules the callback, resetting the debounce timer
func (pw *PlanWatcher) fileChanged() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.timer = time.AfterFunc(pw.debounce, func() {
		pw.callback(pw.path)
	})
}

// Close stops the watcher
func (pw *PlanWatcher) Close() error {
	return pw.watcher.Close()
}
