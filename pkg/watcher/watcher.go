package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches directories and reports files that were written, once
// they have been quiet for the debounce interval
type DirWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	filters   map[string]func(string) bool
	debounce  time.Duration
	timers    map[string]*time.Timer
	errors    func(error)
}

// NewDirWatcher creates a new directory watcher
func NewDirWatcher(debounce time.Duration) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &DirWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		filters:   make(map[string]func(string) bool),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		errors:    func(err error) { fmt.Printf("Watcher error: %v\n", err) },
	}, nil
}

// ExtensionFilter accepts files with one of the given extensions (case-insensitive)
func ExtensionFilter(extensions ...string) func(string) bool {
	return func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range extensions {
			if ext == strings.ToLower(e) {
				return true
			}
		}
		return false
	}
}

// Watch starts watching dir. callback receives the path of every file accepted
// by filter after it was created or written. A nil filter accepts every file.
func (dw *DirWatcher) Watch(dir string, filter func(string) bool, callback func(string)) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	if err := dw.watcher.Add(absDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absDir, err)
	}

	dw.callbacks[absDir] = callback
	dw.filters[absDir] = filter
	return nil
}

// OnError replaces the handler for errors reported by the watcher
func (dw *DirWatcher) OnError(handler func(error)) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.errors = handler
}

// Start begins watching for file changes
func (dw *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}

				// Only trigger on write or create events
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					dw.handleFileChange(event.Name)
				}

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				dw.reportError(err)
			}
		}
	}()
}

func (dw *DirWatcher) reportError(err error) {
	dw.mu.Lock()
	handler := dw.errors
	dw.mu.Unlock()
	handler(err)
}

// handleFileChange handles a file change event with debouncing
func (dw *DirWatcher) handleFileChange(filePath string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dir := filepath.Dir(filePath)
	callback, exists := dw.callbacks[dir]
	if !exists {
		return
	}
	if filter := dw.filters[dir]; filter != nil && !filter(filePath) {
		return
	}

	// Cancel existing timer if any
	if timer, exists := dw.timers[filePath]; exists {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(dw.debounce, func() {
		if dw.claim(filePath, timer) {
			callback(filePath)
		}
	})
	dw.timers[filePath] = timer
}

// claim removes the pending timer of filePath if it is still timer.
// A timer that fired while being replaced by a newer one loses the claim.
func (dw *DirWatcher) claim(filePath string, timer *time.Timer) bool {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.timers[filePath] != timer {
		return false
	}
	delete(dw.timers, filePath)
	return true
}

// Close stops the watcher and any pending callbacks
func (dw *DirWatcher) Close() error {
	dw.mu.Lock()
	for _, timer := range dw.timers {
		timer.Stop()
	}
	dw.timers = make(map[string]*time.Timer)
	dw.mu.Unlock()

	return dw.watcher.Close()
}
