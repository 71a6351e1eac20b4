package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/stylemap/internal/logging"
)

// Handler receives the freshly loaded configuration after the watched
// file changes.
type Handler func(cfg Config)

// Watcher reloads the configuration when its file changes on disk.
// Editors replace config files with rename-and-write dances, so the
// watcher monitors the parent directory and filters for the file name,
// debouncing bursts of events into a single reload.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	log      *logging.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
	done    chan struct{}
}

// NewWatcher creates a watcher for the config file at path. The
// handler runs on the watcher's goroutine after each debounced change.
func NewWatcher(path string, handler Handler, log *logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		debounce: 100 * time.Millisecond,
		handler:  handler,
		log:      logging.Or(log).WithComponent("config-watcher"),
		watcher:  fsw,
		done:     make(chan struct{}),
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Close stops the watcher. Pending reloads are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error: %v", err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed, keeping previous config: %v", err)
		return
	}
	w.log.Info("config reloaded from %s", w.path)
	w.handler(cfg)
}
