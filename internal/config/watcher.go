package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Subscriber receives each successfully re-loaded configuration.
type Subscriber func(cfg Config)

// Watcher follows the configuration file and re-loads it on change.
// Editors commonly replace files by rename, so the parent directory is
// watched and events are filtered by name.
type Watcher struct {
	path   string
	logger *slog.Logger
	fw     *fsnotify.Watcher

	mu     sync.Mutex
	subs   []Subscriber
	closed bool
	done   chan struct{}
}

// NewWatcher starts watching path. The file does not need to exist yet.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close() //nolint:errcheck
		return nil, err
	}
	w := &Watcher{
		path:   path,
		logger: logger,
		fw:     fw,
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Subscribe registers a callback for future reloads.
func (w *Watcher) Subscribe(fn Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// A half-written or invalid file keeps the previous config.
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	w.logger.Info("configuration reloaded", "path", w.path)

	w.mu.Lock()
	subs := make([]Subscriber, len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(cfg)
	}
}
