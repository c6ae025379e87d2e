// Package catalogwatch reloads a local catalog file when it changes on disk.
package catalogwatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"sword-picker/internal/api"
	"sword-picker/internal/versions"
)

// Watcher emits a freshly parsed catalog after every change to its file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	updates chan *versions.Catalog
	errors  chan error
}

// New watches the directory holding path, so editors that replace the file
// instead of writing it in place are still seen.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *versions.Catalog, 1),
		errors:  make(chan error, 1),
	}, nil
}

// Updates delivers reloaded catalogs. Only the newest pending one is kept.
func (w *Watcher) Updates() <-chan *versions.Catalog { return w.updates }

// Errors delivers reload failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Run processes file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("catalog watcher error", "error", err)
			w.sendErr(err)
		}
	}
}

func (w *Watcher) reload() {
	c, err := api.ReadCatalogFile(w.path)
	if err != nil {
		slog.Warn("catalog reload failed", "path", w.path, "error", err)
		w.sendErr(err)
		return
	}
	slog.Info("catalog reloaded", "path", w.path, "versions", c.Len())

	select {
	case <-w.updates:
	default:
	}
	w.updates <- c
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
