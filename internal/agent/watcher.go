package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/proposta-ai/propgen/internal/template"
)

// Watcher keeps a FileRegistry fresh by rebuilding it when the store file
// changes on disk. Updates never mutate a loaded registry: each reload
// constructs a new immutable value and swaps the pointer, so concurrent
// lookups are safe without locks.
type Watcher struct {
	fs      afero.Fs
	current atomic.Pointer[FileRegistry]
	fw      *fsnotify.Watcher
}

// NewWatcher loads the store file and starts watching it. Close the returned
// watcher to release the notify handle.
func NewWatcher(fs afero.Fs, path string) (*Watcher, error) {
	reg, err := LoadFileRegistry(fs, path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{fs: fs, fw: fw}
	w.current.Store(reg)
	return w, nil
}

// Run processes file events until ctx is cancelled. A failed reload keeps
// the previous registry in place.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reg, err := LoadFileRegistry(w.fs, event.Name)
			if err != nil {
				slog.Warn("agent store reload failed, keeping previous registry",
					"path", event.Name, "error", err)
				continue
			}
			w.current.Store(reg)
			slog.Info("agent store reloaded", "path", event.Name, "agents", len(reg.List()))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("agent store watch error", "error", err)
		}
	}
}

// Lookup implements Registry against the most recently loaded store.
func (w *Watcher) Lookup(sector Sector, style template.Style) (*Config, error) {
	return w.current.Load().Lookup(sector, style)
}

// List implements Registry.
func (w *Watcher) List() []*Config {
	return w.current.Load().List()
}

// Close stops watching the store file.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
