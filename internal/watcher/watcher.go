// Package watcher refreshes the search engine when corpus files change
// on disk. A write, create, or remove on a domain's YAML file drops
// that domain's index and clears the result cache, so the next search
// re-reads the current records.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// Invalidator is the engine surface the watcher drives.
type Invalidator interface {
	Invalidate(domainName string)
	ClearCache(ctx context.Context) error
}

// Watcher monitors the corpus directory.
type Watcher struct {
	fsw    *fsnotify.Watcher
	engine Invalidator
	logger *zap.Logger
}

// New creates a watcher for the corpus directory.
func New(dir string, engine Invalidator, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{fsw: fsw, engine: engine, logger: logger}, nil
}

// Run processes events until the context is canceled. Call in its own
// goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			w.handleChange(ctx, event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Corpus watch error", zap.Error(err))
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handleChange invalidates the domain backed by the changed file. The
// result cache is cleared wholesale because cached responses are not
// versioned per domain.
func (w *Watcher) handleChange(ctx context.Context, path string) {
	domainName, ok := domainForFile(filepath.Base(path))
	if !ok {
		return
	}

	w.engine.Invalidate(domainName)
	if err := w.engine.ClearCache(ctx); err != nil {
		w.logger.Warn("Failed to clear result cache", zap.Error(err))
	}
	w.logger.Info("Corpus changed, index invalidated",
		zap.String("domain", domainName),
		zap.String("file", filepath.Base(path)),
	)
}

// domainForFile maps a corpus filename to its domain.
func domainForFile(name string) (string, bool) {
	for _, cfg := range domain.Domains() {
		if cfg.File() == name {
			return cfg.Name(), true
		}
	}
	return "", false
}
