package docs

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/pkg/logger"
)

// Watcher reloads the content store when files under the content directory
// change. Events are debounced so an editor save burst triggers one reload.
type Watcher struct {
	log      *slog.Logger
	svc      *Service
	root     string
	debounce time.Duration

	watcher *fsnotify.Watcher
	wg      sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

func NewWatcher(cfg *config.Config, log *slog.Logger, svc *Service) *Watcher {
	return &Watcher{
		log:      log.With(logger.Scope("watch")),
		svc:      svc,
		root:     cfg.Content.Dir,
		debounce: cfg.Content.WatchDebounce(),
	}
}

// Start watches the content root and every directory under it. Directories
// created later are picked up from their create events.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fsw

	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return err
	}

	w.wg.Add(1)
	go w.run()

	w.log.Info("watching content for changes",
		slog.String("dir", w.root),
		slog.Duration("debounce", w.debounce))
	return nil
}

// Stop closes the watcher and waits for the event loop to drain. A pending
// debounce timer is cancelled.
func (w *Watcher) Stop() error {
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						w.log.Warn("failed to watch new directory",
							slog.String("path", event.Name),
							logger.Error(err))
					}
				}
			}

			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", logger.Error(err))
		}
	}
}

// schedule resets the debounce timer; the reload fires once the directory
// has been quiet for the configured window.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if err := w.svc.Reload(context.Background()); err != nil {
		w.log.Error("content reload failed", logger.Error(err))
		return
	}
	w.log.Info("content reloaded")
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
