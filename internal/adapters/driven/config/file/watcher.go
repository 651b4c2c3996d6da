package file

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

// PromptWatcher invalidates a prompt store's cache when prompt files
// change on disk, so long-running sessions pick up edits without a
// restart.
type PromptWatcher struct {
	watcher *fsnotify.Watcher
	store   driven.PromptStore
	done    chan struct{}
}

// NewPromptWatcher starts watching the given directory and reloads the
// store on any file change. The directory must exist before watching;
// callers should trigger the store's lazy init (one Load call) first.
func NewPromptWatcher(dir string, store driven.PromptStore) (*PromptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &PromptWatcher{
		watcher: watcher,
		store:   store,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// loop drains watcher events until Close. Chmod-only events are ignored;
// everything else invalidates the cache. Reload is cheap, so no
// debouncing is applied.
func (w *PromptWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug("prompt file changed (%s), reloading prompts", event.Name)
			w.store.Reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("prompt watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// Close stops watching.
func (w *PromptWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
