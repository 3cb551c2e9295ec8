package settings

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file into store whenever it is written, until ctx ends.
// A reload that fails keeps the previous settings. logger may be nil.
func Watch(ctx context.Context, path string, store *Store, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Editors replace files on save, so the directory is watched instead of the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				s, err := Load(path)
				if err != nil {
					logf(logger, "settings reload failed, keeping previous: %v", err)
					continue
				}
				store.Set(s)
				logf(logger, "settings reloaded from %s (version %d)", target, store.Version())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logf(logger, "settings watcher error: %v", err)
			}
		}
	}()
	return nil
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
