// Package watch re-runs a callback whenever a file is rewritten.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long events are coalesced before the callback runs.
// Editors typically emit several writes (truncate, write, chmod) per save.
const DefaultSettle = 100 * time.Millisecond

// File calls onChange after every write to (or re-creation of) path, until
// ctx is cancelled. The parent directory is watched so atomic renames by
// editors are observed too. onChange runs on the watcher goroutine; File
// returns nil on cancellation.
func File(ctx context.Context, path string, settle time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch add %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				if pending && !timer.Stop() {
					<-timer.C
				}
				timer.Reset(settle)
				pending = true
			}
		case <-timer.C:
			pending = false
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		case <-ctx.Done():
			return nil
		}
	}
}
