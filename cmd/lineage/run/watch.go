package runcmder

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// watchTargets calls trigger after the targets file at path settles following
// a change, and every interval when interval is positive. The parent
// directory is watched so editors that replace the file are still seen.
// It returns when ctx is done.
func watchTargets(ctx context.Context, path string, interval, debounce time.Duration, trigger func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if path != "" {
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
		}
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	// settle fires once the file has been quiet for debounce.
	settle := time.NewTimer(debounce)
	if !settle.Stop() {
		<-settle.C
	}

	name := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			settle.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching targets: %w", err)

		case <-settle.C:
			trigger()

		case <-tick:
			trigger()
		}
	}
}
