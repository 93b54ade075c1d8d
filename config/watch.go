package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/melowave/logger"
)

// ReloadDelay coalesces editor save bursts into one reload.
const ReloadDelay = 250 * time.Millisecond

// Watch reloads the catalogue whenever the file at path changes and hands
// successfully parsed configs to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, path string, log *logger.Logger, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %v: %w", path, err)
	}

	debounced := debounce.New(ReloadDelay)
	target := filepath.Clean(path)
	reload := func() {
		c, err := Load(path)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		log.Info("config reloaded", "path", path, "songs", len(c.Songs))
		onChange(c)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debounced(reload)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", "error", err)
		}
	}
}
