// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk,
//              using fsnotify on the parent directory so editors that
//              replace the file by rename are picked up.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

// reloadDebounce collapses the burst of events a single save produces
const reloadDebounce = 100 * time.Millisecond

// Watch blocks until ctx is cancelled, reloading the configuration whenever
// its file is written or recreated. onChange runs after every successful
// reload; onError (may be nil) receives reload and watcher failures, which
// never stop the watch.
func (c *Config) Watch(ctx context.Context, onChange ChangeHandler, onError func(error)) error {
	path := c.FilePath()
	if path == "" {
		return liberr.New("file path required for watching").
			WithCode(liberr.CodeValidationFailed).
			WithOperation("config.Watch")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return liberr.Wrap(err, "failed to create file watcher").
			WithCode(liberr.CodeConfigError).
			WithOperation("config.Watch")
	}
	defer w.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return liberr.Wrap(err, "failed to watch config directory").
			WithCode(liberr.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", path)
	}

	report := func(err error) {
		if onError != nil && err != nil {
			onError(err)
		}
	}

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case <-debounceCh:
			debounceCh = nil
			old := c.snapshot()
			if err := c.reload(); err != nil {
				report(err)
				continue
			}
			if onChange != nil {
				onChange(old, c.snapshot())
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absPath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(reloadDebounce)
			} else {
				debounce.Reset(reloadDebounce)
			}
			debounceCh = debounce.C

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			report(liberr.Wrap(watchErr, "config watcher error").
				WithCode(liberr.CodeConfigError).
				WithOperation("config.Watch"))
		}
	}
}

// reload re-reads the file. The current data is kept when parsing fails.
func (c *Config) reload() error {
	c.mu.RLock()
	path, format := c.filePath, c.format
	c.mu.RUnlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return liberr.Wrap(err, "failed to read config file during reload").
			WithCode(liberr.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", path)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return liberr.Wrap(err, "failed to parse config file during reload").
			WithCode(liberr.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
	}

	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
	return nil
}
