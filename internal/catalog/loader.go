// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-resty/resty/v2"
)

// reloadDebounce coalesces the burst of filesystem events most
// editors emit per save into a single reload.
const reloadDebounce = 500 * time.Millisecond

// Loader fetches the catalog from an HTTP(S) URL or a local file,
// parses it, and swaps the result in atomically. A file source can
// additionally be watched for changes.
//
// A failed load leaves the previous catalog (possibly empty) in place
// and marks the loader degraded; callers proceed with whatever
// products survived rather than treating it as fatal.
type Loader struct {
	source string
	client *resty.Client

	mu       sync.RWMutex
	catalog  *Catalog
	degraded bool

	watcher  *fsnotify.Watcher
	onReload func(*Catalog)
	done     chan struct{}
}

// NewLoader creates a loader for the given source. The source is an
// HTTP(S) URL or a local file path; nothing is fetched until Load.
func NewLoader(source string) *Loader {
	return &Loader{
		source:   source,
		catalog:  &Catalog{},
		degraded: true,
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(500 * time.Millisecond),
		done: make(chan struct{}),
	}
}

// Load fetches and parses the source, replacing the current catalog
// on success. On failure the previous catalog stays in place and the
// loader reports degraded mode.
func (l *Loader) Load(ctx context.Context) error {
	text, err := l.read(ctx)
	if err != nil {
		l.mu.Lock()
		l.degraded = true
		l.mu.Unlock()
		return fmt.Errorf("catalog load: %w", err)
	}

	cat := Parse(text)
	l.mu.Lock()
	l.catalog = cat
	l.degraded = false
	l.mu.Unlock()
	return nil
}

func (l *Loader) read(ctx context.Context) (string, error) {
	if isURL(l.source) {
		resp, err := l.client.R().SetContext(ctx).Get(l.source)
		if err != nil {
			return "", err
		}
		if resp.IsError() {
			return "", fmt.Errorf("fetch %s: status %d", l.source, resp.StatusCode())
		}
		return resp.String(), nil
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Catalog returns the current catalog. Never nil.
func (l *Loader) Catalog() *Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.catalog
}

// Degraded reports whether the last load attempt failed.
func (l *Loader) Degraded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.degraded
}

// Watch reloads the catalog whenever the backing file changes,
// invoking onReload with the fresh catalog after each successful
// reload. No-op for URL sources. The parent directory is watched
// rather than the file itself so atomic-rename saves are seen.
func (l *Loader) Watch(onReload func(*Catalog)) error {
	if isURL(l.source) {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(l.source)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", l.source, err)
	}

	l.watcher = w
	l.onReload = onReload
	go l.watchLoop()
	return nil
}

func (l *Loader) watchLoop() {
	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	target := filepath.Clean(l.source)

	for {
		select {
		case <-l.done:
			return

		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(reloadDebounce)

		case _, ok := <-l.watcher.Errors:
			if !ok {
				return
			}

		case <-debounce.C:
			if err := l.Load(context.Background()); err == nil && l.onReload != nil {
				l.onReload(l.Catalog())
			}
		}
	}
}

// Close stops the watcher if one is running.
func (l *Loader) Close() error {
	close(l.done)
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}
