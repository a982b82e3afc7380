// Package watcher observes the skill input path and emits debounced
// change events so the dashboard can re-run analysis.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/skillscope/skillscope/pkg/logging"
)

// ChangeEvent represents a batch of file system changes under the input
// path
type ChangeEvent struct {
	Paths     []string
	Timestamp time.Time
}

// InputWatcher watches a skills file or directory for changes
type InputWatcher struct {
	watcher *fsnotify.Watcher
	input   string
	events  chan ChangeEvent
	done    chan struct{}
}

// NewInputWatcher creates a watcher for the given skills file or
// directory
func NewInputWatcher(input string) (*InputWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &InputWatcher{
		watcher: fsw,
		input:   input,
		events:  make(chan ChangeEvent, 100),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching for changes
func (iw *InputWatcher) Start(ctx context.Context) error {
	info, err := os.Stat(iw.input)
	if err != nil {
		return fmt.Errorf("stat input %s: %w", iw.input, err)
	}

	// Watching the parent directory catches editors that replace the
	// file instead of writing in place
	target := iw.input
	if !info.IsDir() {
		target = filepath.Dir(iw.input)
	}
	if err := iw.watcher.Add(target); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	logging.Info("watching skill input", "path", iw.input)

	go iw.processEvents(ctx)
	return nil
}

// Events returns the raw change event channel
func (iw *InputWatcher) Events() <-chan ChangeEvent {
	return iw.events
}

// Close stops watching
func (iw *InputWatcher) Close() error {
	close(iw.done)
	return iw.watcher.Close()
}

func (iw *InputWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-iw.done:
			return
		case event, ok := <-iw.watcher.Events:
			if !ok {
				return
			}
			if !iw.relevant(event) {
				continue
			}
			logging.Debug("input change detected", "path", event.Name, "op", event.Op.String())
			select {
			case iw.events <- ChangeEvent{Paths: []string{event.Name}, Timestamp: time.Now()}:
			default:
				// Drop when the consumer is behind; the debouncer
				// coalesces anyway
			}
		case err, ok := <-iw.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("watcher error", "error", err)
		}
	}
}

// relevant filters noise: hidden files and events outside the watched
// input
func (iw *InputWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}

	info, err := os.Stat(iw.input)
	if err == nil && !info.IsDir() {
		// File mode: only the input file itself matters
		abs, _ := filepath.Abs(iw.input)
		evAbs, _ := filepath.Abs(event.Name)
		return abs == evAbs
	}
	return true
}
