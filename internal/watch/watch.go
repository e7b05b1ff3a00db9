// Package watch re-runs a job whenever a file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay is how long the file must stay quiet before a run.
const DefaultDebounceDelay = 300 * time.Millisecond

// Watcher runs a job after each debounced change of one file.
// Runs never overlap: the job executes on the goroutine calling Run.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher

	debounceDelay time.Duration
	onChange      func(context.Context) error
	onError       func(error)
}

// Option configures the watcher.
type Option func(*Watcher)

// WithDebounceDelay sets the debounce delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounceDelay = d
	}
}

// WithOnError sets the callback for watch and job errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New watches path. The parent directory is watched so that editors
// replacing the file by rename are noticed.
func New(path string, onChange func(context.Context) error, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		path:          abs,
		fsWatcher:     fsWatcher,
		debounceDelay: DefaultDebounceDelay,
		onChange:      onChange,
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()

		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return w, nil
}

// Run handles events until ctx is done and then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounceDelay)
			} else {
				timer.Reset(w.debounceDelay)
			}

			fire = timer.C

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}

			w.report(fmt.Errorf("watching %s: %w", w.path, err))

		case <-fire:
			fire = nil

			if err := w.onChange(ctx); err != nil {
				w.report(err)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
