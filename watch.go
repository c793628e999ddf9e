package keybind

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts editors produce on save.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a bindings file when it changes on disk. Each reload
// delivers the new binding list (or the load error) to the callback;
// the owner decides what to do with it, typically building a fresh
// Registry, since bindings are immutable once constructed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	fn       func([]Binding, error)

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatchFile watches path and invokes fn with reloaded bindings after
// each change. The callback runs on the watcher's goroutine.
func WatchFile(path string, fn func([]Binding, error)) (*Watcher, error) {
	if fn == nil {
		return nil, errors.New("nil watch callback")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch installed on the file itself.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:  fsw,
		path:     abs,
		debounce: defaultDebounce,
		fn:       fn,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// loop processes fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fn(nil, err)

		case <-timerC:
			bindings, err := LoadFile(w.path)
			w.fn(bindings, err)
		}
	}
}
