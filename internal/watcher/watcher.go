// Package watcher provides debounced file watching using fsnotify. The
// editor watches the media file backing the open clip and reloads its
// waveform and thumbnail strip when the file is rewritten.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces rapid write bursts into one notification.
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher emits a signal when a watched file is written or replaced.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	Events chan struct{}
	done   chan struct{}
}

// Watch starts watching path. The parent directory is watched rather than
// the file itself so editors that replace-on-save are still observed.
func Watch(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &FileWatcher{
		watcher:  fsw,
		path:     abs,
		debounce: debounce,
		Events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *FileWatcher) loop() {
	var timer *time.Timer
	fire := func() {
		select {
		case w.Events <- struct{}{}:
		default:
		}
	}
	for {
		select {
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
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)
		case <-w.watcher.Errors:
			// Watch errors are non-fatal; the editor just stops seeing
			// external changes.
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *FileWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
