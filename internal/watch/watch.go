// Package watch reports changes to a single file on disk. The host polls it
// once per frame, so nothing here calls back into the render thread.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches the parent directory of one file, so replace-by-rename
// saves are seen as well as in-place writes.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changed  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	ignored fileStamp
}

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

// New starts watching path. The directory must exist; the file need not.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fw,
		changed:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	logger.Debug("watching file", zap.String("path", abs), zap.Duration("debounce", debounce))
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Poll reports, without blocking, whether the file changed since the last call.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Ignore marks the file's current state as already known, so the events
// caused by our own save are not reported back.
func (w *Watcher) Ignore() {
	w.mu.Lock()
	w.ignored = stat(w.path)
	w.mu.Unlock()
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", zap.String("path", w.path), zap.Error(err))

		case <-timer.C:
			w.fire()
		}
	}
}

func (w *Watcher) fire() {
	now := stat(w.path)
	if !now.exists {
		return
	}

	w.mu.Lock()
	skip := w.ignored.exists && now == w.ignored
	w.mu.Unlock()
	if skip {
		logger.Debug("ignoring own write", zap.String("path", w.path))
		return
	}

	select {
	case w.changed <- struct{}{}:
		logger.Debug("file changed", zap.String("path", w.path))
	default:
	}
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}
