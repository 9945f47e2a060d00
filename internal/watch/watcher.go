// Package watch reports changes to individual files using fsnotify.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temporary file and renaming it over the original
// are still seen.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tabpager/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileModification represents a change to a watched file
type FileModification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors a set of files for changes
type Watcher struct {
	// Absolute paths of the watched files
	files map[string]struct{}

	// Closed by the event goroutine when it exits
	fileModChan chan FileModification
	stopChan    chan struct{}
	doneChan    chan struct{}
	fsWatcher   *fsnotify.Watcher

	// Lock for running state and the file set
	mutex   sync.RWMutex
	running bool
	stopped bool
}

// New creates a new file watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		files:       make(map[string]struct{}),
		fileModChan: make(chan FileModification, 10),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddFile starts watching path. The file does not need to exist yet, but its
// directory does.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.mutex.Lock()
	w.files[abs] = struct{}{}
	w.mutex.Unlock()
	log.LogWithFields(log.F("file", abs)).Debug("Watching file")
	return nil
}

// Files returns the watched paths.
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// FileChannel returns the channel that delivers file modification events
func (w *Watcher) FileChannel() <-chan FileModification {
	return w.fileModChan
}

func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	_, ok := w.files[abs]
	return ok
}

// Start begins delivering events on FileChannel
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	if w.stopped {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.doneChan = make(chan struct{})
	stop, done := w.stopChan, w.doneChan
	w.mutex.Unlock()

	go func() {
		defer close(done)
		defer close(w.fileModChan)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				if !w.watched(event.Name) {
					continue
				}
				mod := FileModification{
					Path:      event.Name,
					Timestamp: time.Now(),
					Op:        event.Op,
				}
				// Send non-blockingly so a slow consumer cannot stall fsnotify
				select {
				case w.fileModChan <- mod:
				default:
					log.LogWithFields(log.F("file", event.Name)).Warn("Event channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and returns once the event goroutine has exited
// and closed FileChannel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		return
	}
	w.running = false
	w.stopped = true
	close(w.stopChan)
	done := w.doneChan
	w.mutex.Unlock()

	<-done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
}
