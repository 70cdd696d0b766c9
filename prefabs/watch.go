package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports prefab files whose content actually changed. Editors often
// write a file several times per save, so a file is reported once it has been
// quiet for the debounce window, and writes that leave the bytes unchanged
// are dropped.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	// due holds, per file, when its quiet period ends. Every new event for a
	// file pushes its deadline back, so only the last write of a burst is
	// read.
	due := make(map[string]time.Time)
	hashes := make(map[string]uint64)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			due[event.Name] = time.Now().Add(watchDebounce)
			resetTimer(timer, due)
		case <-timer.C:
			now := time.Now()
			for name, at := range due {
				if at.After(now) {
					continue
				}
				delete(due, name)
				if !w.changed(name, hashes) {
					continue
				}
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			resetTimer(timer, due)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// changed reports whether name differs from the last content seen. Files that
// can no longer be read always count as changed.
func (w *Watcher) changed(name string, hashes map[string]uint64) bool {
	data, err := os.ReadFile(name)
	if err != nil {
		delete(hashes, name)
		return true
	}
	sum := xxhash.Sum64(data)
	if prev, ok := hashes[name]; ok && prev == sum {
		return false
	}
	hashes[name] = sum
	return true
}

// resetTimer arms t for the earliest deadline in due.
func resetTimer(t *time.Timer, due map[string]time.Time) {
	t.Stop()
	var next time.Time
	for _, at := range due {
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	if next.IsZero() {
		return
	}
	t.Reset(time.Until(next))
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
