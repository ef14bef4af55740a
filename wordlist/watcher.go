package wordlist

import (
	"context"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// A Watcher is a word list connected with a file path watcher, that reloads
// the file when it is modified.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher

	μ         sync.Mutex
	list      *List
	hasUpdate bool
}

// NewWatcher creates a watcher that automatically reloads the specified list
// from its original path when that path is modified.
func NewWatcher(list *List, path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, fw: w, list: list}, nil
}

// List returns the current word list. If an update is available, List tries
// to load it, but in case of error it falls back to the existing value, so
// callers always see a valid list.
func (w *Watcher) List() *List {
	w.μ.Lock()
	defer w.μ.Unlock()

	if w.hasUpdate {
		list, err := Open(w.path)
		if err != nil {
			log.Printf("WARNING: Reload wordlist: %v (skipped)", err)
			// N.B. Don't reset the flag; it might just be an incomplete update.
		} else {
			log.Printf("Updated wordlist %q (%d words)", w.path, list.Len())
			w.hasUpdate = false
			w.list = list
		}
	}
	return w.list
}

// Run monitors for changes to the wordlist path in w, and marks the list
// stale when the underlying file is modified. Run should be run in a
// separate goroutine. It exits when the watcher closes, or ctx ends.
func (w *Watcher) Run(ctx context.Context) {
	w.fw.Add(w.path)
	defer w.fw.Close()

	for {
		select {
		case evt, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if evt.Op&fsnotify.Rename != 0 {
				log.Printf("Wordlist %q has moved; stopping the watcher", w.path)
				return
			} else if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Chmod) == 0 {
				continue // not relevant here
			}
			w.μ.Lock()
			w.hasUpdate = true // read by List
			w.μ.Unlock()
		case e, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("WARNING: Error watching %q: %v", w.path, e)
		case <-ctx.Done():
			return
		}
	}
}
