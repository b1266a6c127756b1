package prefabs

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a spec file must stay quiet before a change is
// reported. Editors often save with several writes or a rename.
const settleDelay = 100 * time.Millisecond

// SpecWatcher reports when one scene spec file changes on disk. The parent
// directory is watched so atomic rename saves are still seen.
type SpecWatcher struct {
	// Changes receives the spec path once per settled burst of edits.
	Changes chan string
	// Errors carries watcher failures. Extra errors are dropped while one is
	// still unread.
	Errors chan error

	path    string
	fs      *fsnotify.Watcher
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// WatchSpec starts watching the spec file at path.
func WatchSpec(path string) (*SpecWatcher, error) {
	path = filepath.Clean(path)
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch %s: %w", path, err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("prefabs: watch %s: %w", path, err)
	}

	sw := &SpecWatcher{
		Changes: make(chan string, 1),
		Errors:  make(chan error, 1),
		path:    path,
		fs:      fs,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go sw.loop()
	return sw, nil
}

// Path is the watched spec file.
func (sw *SpecWatcher) Path() string { return sw.path }

// Close stops the watcher and closes both channels. It is safe to call more
// than once.
func (sw *SpecWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.stop)
		err = sw.fs.Close()
		<-sw.stopped
		close(sw.Changes)
		close(sw.Errors)
	})
	return err
}

func (sw *SpecWatcher) loop() {
	defer close(sw.stopped)

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()
	dirty := false

	for {
		select {
		case <-sw.stop:
			return
		case ev, ok := <-sw.fs.Events:
			if !ok {
				return
			}
			if sw.touchesSpec(ev) {
				dirty = true
				settle.Reset(settleDelay)
			}
		case <-settle.C:
			if !dirty {
				continue
			}
			dirty = false
			select {
			case sw.Changes <- sw.path:
			case <-sw.stop:
				return
			}
		case err, ok := <-sw.fs.Errors:
			if !ok {
				return
			}
			select {
			case sw.Errors <- err:
			default:
			}
		}
	}
}

func (sw *SpecWatcher) touchesSpec(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Clean(ev.Name) == sw.path
}
