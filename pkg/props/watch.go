package props

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event describes a change to a watched store file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher reports changes to a single file. It watches the parent directory,
// so that editors (and [File.Save]) that replace the file by renaming are
// still observed.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan Event
	errs    chan error
	done    chan struct{}
	path    string
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(absPath))
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("add path to watcher: %w", err)
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(absPath),
		events:  make(chan Event),
		errs:    make(chan error),
		done:    make(chan struct{}),
	}

	go w.run()

	return w, nil
}

// Events returns the channel of changes to the watched file.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes its channels. Pending events are dropped.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}

	close(w.done)

	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}

func (w *Watcher) run() {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

	defer close(w.errs)
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != w.path || !evt.Has(relevant) {
				continue
			}

			slog.Debug("store file changed",
				slog.String("path", evt.Name),
				slog.String("op", evt.Op.String()),
			)

			select {
			case w.events <- Event{Path: w.path, Op: evt.Op}:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			select {
			case w.errs <- err:
			case <-w.done:
				return
			}
		}
	}
}
