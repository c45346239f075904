package lexicon

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is the outcome of re-loading a watched lexicon file.
type Reload struct {
	Lexicon *Lexicon
	Err     error
}

// Watcher re-loads a lexicon file whenever it changes on disk. The parent
// directory is watched so editors that replace the file by rename are seen.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads chan Reload
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
	started bool
}

// debounce collapses bursts of write events from a single save.
const debounce = 100 * time.Millisecond

// NewWatcher creates a watcher for the lexicon at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan Reload, 4)
	return &Watcher{
		Path:    abs,
		Reloads: ch,
		reloads: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel. It is safe to call when
// Start was never called or failed.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	if w.started {
		<-w.done
	}
	close(w.reloads)
}

// Watch re-loads the lexicon at path on every change and passes each result
// to onReload. It blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload func(*Lexicon, error)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-w.Reloads:
			if !ok {
				return nil
			}
			onReload(r.Lexicon, r.Err)
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				lex, err := Load(w.Path)
				select {
				case w.reloads <- Reload{Lexicon: lex, Err: err}:
				case <-w.stop:
					return
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event retries.
		}
	}
}
