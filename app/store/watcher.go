package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ChangeEvent reports an on-disk write to the store file made outside
// this process. Two consoles over one store race last-write-wins; the
// watcher makes that visible instead of silent.
type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}

// Watcher follows the sqlite store file with fsnotify. It watches the
// containing directory because sqlite replaces files on checkpoint.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan ChangeEvent

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		watcher: fw,
		path:    abs,
		Events:  make(chan ChangeEvent, 16),
		stop:    make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case w.Events <- ChangeEvent{Path: w.path, Timestamp: time.Now()}:
			default:
				// slow consumer, drop
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("store watcher error")
		}
	}
}

func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.stop)
		w.watcher.Close()
		w.wg.Wait()
		close(w.Events)
	})
}
