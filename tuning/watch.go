package tuning

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/keepsake"
)

// Debounce is how long a tuning file must stay quiet after an edit before it
// is reloaded. Editors often write a file in several steps.
const Debounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes. Successfully parsed
// configurations arrive on Configs; read and parse failures on Errors. Both
// channels are closed by Close.
type Watcher struct {
	Configs chan keepsake.Config
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The containing directory is watched so that
// editors replacing the file through a rename are noticed.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("tuning: watch %s: %w", path, err)
	}
	w := &Watcher{
		Configs: make(chan keepsake.Config, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: fw,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.done)
	}()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				timer.Reset(Debounce)
			}
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&cfg, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, fmt.Errorf("tuning: %w", err))
		case <-w.closeCh:
			return
		}
	}
}

// send delivers a result, giving up if the watcher is closed first.
func (w *Watcher) send(cfg *keepsake.Config, err error) {
	if cfg != nil {
		select {
		case w.Configs <- *cfg:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
