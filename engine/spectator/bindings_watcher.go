package spectator

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// reloadDebounce is how long the file must stay quiet before it is re-read.
const reloadDebounce = 100 * time.Millisecond

// BindingsWatcher re-applies the key_mapping section of a config file to a controller whenever
// the file changes. Bindings are merged through MapKey, so keys removed from the file keep their
// last binding until mapped to NONE. The other settings are fixed at construction and ignored.
type BindingsWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	ctrl    SpectatorController
	logger  *logrus.Logger

	// Reloaded receives the number of bindings applied after each successful reload.
	// Sends are dropped when nobody is listening.
	Reloaded chan int

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchBindings starts watching path and applies its key bindings to ctrl on every change.
// The directory is watched rather than the file so editors that replace the file are handled.
//
// Parameters:
//   - path: the YAML config file
//   - ctrl: the controller to remap
//   - logger: logger for reload messages (nil uses logrus.StandardLogger())
//
// Returns:
//   - *BindingsWatcher: the running watcher
//   - error: error if the watcher cannot be created
func WatchBindings(path string, ctrl SpectatorController, logger *logrus.Logger) (*BindingsWatcher, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create bindings watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	bw := &BindingsWatcher{
		watcher:  w,
		path:     abs,
		ctrl:     ctrl,
		logger:   logger,
		Reloaded: make(chan int, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go bw.run()
	return bw, nil
}

// Close stops the watcher. Safe to call more than once.
//
// Returns:
//   - error: error from closing the underlying fsnotify watcher
func (bw *BindingsWatcher) Close() error {
	var err error
	bw.once.Do(func() {
		close(bw.closeCh)
		err = bw.watcher.Close()
		<-bw.done
	})
	return err
}

func (bw *BindingsWatcher) run() {
	defer close(bw.done)
	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-bw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != bw.path {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(reloadDebounce)
			pending = timer.C
		case <-pending:
			pending = nil
			bw.reload()
		case err, ok := <-bw.watcher.Errors:
			if !ok {
				return
			}
			bw.logger.WithError(err).Warn("bindings watcher error")
		case <-bw.closeCh:
			return
		}
	}
}

// reload applies the file's bindings. On failure the current bindings stay in place.
func (bw *BindingsWatcher) reload() {
	cfg, err := LoadConfigFile(bw.path)
	if err != nil {
		bw.logger.WithError(err).Warn("keeping previous key bindings")
		return
	}
	for code, action := range cfg.KeyMapping {
		bw.ctrl.MapKey(code, action)
	}
	bw.logger.WithFields(logrus.Fields{"path": bw.path, "bindings": len(cfg.KeyMapping)}).Info("key bindings reloaded")

	select {
	case bw.Reloaded <- len(cfg.KeyMapping):
	default:
	}
}
