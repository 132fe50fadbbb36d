package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay coalesces the burst of filesystem events an editor save
// produces into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the configuration whenever the file changes on disk.
// It watches the containing directory rather than the file itself, so
// atomic save-and-rename writes and recreation after deletion are both
// picked up. Fresh configurations arrive on Configs; load failures arrive
// on Errors and leave the previous configuration in effect.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
	log  *zap.Logger

	configs chan Config
	errs    chan error

	closeCh  chan struct{}
	closedWg sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewWatcher starts watching the config file at path. The containing
// directory must exist; the file itself may not exist yet.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		fsw:     fsw,
		log:     log,
		configs: make(chan Config, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Configs returns the channel freshly loaded configurations arrive on.
func (w *Watcher) Configs() <-chan Config {
	return w.configs
}

// Errors returns the channel reload failures arrive on.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.configs)
	close(w.errs)

	return w.fsw.Close()
}

// processLoop turns filesystem events into debounced reloads.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.concernsConfig(event) {
				continue
			}
			w.log.Debug("config file changed",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()))
			debounce.Reset(debounceDelay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)

		case <-debounce.C:
			w.reload()
		}
	}
}

// concernsConfig reports whether a directory event touches the watched
// file.
func (w *Watcher) concernsConfig(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename) ||
		event.Op.Has(fsnotify.Remove)
}

// reload loads the file and delivers the result.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed", zap.Error(err))
		w.sendError(err)
		return
	}

	w.log.Info("configuration reloaded",
		zap.String("path", w.path),
		zap.String("target_app", cfg.TargetApp))

	select {
	case w.configs <- cfg:
	default:
		// A pending config nobody consumed yet is stale; replace it.
		select {
		case <-w.configs:
		default:
		}
		select {
		case w.configs <- cfg:
		default:
		}
	}
}

// sendError delivers an error, dropping it if nobody is listening.
func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
