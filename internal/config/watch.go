package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/logger"
	"github.com/Faultbox/tideline/internal/ocean"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watcher re-reads a config file when it changes and publishes its ocean
// section. Only the latest unread update is kept.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan ocean.Params
	done    chan struct{}
	wg      sync.WaitGroup
	log     *zap.Logger
}

// Watch starts watching path. The parent directory is watched so files
// replaced by rename are still picked up.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		updates: make(chan ocean.Params, 1),
		done:    make(chan struct{}),
		log:     logger.Named("config"),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates delivers freshly parsed ocean parameters.
func (w *Watcher) Updates() <-chan ocean.Params {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		// Keep the current values; the next save will retry.
		w.log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("config reloaded", zap.String("path", w.path))

	// Replace any update the frame loop has not read yet.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg.Ocean
}
