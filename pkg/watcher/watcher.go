// Package watcher turns bursts of file change events into single reloads.
package watcher

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mudler/xlog"
)

// Batcher watches a directory and invokes reload after a quiet period
// follows a matching change. Every new event cancels and reschedules the
// timer, so a burst of writes produces exactly one reload.
type Batcher struct {
	watcher *fsnotify.Watcher
	ext     string
	delay   time.Duration
	reload  func()

	mu    sync.Mutex
	timer *time.Timer

	closeOnce sync.Once
	done      chan struct{}
}

// New creates a Batcher over dir for files with the given extension.
func New(dir, ext string, delay time.Duration, reload func()) (*Batcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	b := &Batcher{
		watcher: fw,
		ext:     ext,
		delay:   delay,
		reload:  reload,
		done:    make(chan struct{}),
	}
	go b.run()
	return b, nil
}

func (b *Batcher) run() {
	for {
		select {
		case event, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, b.ext) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			b.schedule()
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			xlog.Error("Watcher error", "error", err)
		case <-b.done:
			return
		}
	}
}

func (b *Batcher) schedule() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, b.reload)
}

// Close stops watching and cancels any pending reload. Closing more than
// once is safe.
func (b *Batcher) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.done)

		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
			b.timer = nil
		}
		b.mu.Unlock()

		err = b.watcher.Close()
	})
	return err
}
