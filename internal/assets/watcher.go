// internal/assets/watcher.go
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/logging"
)

const debounce = 150 * time.Millisecond

// DefsWatcher перечитывает файл определений стадий при его изменении.
// Следит за каталогом, а не за файлом: редакторы часто сохраняют через
// переименование.
type DefsWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher

	reloaded chan *defs.Library
	done     chan struct{}
	wg       sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
}

func NewDefsWatcher(path string) (*DefsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve defs path: %w", err)
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &DefsWatcher{
		path:     abs,
		fsnotify: fsWatch,
		reloaded: make(chan *defs.Library, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

// Reloaded отдаёт свежую библиотеку после каждого успешного перечитывания.
// Если игра не успела забрать прошлую, остаётся только последняя.
func (w *DefsWatcher) Reloaded() <-chan *defs.Library {
	return w.reloaded
}

func (w *DefsWatcher) start() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			logging.Errorf("Defs watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *DefsWatcher) reload() {
	lib, err := defs.Load(w.path)
	if err != nil {
		logging.Warnf("Definitions not reloaded: %v", err)
		return
	}
	logging.Infof("Definitions reloaded: %d targets, %d bosses", len(lib.Targets), len(lib.Bosses))

	select {
	case <-w.reloaded:
	default:
	}
	w.reloaded <- lib
}

func (w *DefsWatcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("defs watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}
