package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultQuiet = 100 * time.Millisecond

// Watcher reports prefab files changed on disk. A burst of writes to one
// file becomes a single event once the file has been quiet for a moment.
type Watcher struct {
	fs *fsnotify.Watcher
	// Events carries base file names such as "camera.yaml".
	Events chan string
	Errors chan error

	quiet time.Duration
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(defaultQuiet, dirs...)
}

func newWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fw,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		quiet:  quiet,
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops watching. Events and Errors are closed once the watcher
// goroutine has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	pending := make(map[string]time.Time)
	tick := time.NewTicker(w.quiet / 2)
	defer tick.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !isSpecFile(ev.Name) {
				continue
			}
			pending[filepath.Base(ev.Name)] = time.Now()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case now := <-tick.C:
			for name, at := range pending {
				if now.Sub(at) < w.quiet {
					continue
				}
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.done:
					return
				}
			}
		case <-w.done:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
