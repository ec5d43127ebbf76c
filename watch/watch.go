package watch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	hocon "github.com/mikai233/gohocon"
	"github.com/mikai233/gohocon/debug"
	"github.com/mikai233/gohocon/ir"
)

// Watcher watches a loaded HOCON document's source directory and
// re-resolves it on every write, create or rename event there; remove
// and chmod events do not trigger a reload.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	opts []hocon.Option

	mu      sync.RWMutex
	current *ir.Node
	started bool

	changes chan *ir.Node
	errors  chan error
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New loads path once and prepares a Watcher for it. Call Start to begin
// watching; the initial load's result is available from Current
// immediately, before Start is ever called.
func New(path string, opts ...hocon.Option) (*Watcher, error) {
	node, err := hocon.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		path:    path,
		opts:    opts,
		current: node,
		changes: make(chan *ir.Node, 1),
		errors:  make(chan error, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Current returns the most recently resolved document.
func (w *Watcher) Current() *ir.Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Changes delivers a new resolved document every time a reload succeeds.
// Delivery is best-effort (capacity 1, latest value wins); callers that
// need every intermediate revision should poll Current from their own
// loop instead.
func (w *Watcher) Changes() <-chan *ir.Node { return w.changes }

// Errors delivers reload failures, e.g. a parse or resolution error
// introduced by an in-progress edit. The watcher keeps running and keeps
// serving the last good document from Current.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Start begins watching in a background goroutine. Calling Start more
// than once is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s event for %s\n", ev.Op, ev.Name)
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			nonBlockingSend(w.errors, err)
		}
	}
}

func (w *Watcher) reload() {
	node, err := hocon.Load(w.path, w.opts...)
	if err != nil {
		nonBlockingSend(w.errors, err)
		return
	}
	w.mu.Lock()
	w.current = node
	w.mu.Unlock()
	nonBlockingSend(w.changes, node)
}

func nonBlockingSend[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Stop stops the watcher and releases its underlying fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
	if started {
		<-w.doneCh
	}
	return w.fsw.Close()
}
