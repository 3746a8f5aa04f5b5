// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors configuration files for changes and triggers
// reload callbacks when modifications are detected. Parent directories are
// watched rather than the files themselves so that editors which save by
// renaming a temporary file are still noticed.
package watcher

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a stopped watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted or renamed away.
	OpRemove
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher monitors files for changes.
type Watcher struct {
	mu sync.Mutex

	fsw *fsnotify.Watcher

	// Watched files and the directories holding them
	files map[string]bool
	dirs  map[string]bool

	handlers []Handler
	logger   *slog.Logger

	// Debounce settings
	debounce time.Duration
	pending  map[string]Operation
	timer    *time.Timer

	done    chan struct{}
	wg      sync.WaitGroup
	running bool
	closed  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a new file watcher.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		logger:   slog.Default(),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]Operation),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch adds a file to the watch list. The file need not exist yet, but
// its directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	dir := filepath.Dir(absPath)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[absPath] = true
	return nil
}

// WatchedFiles returns the list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins delivering events.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.closed {
		return
	}
	w.running = true

	w.wg.Add(1)
	go w.processLoop()
}

// Stop stops watching and releases the underlying watcher.
// A stopped watcher cannot be restarted.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "err", err)
		}
	}
}

func (w *Watcher) handleFSEvent(ev fsnotify.Event) {
	op, ok := convertOp(ev.Op)
	if !ok {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	watched := w.files[path]
	w.mu.Unlock()
	if !watched {
		return
	}

	event := Event{Path: path, Op: op, Time: time.Now()}
	if w.debounce > 0 {
		w.queueEvent(event)
	} else {
		w.emitEvent(event)
	}
}

// convertOp maps fsnotify operations; chmod is ignored.
func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return OpRemove, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// queueEvent queues an event for debounced delivery, coalescing events
// for the same path:
// - create + write => create
// - remove + create => create (file was replaced)
// - anything + remove => remove
func (w *Watcher) queueEvent(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	existing, exists := w.pending[event.Path]
	switch {
	case !exists:
		w.pending[event.Path] = event.Op
	case event.Op == OpRemove:
		w.pending[event.Path] = OpRemove
	case event.Op == OpCreate:
		w.pending[event.Path] = OpCreate
	case existing == OpRemove:
		// A write after a remove means the file is back.
		w.pending[event.Path] = OpCreate
	}

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	} else {
		w.timer.Reset(w.debounce)
	}
}

// flush emits events that have been stable for the debounce period.
func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	now := time.Now()
	events := make([]Event, 0, len(w.pending))
	for path, op := range w.pending {
		events = append(events, Event{Path: path, Op: op, Time: now})
	}
	w.pending = make(map[string]Operation)
	w.mu.Unlock()

	for _, event := range events {
		w.emitEvent(event)
	}
}

// emitEvent calls all handlers with the event.
func (w *Watcher) emitEvent(event Event) {
	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		w.safeCallHandler(handler, event)
	}
}

// safeCallHandler calls a handler with panic recovery.
func (w *Watcher) safeCallHandler(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("config watch handler panicked", "path", event.Path, "panic", r)
		}
	}()
	handler(event)
}
