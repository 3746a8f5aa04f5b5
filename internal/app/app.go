// Package app is a terminal host for the block engine. It renders the
// document one block per line, translates terminal keys into key events
// for the dispatcher, and applies configuration reloads between key
// events.
package app

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blockstorm/internal/config"
	"github.com/dshills/blockstorm/internal/config/watcher"
	"github.com/dshills/blockstorm/internal/convert"
	"github.com/dshills/blockstorm/internal/dispatcher"
	"github.com/dshills/blockstorm/internal/engine"
	"github.com/dshills/blockstorm/internal/engine/model"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. It is watched for changes.
	ConfigPath string

	// File is the document to open and save.
	File string

	// ReadOnly opens the document read-only.
	ReadOnly bool

	// Screen overrides the terminal, e.g. with a simulation screen.
	Screen tcell.Screen

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Level, if set, follows the configured log level.
	Level *slog.LevelVar

	// LevelOverride pins the log level regardless of configuration.
	LevelOverride string
}

// Application wires the engine, dispatcher and configuration to a screen.
type Application struct {
	mu sync.Mutex

	opts     Options
	logger   *slog.Logger
	settings config.Config

	engine     *engine.Engine
	dispatcher *dispatcher.Dispatcher
	watcher    *watcher.Watcher
	screen     tcell.Screen

	format  convert.Format
	saved   *model.Node
	message string
	top     int

	reloads  chan config.Config
	running  atomic.Bool
	done     chan struct{}
	shutdown sync.Once
}

// New loads configuration and the document and builds the components.
// The screen is not touched until Run.
func New(opts Options) (*Application, error) {
	a := &Application{
		opts:    opts,
		logger:  opts.Logger,
		reloads: make(chan config.Config, 1),
		done:    make(chan struct{}),
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	a.settings = settings
	a.applyLevel(settings)

	doc := model.EmptyDoc()
	a.format = convert.FormatLegacyHTML
	if opts.File != "" {
		if doc, a.format, err = OpenDocument(opts.File); err != nil {
			return nil, &InitError{Component: "document", Err: err}
		}
	}
	a.saved = doc

	engOpts := []engine.Option{engine.WithDocument(doc), engine.WithLogger(a.logger)}
	if opts.ReadOnly {
		engOpts = append(engOpts, engine.WithReadOnly())
	}
	a.engine = engine.New(engOpts...)

	a.dispatcher, err = dispatcher.New(a.engine, dispatcher.FromSettings(settings),
		dispatcher.WithLogger(a.logger))
	if err != nil {
		return nil, &InitError{Component: "dispatcher", Err: err}
	}

	if opts.ConfigPath != "" {
		if err := a.watchConfig(opts.ConfigPath); err != nil {
			return nil, &InitError{Component: "config watcher", Err: err}
		}
	}

	a.logger.Info("Application initialized",
		"session", a.engine.SessionID(),
		"file", opts.File,
		"format", a.format.String(),
		"blocks", a.engine.BlockCount(),
	)
	return a, nil
}

// Run initializes the screen and processes events until quit or
// Shutdown. A quit key returns ErrQuit.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.initScreen(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer a.screen.Fini()
	if a.watcher != nil {
		a.watcher.Start()
	}

	events := make(chan tcell.Event, 16)
	go a.pollEvents(events)

	a.draw()
	for {
		select {
		case <-a.done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.HandleEvent(ev); err != nil {
				return err
			}
		case cfg := <-a.reloads:
			a.ApplySettings(cfg)
		}
		a.draw()
	}
}

func (a *Application) initScreen() error {
	scr := a.opts.Screen
	if scr == nil {
		var err error
		if scr, err = tcell.NewScreen(); err != nil {
			return err
		}
	}
	if err := scr.Init(); err != nil {
		return err
	}
	a.screen = scr
	return nil
}

func (a *Application) pollEvents(out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-a.done:
			return
		}
	}
}

// HandleEvent processes one terminal event. Ctrl-Q returns ErrQuit and
// Ctrl-S saves; every other key goes to the dispatcher.
func (a *Application) HandleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventResize:
		if a.screen != nil {
			a.screen.Sync()
		}
	case *tcell.EventKey:
		kev, ok := KeyEvent(e)
		if !ok {
			return nil
		}
		switch {
		case kev.Matches("Ctrl-q"):
			return ErrQuit
		case kev.Matches("Ctrl-s"):
			if err := a.Save(); err != nil {
				a.logger.Error("Save failed", "err", err)
				a.setMessage(err.Error())
			} else {
				a.setMessage("saved")
			}
			return nil
		}

		r := a.dispatcher.HandleKey(kev)
		switch {
		case r.IsError():
			a.logger.Warn("Key failed", "key", kev.String(), "err", r.Error)
			a.setMessage(r.Error.Error())
		case r.IsNoOp():
			a.setMessage(r.Message)
		default:
			a.setMessage("")
		}
	}
	return nil
}

// Save writes the document to its file.
func (a *Application) Save() error {
	if a.opts.ReadOnly {
		return ErrReadOnly
	}
	if a.opts.File == "" {
		return ErrNoFile
	}
	doc := a.engine.Doc()
	if err := SaveDocument(a.opts.File, doc, a.format); err != nil {
		return err
	}
	a.mu.Lock()
	a.saved = doc
	a.mu.Unlock()
	a.logger.Info("Document saved", "file", a.opts.File, "blocks", doc.BlockCount())
	return nil
}

// Modified reports whether the document changed since it was opened or
// last saved.
func (a *Application) Modified() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Doc() != a.saved
}

// Message returns the last status message.
func (a *Application) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

func (a *Application) setMessage(msg string) {
	a.mu.Lock()
	a.message = msg
	a.mu.Unlock()
}

// Engine returns the engine.
func (a *Application) Engine() *engine.Engine { return a.engine }

// Dispatcher returns the dispatcher.
func (a *Application) Dispatcher() *dispatcher.Dispatcher { return a.dispatcher }

// Settings returns the active configuration.
func (a *Application) Settings() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// Shutdown stops the watcher and ends Run, which restores the terminal.
// It is safe to call more than once and from any goroutine.
func (a *Application) Shutdown() {
	a.shutdown.Do(func() {
		close(a.done)
		if a.watcher != nil {
			if err := a.watcher.Stop(); err != nil {
				a.logger.Warn("Stopping config watcher", "err", err)
			}
		}
	})
}
