package dispatcher

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/blockstorm/internal/config"
	"github.com/dshills/blockstorm/internal/dispatcher/handler"
	"github.com/dshills/blockstorm/internal/engine"
	"github.com/dshills/blockstorm/internal/input/key"
	"github.com/dshills/blockstorm/internal/input/keymap"
)

// Dispatcher resolves key events to actions and routes actions to handlers.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	keymaps  *keymap.Registry
	engine   *engine.Engine

	config  Config
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithKeymaps supplies a prepared keymap registry. The default keymap is
// not loaded into it.
func WithKeymaps(r *keymap.Registry) Option {
	return func(d *Dispatcher) {
		d.keymaps = r
	}
}

// New creates a dispatcher for eng. Unless WithKeymaps is given, the block
// keymap is loaded with the overrides from cfg. The block handler is always
// registered.
func New(eng *engine.Engine, cfg Config, opts ...Option) (*Dispatcher, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	d := &Dispatcher{
		registry: NewRegistry(),
		engine:   eng,
		config:   cfg,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.keymaps == nil {
		d.keymaps = keymap.NewRegistry()
		if err := keymap.LoadDefaults(d.keymaps, cfg.Keymap); err != nil {
			return nil, fmt.Errorf("load keymap: %w", err)
		}
	}
	if cfg.EnableMetrics {
		d.metrics = NewMetrics()
	}

	d.registry.Register(BlockNamespace+wildcard, NewBlockHandler(d.Flags))
	return d, nil
}

// HandleKey dispatches the actions bound to ev, winning binding first, and
// returns the first handled result. An unbound key is declined.
func (d *Dispatcher) HandleKey(ev key.Event) handler.Result {
	matches := d.keymaps.LookupAll(ev)
	if len(matches) == 0 {
		return handler.NoOpWithMessage("unbound key " + ev.String())
	}

	var result handler.Result
	for _, m := range matches {
		result = d.Dispatch(handler.Action{Name: m.Action, Event: ev})
		if result.IsOK() {
			break
		}
	}
	return result
}

// Dispatch runs an action through its handlers in priority order. The first
// handler that reports StatusOK wins; a declining handler passes the action
// on. If no handler takes it, the first error is returned, otherwise the
// last decline.
func (d *Dispatcher) Dispatch(action handler.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}
	start := time.Now()

	var result handler.Result
	handlers := d.registry.GetAll(action.Name)
	if len(handlers) == 0 {
		result = handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	} else {
		result = d.arbitrate(handlers, action)
	}

	d.logger.Debug("Dispatched action",
		"action", action.Name,
		"key", action.Event.String(),
		"status", result.Status.String(),
		"handler", result.Handler,
	)
	if m := d.Metrics(); m != nil {
		m.RecordDispatch(action.Name, time.Since(start), result.Status)
	}
	return result
}

func (d *Dispatcher) arbitrate(handlers []handler.Handler, action handler.Action) handler.Result {
	result := handler.NoOp()
	var failed *handler.Result
	for _, h := range handlers {
		r := d.execute(h, action)
		switch r.Status {
		case handler.StatusOK:
			return r
		case handler.StatusError:
			d.logger.Warn("Handler failed", "action", action.Name, "err", r.Error)
			if failed == nil {
				failed = &r
			}
		default:
			result = r
		}
	}
	if failed != nil {
		return *failed
	}
	return result
}

func (d *Dispatcher) execute(h handler.Handler, action handler.Action) handler.Result {
	if !d.Config().RecoverFromPanic {
		return h.Handle(action, d.engine)
	}
	return d.executeWithRecovery(h, action)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action handler.Action) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.logger.Error("Handler panic", "action", action.Name, "panic", r, "stack", string(stack[:n]))

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
			if m := d.Metrics(); m != nil {
				m.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action, d.engine)
}

// Reconfigure applies new settings: flags take effect on the next action
// and the block keymap is rebuilt with the new overrides. On error the
// previous configuration stays in place.
func (d *Dispatcher) Reconfigure(cfg Config) error {
	fresh := keymap.NewRegistry()
	if err := keymap.LoadDefaults(fresh, cfg.Keymap); err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}
	km, _ := fresh.Get(keymap.BlockKeymapName)
	if err := d.keymaps.Register(km); err != nil {
		return fmt.Errorf("register keymap: %w", err)
	}

	d.mu.Lock()
	d.config = cfg
	if cfg.EnableMetrics && d.metrics == nil {
		d.metrics = NewMetrics()
	}
	d.mu.Unlock()

	d.logger.Info("Dispatcher reconfigured", "flags", fmt.Sprintf("%+v", cfg.Flags), "overrides", len(cfg.Keymap))
	return nil
}

// SetFlags replaces the editor flags.
func (d *Dispatcher) SetFlags(flags config.Flags) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config.Flags = flags
}

// Flags returns the current editor flags.
func (d *Dispatcher) Flags() config.Flags {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.config.Flags
}

// RegisterHandler registers a handler for an action name or "ns.*" pattern.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(handler.Action, *engine.Engine) handler.Result) {
	d.registry.Register(actionName, handler.NewHandlerFunc(fn))
}

// UnregisterHandler removes the handlers for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// Engine returns the engine actions run against.
func (d *Dispatcher) Engine() *engine.Engine {
	return d.engine
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Keymaps returns the keymap registry.
func (d *Dispatcher) Keymaps() *keymap.Registry {
	return d.keymaps
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.config
}
