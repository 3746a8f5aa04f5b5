// Package dispatcher turns key events into engine commands.
//
// A key event is looked up in the keymap registry; each binding it matches
// names an action such as "block.enter". The action is offered to the
// handlers registered for it, highest priority first. The first handler
// that reports StatusOK wins. A handler that declines (StatusNoOp) passes
// the action on, so a host can register fallbacks below the built-in
// handlers. If every binding for the key is declined, the host sees a
// declined result and may apply its own default behavior.
//
// # Handlers
//
// Handlers implement handler.Handler:
//
//	type Handler interface {
//	    Handle(action handler.Action, eng *engine.Engine) handler.Result
//	    CanHandle(actionName string) bool
//	    Priority() int
//	}
//
// Handlers may be registered for an exact action name or for a whole
// namespace with a "ns.*" pattern. The built-in BlockHandler is registered
// for "block.*" at keymap.PriorityHigh and runs the engine's block commands
// subject to the editor flags in config.Flags.
//
// # Configuration
//
// Config carries the editor flags and key binding overrides. Reconfigure
// applies settings reloaded at runtime; flags are read on every action.
//
// # Thread Safety
//
// The dispatcher is safe for concurrent use. Commands are serialized by
// the engine.
package dispatcher
