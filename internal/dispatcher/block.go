package dispatcher

import (
	"github.com/dshills/blockstorm/internal/config"
	"github.com/dshills/blockstorm/internal/dispatcher/handler"
	"github.com/dshills/blockstorm/internal/engine"
	"github.com/dshills/blockstorm/internal/input/keymap"
)

// BlockNamespace is the action namespace of the block editing commands.
const BlockNamespace = "block"

// BlockHandlerName identifies results produced by the block handler.
const BlockHandlerName = "block"

type blockCommand struct {
	run     func(*engine.Engine) bool
	enabled func(config.Flags) bool
}

func arrowsEnabled(f config.Flags) bool    { return f.EnableArrowNavigation }
func enterEnabled(f config.Flags) bool     { return f.EnableEnterHandling }
func escapeEnabled(f config.Flags) bool    { return f.EnableEscapeHandling }
func shortcutsEnabled(f config.Flags) bool { return f.EnableBlockShortcuts }

var blockCommands = map[string]blockCommand{
	keymap.ActionArrowUp:    {(*engine.Engine).ArrowUp, arrowsEnabled},
	keymap.ActionArrowDown:  {(*engine.Engine).ArrowDown, arrowsEnabled},
	keymap.ActionEnter:      {(*engine.Engine).Enter, enterEnabled},
	keymap.ActionEscape:     {(*engine.Engine).Escape, escapeEnabled},
	keymap.ActionSplitBlock: {(*engine.Engine).SplitBlock, shortcutsEnabled},
	keymap.ActionBackspace:  {(*engine.Engine).Backspace, shortcutsEnabled},
	keymap.ActionDelete:     {(*engine.Engine).Delete, shortcutsEnabled},
}

// BlockHandler runs the block editing commands. A command whose flag is
// off declines without touching the engine, leaving the key to
// lower-priority handlers.
type BlockHandler struct {
	flags func() config.Flags
}

// NewBlockHandler creates a block handler reading its flags from flags on
// every action. A nil flags func means all commands are enabled.
func NewBlockHandler(flags func() config.Flags) *BlockHandler {
	if flags == nil {
		flags = config.DefaultFlags
	}
	return &BlockHandler{flags: flags}
}

// Handle implements handler.Handler.
func (h *BlockHandler) Handle(action handler.Action, eng *engine.Engine) handler.Result {
	cmd, ok := blockCommands[action.Name]
	if !ok {
		return handler.Errorf("unknown block action: %s", action.Name)
	}
	if !cmd.enabled(h.flags()) {
		return handler.NoOpWithMessage(action.Name + " disabled").WithHandler(BlockHandlerName)
	}
	return handler.FromBool(cmd.run(eng)).WithHandler(BlockHandlerName)
}

// CanHandle implements handler.Handler.
func (h *BlockHandler) CanHandle(actionName string) bool {
	_, ok := blockCommands[actionName]
	return ok
}

// Priority implements handler.Handler.
func (h *BlockHandler) Priority() int {
	return keymap.PriorityHigh
}
