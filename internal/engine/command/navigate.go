package command

import (
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/navigation"
	"github.com/dshills/blockstorm/internal/engine/position"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

type navigateFunc func(*model.Node, selection.Selection, position.Direction) (selection.Selection, bool)

// ArrowUp moves into the previous block when the cursor is at the start of
// its block or an atomic block is selected.
func ArrowUp(s State) (State, bool) {
	return move(s, position.Backward, navigation.Arrow)
}

// ArrowDown moves into the next block when the cursor is at the end of its
// block or an atomic block is selected.
func ArrowDown(s State) (State, bool) {
	return move(s, position.Forward, navigation.Arrow)
}

// NextBlock moves to the start of the next block from anywhere in the
// current one.
func NextBlock(s State) (State, bool) {
	return move(s, position.Forward, navigation.Adjacent)
}

// PreviousBlock moves to the end of the previous block from anywhere in the
// current one.
func PreviousBlock(s State) (State, bool) {
	return move(s, position.Backward, navigation.Adjacent)
}

func move(s State, dir position.Direction, nav navigateFunc) (State, bool) {
	if s.Selection == nil {
		return s, false
	}
	sel, ok := nav(s.Doc, s.Selection, dir)
	if !ok {
		return s, false
	}
	return State{Doc: s.Doc, Selection: sel}, true
}
