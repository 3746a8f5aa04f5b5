package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/blockstorm/internal/engine"
)

func TestResultConstructors(t *testing.T) {
	assert.True(t, Success().IsOK())
	assert.True(t, NoOp().IsNoOp())
	assert.Equal(t, "why", NoOpWithMessage("why").Message)

	r := Errorf("bad %d", 1)
	assert.True(t, r.IsError())
	assert.EqualError(t, r.Error, "bad 1")

	base := errors.New("boom")
	assert.ErrorIs(t, Error(base).Error, base)

	assert.True(t, FromBool(true).IsOK())
	assert.True(t, FromBool(false).IsNoOp())

	r = Success().WithMessage("done").WithHandler("block")
	assert.Equal(t, "done", r.Message)
	assert.Equal(t, "block", r.Handler)
}

func TestResultStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "no-op", StatusNoOp.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", ResultStatus(99).String())
}

func TestActionNamespace(t *testing.T) {
	assert.Equal(t, "block", Action{Name: "block.enter"}.Namespace())
	assert.Equal(t, "", Action{Name: "quit"}.Namespace())
}

func TestHandlerFunc(t *testing.T) {
	called := false
	h := NewHandlerFuncWithPriority(func(a Action, _ *engine.Engine) Result {
		called = true
		return SuccessWithMessage(a.Name)
	}, 7)

	assert.True(t, h.CanHandle("anything"))
	assert.Equal(t, 7, h.Priority())
	r := h.Handle(Action{Name: "x.y"}, engine.New())
	assert.True(t, called)
	assert.Equal(t, "x.y", r.Message)

	assert.True(t, NewHandlerFunc(nil).Handle(Action{}, nil).IsError())
}

func TestSimpleHandler(t *testing.T) {
	h := &SimpleHandler{ActionName: "block.escape", Fn: Command((*engine.Engine).Escape), Prio: 3}

	assert.True(t, h.CanHandle("block.escape"))
	assert.False(t, h.CanHandle("block.enter"))
	assert.Equal(t, 3, h.Priority())

	// A fresh engine holds a text cursor, so Escape declines.
	assert.True(t, h.Handle(Action{Name: "block.escape"}, engine.New()).IsNoOp())
	assert.True(t, (&SimpleHandler{}).Handle(Action{}, nil).IsError())
}
