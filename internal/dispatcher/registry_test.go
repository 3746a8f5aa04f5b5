package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/blockstorm/internal/dispatcher/handler"
	"github.com/dshills/blockstorm/internal/engine"
)

func named(name string, prio int) *handler.HandlerFunc {
	return handler.NewHandlerFuncWithPriority(func(handler.Action, *engine.Engine) handler.Result {
		return handler.SuccessWithMessage(name)
	}, prio)
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("a.x", named("low", 1))
	r.Register("a.*", named("high", 10))
	r.Register("a.x", named("mid-first", 5))
	r.Register("a.x", named("mid-second", 5))

	var got []string
	for _, h := range r.GetAll("a.x") {
		got = append(got, h.Handle(handler.Action{}, nil).Message)
	}
	assert.Equal(t, []string{"high", "mid-first", "mid-second", "low"}, got)
	assert.Len(t, r.GetAll("a.y"), 1)
	assert.Empty(t, r.GetAll("b.x"))
}

func TestRegistryCanHandleFilters(t *testing.T) {
	r := NewRegistry()
	r.Register("a.*", &handler.SimpleHandler{ActionName: "a.only"})

	assert.True(t, r.Has("a.only"))
	assert.False(t, r.Has("a.other"))
	assert.Nil(t, r.Get("a.other"))
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	h1, h2 := named("one", 0), named("two", 0)
	r.Register("a.x", h1)
	r.Register("a.x", h2)
	r.Register("a.y", h1)
	r.Register("a.z", nil)

	r.UnregisterHandler("a.x", h1)
	assert.Same(t, h2, r.Get("a.x"))

	r.Unregister("a.x")
	assert.False(t, r.Has("a.x"))
	assert.Equal(t, []string{"a.y"}, r.List())
	assert.Equal(t, 1, r.Count())

	r.Clear()
	assert.Zero(t, r.Count())
}
