package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) ops(path string) []Operation {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ops []Operation
	for _, ev := range r.events {
		if ev.Path == path {
			ops = append(ops, ev.Op)
		}
	}
	return ops
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "write", OpWrite.String())
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "unknown", Operation(99).String())
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Operation
		ok   bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRemove, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Chmod, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := convertOp(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blockstorm.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\n"), 0o644))

	w, err := New(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(path))
	rec := &recorder{}
	w.OnChange(rec.handle)
	w.Start()
	assert.True(t, w.IsRunning())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	require.Eventually(t, func() bool { return len(rec.ops(path)) > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []Operation{OpWrite}, rec.ops(path))
	assert.Empty(t, rec.ops(filepath.Join(dir, "other.toml")))
}

func TestWatcher_Coalesces(t *testing.T) {
	w, err := New(WithDebounce(time.Hour))
	require.NoError(t, err)
	defer w.Stop()

	rec := &recorder{}
	w.OnChange(rec.handle)

	w.queueEvent(Event{Path: "/a", Op: OpCreate})
	w.queueEvent(Event{Path: "/a", Op: OpWrite})
	w.queueEvent(Event{Path: "/b", Op: OpWrite})
	w.queueEvent(Event{Path: "/b", Op: OpRemove})
	w.queueEvent(Event{Path: "/c", Op: OpRemove})
	w.queueEvent(Event{Path: "/c", Op: OpWrite})
	w.flush()

	assert.Equal(t, []Operation{OpCreate}, rec.ops("/a"))
	assert.Equal(t, []Operation{OpRemove}, rec.ops("/b"))
	assert.Equal(t, []Operation{OpCreate}, rec.ops("/c"))
}

func TestWatcher_HandlerPanicRecovered(t *testing.T) {
	w, err := New(WithDebounce(0))
	require.NoError(t, err)
	defer w.Stop()

	rec := &recorder{}
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(rec.handle)

	w.emitEvent(Event{Path: "/a", Op: OpWrite})
	assert.Len(t, rec.ops("/a"), 1)
}

func TestWatcher_Stop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	w.Start()
	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
	assert.NoError(t, w.Stop())
	assert.ErrorIs(t, w.Watch(t.TempDir()+"/x.toml"), ErrWatcherClosed)
}
