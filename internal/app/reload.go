package app

import (
	"log/slog"

	"github.com/dshills/blockstorm/internal/config"
	"github.com/dshills/blockstorm/internal/config/watcher"
	"github.com/dshills/blockstorm/internal/dispatcher"
)

// watchConfig reloads configuration when the file changes. Reloaded
// settings are queued for the event loop; a newer reload replaces one not
// yet applied.
func (a *Application) watchConfig(path string) error {
	w, err := watcher.New(watcher.WithLogger(a.logger))
	if err != nil {
		return err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return err
	}
	w.OnChange(func(ev watcher.Event) {
		cfg, err := config.Load(path)
		if err != nil {
			a.logger.Warn("Config reload failed", "path", ev.Path, "op", ev.Op.String(), "err", err)
			return
		}
		a.queueReload(cfg)
	})
	a.watcher = w
	return nil
}

func (a *Application) queueReload(cfg config.Config) {
	for {
		select {
		case a.reloads <- cfg:
			return
		default:
		}
		select {
		case <-a.reloads:
		default:
		}
	}
}

// ApplySettings switches to new settings. Invalid key bindings leave the
// previous dispatcher configuration active.
func (a *Application) ApplySettings(cfg config.Config) {
	if err := a.dispatcher.Reconfigure(dispatcher.FromSettings(cfg)); err != nil {
		a.logger.Warn("Config rejected", "err", err)
		a.setMessage("config rejected: " + err.Error())
		return
	}
	a.mu.Lock()
	a.settings = cfg
	a.mu.Unlock()
	a.applyLevel(cfg)
	a.setMessage("config reloaded")
}

func (a *Application) applyLevel(cfg config.Config) {
	if a.opts.Level == nil {
		return
	}
	level := cfg.Log.SlogLevel()
	if a.opts.LevelOverride != "" {
		var pinned slog.Level
		if err := pinned.UnmarshalText([]byte(a.opts.LevelOverride)); err == nil {
			level = pinned
		}
	}
	a.opts.Level.Set(level)
}
