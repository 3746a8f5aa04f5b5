// Package main is the entry point for the blockstorm terminal editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/blockstorm/internal/app"
	"github.com/dshills/blockstorm/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logFile, ok := parseFlags()
	if !ok {
		return 2
	}

	// Logging must stay off the terminal while the screen is active.
	level := new(slog.LevelVar)
	opts.Level = level
	out, closeLog, err := openLog(logFile, opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	opts.Logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(opts.Logger)

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openLog opens the log file named by the flag, or else by the
// configuration. Without either, logs are discarded.
func openLog(path, configPath string) (io.Writer, func(), error) {
	if path == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		path = cfg.Log.File
	}
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func parseFlags() (app.Options, string, bool) {
	var opts app.Options
	var logFile string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LevelOverride, "log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	flag.StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Open the document read-only")
	flag.BoolVar(&opts.ReadOnly, "R", false, "Open the document read-only (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "blockstorm - block document editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: blockstorm [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Enter, Mod-Enter, Backspace, Delete, Escape, arrows; Ctrl-S saves, Ctrl-Q quits.\n")
		fmt.Fprintf(os.Stderr, "Files ending in .json hold the document tree; other files are read as legacy HTML.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("blockstorm %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	if opts.LevelOverride != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(opts.LevelOverride)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.LevelOverride)
			return opts, "", false
		}
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.File = flag.Arg(0)
	default:
		flag.Usage()
		return opts, "", false
	}
	return opts, logFile, true
}
