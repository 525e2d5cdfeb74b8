// Package main is the entry point for the Ember event demo.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/dshills/ember/internal/app"
	"github.com/dshills/ember/internal/config"
	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/logging"
	"github.com/dshills/ember/internal/platform"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	Config   string `short:"c" long:"config" description:"TOML or YAML configuration file"`
	LogLevel string `long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFile  string `long:"log-file" description:"Write logs to this file instead of stderr"`
	Script   string `short:"s" long:"script" description:"Lua script to run as a layer"`
	TickRate int    `long:"tick-rate" description:"Frames per second"`
	Debug    bool   `short:"d" long:"debug" description:"Validate every event before dispatch"`
	Headless bool   `long:"headless" description:"Run without a terminal until interrupted"`
	NoWatch  bool   `long:"no-watch" description:"Do not reload the configuration file when it changes"`
	Kinds    bool   `long:"kinds" description:"List event kinds and their categories, then exit"`
	Version  bool   `short:"v" long:"version" description:"Show version information"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "ember"
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "Ember %s\nCommit: %s\nBuilt: %s\n", version, commit, date)
		return 0
	}
	if opts.Kinds {
		printKinds(stdout)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	loggers, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer loggers.Close()

	loggers.Core.Warn("initialized log")
	loggers.Client.Info("hello", zap.String("version", version))

	prev := event.SetViolationHandler(logging.Violations(loggers.Component("event")))
	defer event.SetViolationHandler(prev)

	window, err := newWindow(cfg, opts.Headless)
	if err != nil {
		loggers.Core.Error("creating window", zap.Error(err))
		fmt.Fprintf(stderr, "Error: failed to create window: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{Config: cfg, Window: window, Logger: loggers})
	if err != nil {
		loggers.Core.Error("creating application", zap.Error(err))
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if opts.Config != "" && !opts.NoWatch {
		w, err := watchConfig(opts, application, loggers.Component("config"))
		if err != nil {
			loggers.Core.Warn("config reload disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		loggers.Core.Error("run failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file and applies command-line
// overrides on top of it. Validation runs last so a flag can replace a
// bad file or environment value.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Read(opts.Config)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.Script != "" {
		cfg.Script.Path = opts.Script
	}
	if opts.TickRate != 0 {
		cfg.App.TickRate = opts.TickRate
	}
	if opts.Debug {
		cfg.App.Debug = true
	}
}

func newWindow(cfg *config.Config, headless bool) (platform.Window, error) {
	if headless {
		return platform.NewNullWindow(80, 24), nil
	}
	return platform.NewTerminal(platform.Options{
		Mouse:                cfg.Input.Mouse,
		RepeatWindow:         cfg.Input.RepeatWindow.Duration,
		SynthesizeKeyRelease: cfg.Input.SynthesizeKeyRelease,
		CloseOnCtrlQ:         cfg.Input.CloseOnCtrlQ,
	})
}

// watchConfig reapplies the configuration file whenever it changes.
// Command-line overrides keep precedence over reloaded values.
func watchConfig(opts options, application *app.Application, log *zap.Logger) (*config.Watcher, error) {
	return config.NewWatcher(opts.Config,
		func(cfg *config.Config) {
			applyFlags(cfg, opts)
			if err := cfg.Validate(); err != nil {
				log.Warn("ignoring reloaded config", zap.Error(err))
				return
			}
			if err := application.ApplyConfig(cfg); err != nil {
				log.Warn("applying reloaded config", zap.Error(err))
			}
		},
		config.WithLoader(config.Read),
		config.WithErrorHandler(func(err error) {
			log.Warn("config reload failed", zap.Error(err))
		}),
	)
}
