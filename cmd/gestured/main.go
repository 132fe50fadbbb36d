// Package main is the entry point for the gestured tools.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gestured/gestured/internal/compositor"
	"github.com/gestured/gestured/internal/config"
	"github.com/gestured/gestured/internal/dispatch"
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
	"github.com/gestured/gestured/internal/monitor"
	"github.com/gestured/gestured/internal/trace"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	ReplayPath string
	RecordPath string
	Simulate   bool
	DryRun     bool
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, cfgPath, err := loadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	log, err := buildLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	switch {
	case opts.ReplayPath != "":
		return runReplay(opts, cfg, log)
	case opts.Simulate:
		return runSimulate(opts, cfg, cfgPath, log)
	default:
		fmt.Fprintln(os.Stderr, "Error: no mode selected (use -replay or -simulate)")
		flag.Usage()
		return 2
	}
}

// runReplay drives a recorded trace through a fresh dispatcher and prints
// the outcome.
func runReplay(opts options, cfg config.Config, log *zap.Logger) int {
	sim := compositor.NewSim()
	inj := buildInjector(opts, cfg, log)
	disp := dispatch.NewDispatcher(sim, inj,
		dispatch.WithTargetApp(cfg.TargetApp),
		dispatch.WithHook(logHook{log}),
	)

	player := trace.NewPlayer(disp, sim, log)
	st, err := player.PlayFile(opts.ReplayPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: replay: %v\n", err)
		return 1
	}

	fmt.Printf("replayed %d events: %d consumed, %d ignored, %d unknown\n",
		st.Events, st.Consumed, st.Ignored, st.Unknown)
	for _, cmd := range sim.Commands() {
		fmt.Printf("window command: %s\n", cmd)
	}
	if rec, ok := inj.(*inject.Recorder); ok {
		for _, name := range rec.Names() {
			fmt.Printf("would inject: %s\n", name)
		}
	}
	return 0
}

// runSimulate runs the interactive monitor, optionally recording the
// session and live-reloading the configuration.
func runSimulate(opts options, cfg config.Config, cfgPath string, log *zap.Logger) int {
	sim := compositor.NewSim()
	inj := buildInjector(opts, cfg, log)
	disp := dispatch.NewDispatcher(sim, inj,
		dispatch.WithTargetApp(cfg.TargetApp),
		dispatch.WithHook(logHook{log}),
	)

	mopts := []monitor.Option{monitor.WithLogger(log)}
	if opts.RecordPath != "" {
		tw, err := trace.Create(opts.RecordPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: create trace: %v\n", err)
			return 1
		}
		defer func() {
			if err := tw.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: close trace: %v\n", err)
			}
		}()
		log.Info("recording session", zap.String("path", opts.RecordPath), zap.String("session", tw.Session()))
		mopts = append(mopts, monitor.WithTraceWriter(tw))
	}

	mon, err := monitor.New(disp, sim, mopts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfgPath != "" {
		watcher, err := config.NewWatcher(cfgPath, log)
		if err != nil {
			log.Debug("config watcher unavailable", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
			go func() {
				for next := range watcher.Configs() {
					mon.PostConfig(next)
				}
			}()
			go func() {
				for err := range watcher.Errors() {
					log.Warn("config reload failed", zap.Error(err))
				}
			}()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		mon.Quit()
	}()

	if err := mon.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildInjector returns the real emitter, or a recorder under -dry-run.
func buildInjector(opts options, cfg config.Config, log *zap.Logger) inject.Injector {
	if opts.DryRun {
		return &inject.Recorder{}
	}
	return inject.NewYdotool(cfg.Ydotool, inject.WithLogger(log))
}

// loadConfig resolves and loads the configuration. An empty explicit path
// falls back to the XDG location; a missing file yields defaults.
func loadConfig(explicit string) (config.Config, string, error) {
	path := explicit
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.DefaultConfig(), "", nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// logHook forwards dispatcher activity to the logger.
type logHook struct {
	log *zap.Logger
}

func (h logHook) GestureDecided(kind gesture.Kind, fingers int, dir gesture.Direction) {
	h.log.Debug("gesture decided",
		zap.Stringer("kind", kind),
		zap.Int("fingers", fingers),
		zap.Stringer("direction", dir),
	)
}

func (h logHook) ActionDispatched(kind gesture.Kind, fingers int, action string) {
	h.log.Info("action dispatched",
		zap.Stringer("kind", kind),
		zap.Int("fingers", fingers),
		zap.String("action", action),
	)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ReplayPath, "replay", "", "Replay a recorded gesture trace and exit")
	flag.BoolVar(&opts.Simulate, "simulate", false, "Run the interactive terminal simulator")
	flag.StringVar(&opts.RecordPath, "record", "", "Record simulator gestures to a trace file")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Record key sequences instead of spawning the injector")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error; overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gestured - touchpad gesture recognizer tools\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gestured [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gestured -simulate                    Drive gestures from the keyboard\n")
		fmt.Fprintf(os.Stderr, "  gestured -simulate -record run.jsonl  Record a session while simulating\n")
		fmt.Fprintf(os.Stderr, "  gestured -replay run.jsonl            Replay a recorded session\n")
		fmt.Fprintf(os.Stderr, "  gestured -replay run.jsonl -dry-run   Replay, printing would-be key sequences\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gestured %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	if opts.ReplayPath != "" && opts.Simulate {
		fmt.Fprintln(os.Stderr, "Error: -replay and -simulate are mutually exclusive")
		os.Exit(1)
	}
	if opts.RecordPath != "" && !opts.Simulate {
		fmt.Fprintln(os.Stderr, "Error: -record requires -simulate")
		os.Exit(1)
	}

	return opts
}
