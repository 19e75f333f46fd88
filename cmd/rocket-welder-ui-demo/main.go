// Copyright 2026 The RocketWelder Authors
// SPDX-License-Identifier: Apache-2.0

// rocket-welder-ui-demo runs the SDK's control engine and the
// terminal host against an in-process bus, wired into a small demo
// control panel. It exists to exercise the full command/event round
// trip without a RocketWelder deployment.
//
// With a terminal attached it renders the host TUI; with --no-tui (or
// no TTY) it runs headless and logs the command stream instead.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rocket-welder/sdk-go/contracts"
	"github.com/rocket-welder/sdk-go/eventbus"
	"github.com/rocket-welder/sdk-go/lib/clock"
	"github.com/rocket-welder/sdk-go/lib/config"
	"github.com/rocket-welder/sdk-go/ui"
	"github.com/rocket-welder/sdk-go/uihost"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		sessionID  string
		tick       time.Duration
		journal    string
		logOutput  string
		noTUI      bool
	)

	flagSet := pflag.NewFlagSet("rocket-welder-ui-demo", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to rocketwelder.yaml (default: $ROCKETWELDER_CONFIG)")
	flagSet.StringVar(&sessionID, "session", "", "session id (overrides config)")
	flagSet.DurationVar(&tick, "tick", 0, "synchronization interval (overrides config)")
	flagSet.StringVar(&journal, "journal", "", "record command and event streams to this file (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write log records to this file instead of stderr")
	flagSet.BoolVar(&noTUI, "no-tui", false, "run headless and log the command stream")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("session") {
		cfg.SessionID = sessionID
	}
	if flagSet.Changed("tick") {
		cfg.TickInterval = tick.String()
	}
	if flagSet.Changed("journal") {
		cfg.Journal.Path = journal
	}
	if cfg.SessionID == "" {
		cfg.SessionID = "demo"
	}
	interval, err := cfg.TickDuration()
	if err != nil {
		return err
	}

	useTUI := !noTUI && term.IsTerminal(int(os.Stdout.Fd()))

	logger, cleanup, err := buildLogger(cfg, logOutput, useTUI)
	if err != nil {
		return err
	}
	defer cleanup()

	bus := eventbus.NewMemoryBus()
	defer bus.Close()

	if cfg.Journal.Path != "" {
		closeJournal, err := attachJournal(bus, cfg, logger)
		if err != nil {
			return err
		}
		defer closeJournal()
	}

	service, err := ui.NewService(ui.ServiceConfig{
		SessionID: cfg.SessionID,
		Bus:       bus,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer service.Close()

	buildScenario(service, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go runEngine(ctx, service, clock.Real(), interval, logger)

	if useTUI {
		model, err := uihost.NewModel(bus, cfg.SessionID)
		if err != nil {
			return err
		}
		defer model.Close()

		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err = program.Run()
		return err
	}
	return runHeadless(ctx, bus, cfg.SessionID, logger)
}

// loadConfig resolves the configuration source: explicit flag, the
// ROCKETWELDER_CONFIG environment variable, or built-in defaults when
// neither is present.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv("ROCKETWELDER_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// buildLogger constructs the process logger. In TUI mode records go
// to the --log-output file, or nowhere: writing to stderr would
// corrupt the rendered screen.
func buildLogger(cfg *config.Config, logOutput string, useTUI bool) (*slog.Logger, func(), error) {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var sink io.Writer = os.Stderr
	cleanup := func() {}
	if logOutput != "" {
		file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		sink = file
		cleanup = func() { file.Close() }
	} else if useTUI {
		sink = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level}))
	return logger, cleanup, nil
}

// attachJournal opens the journal file and records both session
// streams into it.
func attachJournal(bus eventbus.Bus, cfg *config.Config, logger *slog.Logger) (func(), error) {
	var tag eventbus.CompressionTag
	switch cfg.Journal.Compression {
	case "none":
		tag = eventbus.CompressionNone
	case "lz4":
		tag = eventbus.CompressionLZ4
	default:
		tag = eventbus.CompressionZstd
	}

	file, err := os.OpenFile(cfg.Journal.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	journal := eventbus.NewJournal(file, eventbus.JournalOptions{
		Compression: tag,
		Logger:      logger,
	})
	err = journal.Attach(bus, contracts.CommandStream(cfg.SessionID), contracts.EventStream(cfg.SessionID))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("attaching journal: %w", err)
	}
	logger.Info("journaling streams", "path", cfg.Journal.Path, "compression", tag)

	return func() {
		journal.Close()
		file.Close()
	}, nil
}

// runEngine drives the synchronization loop until the context ends.
func runEngine(ctx context.Context, service *ui.Service, clk clock.Clock, interval time.Duration, logger *slog.Logger) {
	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := service.Tick(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("tick failed", "error", err)
			}
		}
	}
}

// runHeadless logs the session's command stream until interrupted.
func runHeadless(ctx context.Context, bus eventbus.Bus, sessionID string, logger *slog.Logger) error {
	subscription, err := bus.Subscribe(contracts.CommandStream(sessionID), func(env eventbus.Envelope) {
		logger.Info("command", "type", env.Type, "id", env.ID, "bytes", len(env.Data))
	})
	if err != nil {
		return err
	}
	defer subscription.Close()

	logger.Info("running headless, ctrl-c to exit")
	<-ctx.Done()
	return nil
}
