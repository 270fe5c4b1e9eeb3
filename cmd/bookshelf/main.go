// Package main is the entry point for the bookshelf TUI and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookshelf/internal/config"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the TUI; subcommands are headless.
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Book search, FizzBuzz and a spend dashboard in the terminal",
	Long: `bookshelf is a terminal app with three tabs: a book search over a small
built-in catalog, a FizzBuzz grid and an analytics dashboard.

Run without arguments for the interactive UI. The search, fizzbuzz and
dashboard subcommands print the same content to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookshelf.toml or the user config dir)")
	rootCmd.PersistentFlags().String("log-file", "", "log file (overrides log.file)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")
}

// env is what every command needs: config, logger and a bus
type env struct {
	cfg       *config.Config
	configSvc config.ConfigService
	logger    *zap.Logger
	bus       eventbus.EventBus
}

// setup loads config and starts logging and the event bus
func setup(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	// Config is loaded before the bus exists; the load is published once it does
	cfg, err := config.NewConfigServiceWithBus(nil, cfgPath).Load()
	if err != nil {
		return nil, err
	}

	e, err := newEnv(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if path := e.configSvc.Path(); fileExists(path) {
		e.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
	return e, nil
}

// newEnv starts logging and the event bus for an already resolved config
func newEnv(cmd *cobra.Command, cfg *config.Config) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	logFile, _ := cmd.Flags().GetString("log-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if logFile != "" {
		cfg.Log.File = logFile
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level, verbose)
	if err != nil {
		return nil, err
	}

	// Create event bus
	bus := eventbus.New(logger)
	auditEvents(bus, logger)

	return &env{
		cfg:       cfg,
		configSvc: config.NewConfigServiceWithBus(bus, cfgPath),
		logger:    logger,
		bus:       bus,
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// close flushes the logger and stops the bus
func (e *env) close() {
	e.bus.Close()
	_ = e.logger.Sync()
}

// auditEvents writes every domain event to the log
func auditEvents(bus eventbus.EventBus, logger *zap.Logger) {
	audit := logger.Named("audit")
	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSubmittedEvent); ok {
			audit.Info("search submitted",
				zap.String("request_id", event.RequestID),
				zap.Uint64("seq", event.Seq),
				zap.String("query", event.Query))
		}
	})
	bus.Subscribe(eventbus.EventSearchStateChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStateChangedEvent); ok {
			audit.Info("search state",
				zap.String("request_id", event.RequestID),
				zap.Uint64("seq", event.Seq),
				zap.String("phase", event.Phase),
				zap.Int("results", len(event.Results)))
		}
	})
	bus.Subscribe(eventbus.EventSearchDiscarded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchDiscardedEvent); ok {
			audit.Info("search discarded",
				zap.String("request_id", event.RequestID),
				zap.Uint64("seq", event.Seq),
				zap.Uint64("latest_seq", event.LatestSeq))
		}
	})
	bus.Subscribe(eventbus.EventTabChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.TabChangedEvent); ok {
			audit.Debug("tab changed", zap.String("from", event.From), zap.String("to", event.To))
		}
	})
	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AppReadyEvent); ok {
			audit.Info("app ready", zap.Bool("has_config", event.HasExistingConfig))
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			audit.Info("config saved", zap.String("path", event.Path))
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			audit.Info("config loaded", zap.String("path", event.Path))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			audit.Error(event.Message, zap.Error(event.Err))
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
