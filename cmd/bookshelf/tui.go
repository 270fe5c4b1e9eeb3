package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookshelf/internal/catalog"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/request"
	"bookshelf/internal/search"
	"bookshelf/internal/ui"
)

// runTUI wires the services to the bubbletea program
func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	_, statErr := os.Stat(e.configSvc.Path())
	hasConfig := statErr == nil

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Initialize services
	books := catalog.Default()
	machine := request.NewMachine(search.NewEngine(books), books.All(), request.Options{
		Delay:        e.cfg.Search.Delay,
		DiscardStale: e.cfg.Search.DiscardStale,
		Bus:          e.bus,
		Logger:       e.logger,
	})
	defer machine.Close()

	uiModel := ui.NewModel(e.bus, e.cfg, machine, e.logger)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(ev eventbus.DomainEvent) {
		select {
		case eventChan <- ev:
		default:
			e.logger.Warn("event channel full, dropping event", zap.String("type", string(ev.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStateChanged,
		eventbus.EventSearchDiscarded,
		eventbus.EventError,
	} {
		unsubscribe := e.bus.Subscribe(t, forwardEvent)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev := <-eventChan:
				p.Send(ui.EventMsg{Event: ev})
			case <-ctx.Done():
				return
			}
		}
	}()

	e.bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: hasConfig})

	// Run the UI
	e.logger.Info("starting UI", zap.String("version", version), zap.String("config", e.configSvc.Path()))
	_, runErr := p.Run()
	cancel()
	<-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		e.logger.Error("error running program", zap.Error(runErr))
		return runErr
	}
	e.logger.Info("UI exited normally")
	return nil
}
