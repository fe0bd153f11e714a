package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/bms/console"
	"github.com/amirasaad/bms/infra/initializer"
	"github.com/amirasaad/bms/pkg/app"
	"github.com/amirasaad/bms/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	a := app.New(deps, cfg)
	// Close logs its own failure.
	defer a.Close() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := console.NewTerminalInput(os.Stdin, os.Stdout)
	defer input.Restore()

	shell := console.New(
		a.AccountService,
		input,
		os.Stdout,
		console.WithColor(console.IsTerminal(os.Stdout)),
		console.WithLogger(logger),
	)

	logger.Debug("Shell started", "env", cfg.Env, "data_file", cfg.Storage.DataFile)
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stdout) //nolint:errcheck
		logger.Info("Interrupted, saving accounts")
	}
	return nil
}
