package app

import (
	"log/slog"

	"github.com/amirasaad/bms/pkg/config"
	"github.com/amirasaad/bms/pkg/repository"
	"github.com/amirasaad/bms/pkg/service/account"
)

// App owns the services for one run of the program.
type App struct {
	Deps           *config.Deps
	Config         *config.App
	AccountService *account.Service

	store  repository.FileStore
	logger *slog.Logger
	closed bool
}

// New builds the account service over the loaded store in deps.
func New(deps *config.Deps, cfg *config.App) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: account.New(deps.AccountRepository, logger),
		store:          deps.AccountRepository,
		logger:         logger,
	}
}

// Close writes the account table back to the data file. A failed save is logged and
// returned, but the table is never discarded. Close is idempotent.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if err := a.store.SaveFile(a.Config.Storage.DataFile); err != nil {
		a.logger.Warn("Could not save accounts", "path", a.Config.Storage.DataFile, "error", err)
		return err
	}
	return nil
}
