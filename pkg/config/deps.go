package config

import (
	"log/slog"

	"github.com/amirasaad/bms/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	AccountRepository repository.FileStore
	Logger            *slog.Logger
	Config            *App
}
