package initializer

import (
	"errors"
	"io"
	"os"

	accountrepo "github.com/amirasaad/bms/infra/repository/account"
	"github.com/amirasaad/bms/pkg/config"
	"github.com/amirasaad/bms/pkg/repository"
)

// Option customizes InitializeDependencies.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends log output to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// InitializeDependencies sets up logging and loads the account store from the data file.
// A missing or unreadable data file is not an error: the store starts empty.
func InitializeDependencies(cfg *config.App, opts ...Option) (*config.Deps, error) {
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logger := setupLogger(cfg.Log, o.logOutput)

	repo := accountrepo.New(logger)
	results, err := repo.LoadFile(cfg.Storage.DataFile)
	switch {
	case errors.Is(err, repository.ErrStorage):
		// The store logs open and read failures itself and is left empty.
	case err != nil:
		return nil, err
	default:
		skipped := 0
		for _, r := range results {
			if r.Err != nil {
				skipped++
			}
		}
		logger.Info("Accounts loaded",
			"path", cfg.Storage.DataFile,
			"count", repo.Len(),
			"skipped", skipped,
		)
	}

	return &config.Deps{
		AccountRepository: repo,
		Logger:            logger,
		Config:            cfg,
	}, nil
}
