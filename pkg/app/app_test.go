package app_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	accountrepo "github.com/amirasaad/bms/infra/repository/account"
	"github.com/amirasaad/bms/pkg/app"
	"github.com/amirasaad/bms/pkg/config"
	"github.com/amirasaad/bms/pkg/domain/money"
	"github.com/amirasaad/bms/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, dataFile string) *app.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{Env: "test", Storage: &config.Storage{DataFile: dataFile}}
	deps := &config.Deps{
		AccountRepository: accountrepo.New(logger),
		Logger:            logger,
		Config:            cfg,
	}
	return app.New(deps, cfg)
}

func TestClose_SavesAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Accounts.txt")
	a := newApp(t, path)

	acc, err := a.AccountService.CreateAccount("Alice", "1234")
	require.NoError(t, err)
	sess, err := a.AccountService.Authenticate(acc.ID, "1234")
	require.NoError(t, err)
	_, err = a.AccountService.Deposit(sess, money.FromCents(2500))
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1:Alice:1234:25.00\n", string(data))
}

func TestClose_UnwritablePathReportsStorageError(t *testing.T) {
	a := newApp(t, filepath.Join(t.TempDir(), "no-such-dir", "Accounts.txt"))
	err := a.Close()
	assert.ErrorIs(t, err, repository.ErrStorage)
}
