package initializer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/bms/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dataFile string) *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{
			Level:      -4,
			Format:     "logfmt",
			TimeFormat: "15:04:05",
			Prefix:     "[test]",
		},
		Storage: &config.Storage{DataFile: dataFile},
	}
}

func TestInitializeDependencies_LoadsDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Accounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("1:Alice:1234:60.00\nbad line\n2:Bob:5678:0.00\n"), 0o600))

	var logs bytes.Buffer
	deps, err := InitializeDependencies(testConfig(path), WithLogOutput(&logs))
	require.NoError(t, err)

	accs := deps.AccountRepository.List()
	require.Len(t, accs, 2)
	assert.Equal(t, "Alice", accs[0].Name)
	assert.Equal(t, 3, deps.AccountRepository.NextID())
	assert.Contains(t, logs.String(), "Skipping account entry")
	assert.Contains(t, logs.String(), "[test]")
}

func TestInitializeDependencies_MissingFileStartsEmpty(t *testing.T) {
	var logs bytes.Buffer
	deps, err := InitializeDependencies(
		testConfig(filepath.Join(t.TempDir(), "Accounts.txt")),
		WithLogOutput(&logs),
	)
	require.NoError(t, err)
	assert.Empty(t, deps.AccountRepository.List())
	assert.Contains(t, logs.String(), "starting fresh")
}

func TestInitializeDependencies_UnreadableFileStartsEmpty(t *testing.T) {
	// Opening a directory succeeds, reading from it does not.
	dir := t.TempDir()

	var logs bytes.Buffer
	deps, err := InitializeDependencies(testConfig(dir), WithLogOutput(&logs))
	require.NoError(t, err)
	assert.Empty(t, deps.AccountRepository.List())
	assert.Contains(t, logs.String(), "starting fresh")
}

func TestSetupLogger_JSON(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig("")
	cfg.Log.Format = "json"
	logger := setupLogger(cfg.Log, &logs)
	logger.Info("hello", "account_id", 7)
	assert.Contains(t, logs.String(), `"hello"`)
	assert.Contains(t, logs.String(), `"account_id"`)
}
