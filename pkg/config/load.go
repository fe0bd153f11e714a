package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFiles (searched from the working
// directory upwards) and then builds the configuration from the environment.
// Missing env files are not an error; variables already set take precedence.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for _, name := range envFiles {
		path, err := FindEnvFile(wd, name)
		if err != nil {
			logger.Debug("Env file not found", "name", name)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to load env file", "path", path, "error", err)
			continue
		}
		logger.Debug("Loaded env file", "path", path)
		break
	}

	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	cfg.Storage = &Storage{DataFile: DefaultDataFile}

	slog.Default().Debug("Config loaded",
		"env", cfg.Env,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"data_file", cfg.Storage.DataFile,
	)
	return &cfg, nil
}
