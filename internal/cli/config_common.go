package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/egrn/internal/config"
	"github.com/vvka-141/egrn/internal/files/transfer"
	"github.com/vvka-141/egrn/internal/logging"
	"github.com/vvka-141/egrn/internal/retry"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// loadProjectConfig loads .env and the project configuration.
// Without --config, a missing ./egrn.yaml is not an error and yields nil.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		projectCfg *config.ProjectConfig
		err        error
	)
	if configPath != "" {
		projectCfg, err = config.LoadFile(configPath)
	} else {
		projectCfg, err = config.Load(".")
	}
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && configPath == "" {
			return nil, nil // Config file not found is not an error
		}
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configPath, egrn.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveSettings merges egrn.yaml, environment and the persistent flags.
// Command-specific flags are applied by the commands themselves.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	projectCfg, err := loadProjectConfig(rootFlags.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Resolve(projectCfg, os.Getenv)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("log-format") {
		settings.LogFormat = rootFlags.logFormat
	}
	return settings, nil
}

// newLogger builds the logger selected by the settings.
func newLogger(settings config.Settings, verbose bool) (egrn.Logger, error) {
	return logging.New(settings.LogFormat, verbose)
}

// newTransfer builds a file transfer whose renames are retried per the settings.
func newTransfer(settings config.Settings, logger egrn.Logger) *transfer.Transfer {
	exec := retry.NewFilesystemExecutor(settings.Retry.MaxAttempts,
		retry.WithInitialDelay(settings.Retry.InitialDelay),
		retry.WithMaxDelay(settings.Retry.MaxDelay),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("retry %d after %s: %v", attempt+1, delay, err)
	})
	return transfer.New(transfer.WithExecutor(exec))
}
