package cmd

import (
	"fmt"
	"os"

	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/logging"
	"github.com/lmoreno/toyhaven/internal/session"
)

// env bundles the shared dependencies every subcommand needs: the
// resolved configuration, the credential store, and a logger writing to
// the state directory (a nop logger when logging is disabled).
type env struct {
	cfg    *config.Config
	store  *session.Store
	logger *logging.Logger
}

// setup resolves config and opens the credential store. Callers must
// call close() when done so the log file is flushed.
func setup() (*env, error) {
	cfg := config.Get()
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", config.ValidationErrors(errs))
	}

	stateDir := cfg.Paths.ResolveStateDir()
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	store, err := session.NewStore(stateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(stateDir, cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	return &env{cfg: cfg, store: store, logger: logger}, nil
}

func (e *env) close() {
	_ = e.logger.Close()
}
