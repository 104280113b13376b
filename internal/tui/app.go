package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/logging"
	"github.com/lmoreno/toyhaven/internal/session"
)

// Run starts the storefront TUI, restoring any persisted session first.
func Run(cfg *config.Config, store *session.Store, logger *logging.Logger) error {
	client := api.New(cfg, api.TokenFunc(store.UserToken))
	sess := session.NewSession(store, client, logger)
	sess.Restore(context.Background())

	model := NewModel(client, sess, cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("storefront UI failed: %w", err)
	}
	return nil
}
