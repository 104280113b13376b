package admintui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/logging"
	"github.com/lmoreno/toyhaven/internal/session"
)

// Run starts the admin console, restoring any persisted admin session.
func Run(cfg *config.Config, store *session.Store, logger *logging.Logger) error {
	client := api.NewAdmin(cfg, api.TokenFunc(store.AdminToken))
	sess := session.NewAdminSession(store, client, logger)
	sess.Restore()

	model := NewModel(client, sess, cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("admin console failed: %w", err)
	}
	return nil
}
