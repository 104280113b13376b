package admintui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/errors"
)

// Update routes messages after the global concerns: sizing, quit, the
// confirm modal, screen switching, and auth failures.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case errMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		if errors.IsAuthFailure(message.err) {
			m.session.Logout()
			cmd := m.navigate(screenLogin)
			m.notice = "Admin session expired, please log in again"
			return m, cmd
		}
		m.notice = errors.UserMessage(message.err, "Something went wrong, please try again")
		return m, nil

	case tea.KeyMsg:
		if m.confirm.active {
			return m.handleConfirmKey(message)
		}
		if handled, model, cmd := m.handleGlobalKey(message); handled {
			return model, cmd
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(message)
	case screenDashboard:
		return m.updateDashboard(message)
	case screenProducts:
		return m.updateProducts(message)
	case screenProductForm:
		return m.updateProductForm(message)
	case screenOrders:
		return m.updateOrders(message)
	case screenUsers:
		return m.updateUsers(message)
	}
	return m, nil
}

// handleConfirmKey resolves the blocking modal: y runs the pending
// command, anything that reads as no dismisses it.
func (m Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		pending := m.confirm.pending
		m.confirm = confirm{}
		return m, pending
	case "n", "N", "esc":
		m.confirm = confirm{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleGlobalKey(key tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return true, m, tea.Quit
	}

	if m.typing() {
		return false, m, nil
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return true, m, tea.Quit
	case "1":
		cmd := m.navigate(screenDashboard)
		return true, m, cmd
	case "2":
		cmd := m.navigate(screenProducts)
		return true, m, cmd
	case "3":
		cmd := m.navigate(screenOrders)
		return true, m, cmd
	case "4":
		cmd := m.navigate(screenUsers)
		return true, m, cmd
	case "L":
		// Clears only the admin credentials; a storefront session in the
		// same state dir survives.
		m.session.Logout()
		cmd := m.navigate(screenLogin)
		m.notice = "Logged out of the admin console"
		return true, m, cmd
	}
	return false, m, nil
}

func (m *Model) typing() bool {
	switch m.screen {
	case screenLogin, screenProductForm:
		return true
	case screenProducts:
		return m.products.searching
	case screenOrders:
		return m.orders.searching
	case screenUsers:
		return m.users.searching
	}
	return false
}
