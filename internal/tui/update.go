package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
)

// Update routes messages to the active screen after handling the global
// concerns: window sizing, quit keys, screen switching, and the stale
// generation guard.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case msg.ErrMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		if errors.IsAuthFailure(message.Err) {
			m.session.Logout()
			cmd := m.navigate(screenLogin)
			m.notice = "Session expired, please log in again"
			return m, cmd
		}
		m.notice = errors.UserMessage(message.Err, "Something went wrong, please try again")
		return m, nil

	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKey(message); handled {
			return model, cmd
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(message)
	case screenRegister:
		return m.updateRegister(message)
	case screenProducts:
		return m.updateProducts(message)
	case screenProductDetail:
		return m.updateDetail(message)
	case screenCart:
		return m.updateCart(message)
	case screenWishlist:
		return m.updateWishlist(message)
	case screenCheckout:
		return m.updateCheckout(message)
	case screenOrders:
		return m.updateOrders(message)
	case screenProfile:
		return m.updateProfile(message)
	}
	return m, nil
}

// handleGlobalKey processes keys that work on every screen. Keys are
// swallowed here only when no text input is focused.
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
		cmd := m.navigate(screenProducts)
		return true, m, cmd
	case "2":
		cmd := m.navigate(screenCart)
		return true, m, cmd
	case "3":
		cmd := m.navigate(screenWishlist)
		return true, m, cmd
	case "4":
		cmd := m.navigate(screenOrders)
		return true, m, cmd
	case "5":
		cmd := m.navigate(screenProfile)
		return true, m, cmd
	case "L":
		if m.session.LoggedIn() {
			m.session.Logout()
			cmd := m.navigate(screenLogin)
			m.notice = "Logged out"
			return true, m, cmd
		}
		cmd := m.navigate(screenLogin)
		return true, m, cmd
	}
	return false, m, nil
}

// typing reports whether the active screen has a focused text input, in
// which case plain keys belong to it.
func (m *Model) typing() bool {
	switch m.screen {
	case screenLogin, screenRegister:
		return true
	case screenProducts:
		return m.products.searching
	case screenProfile:
		return m.profile.mode != profileViewing
	case screenCheckout:
		return false
	}
	return false
}
