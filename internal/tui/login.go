package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type loginState struct {
	inputs  []textinput.Model
	focus   int
	waiting bool
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return loginState{inputs: []textinput.Model{email, password}}
}

func (m Model) updateLogin(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.LoginMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.login.waiting = false
		if message.Err != nil {
			m.notice = errors.UserMessage(message.Err, "Login failed")
			return m, nil
		}
		cmd := m.navigate(screenProducts)
		return m, cmd

	case tea.KeyMsg:
		switch message.Type {
		case tea.KeyTab, tea.KeyDown:
			m.login.focusField((m.login.focus + 1) % len(m.login.inputs))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.login.focusField((m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs))
			return m, nil
		case tea.KeyEnter:
			if m.login.waiting {
				return m, nil
			}
			return m.submitLogin()
		case tea.KeyEsc:
			cmd := m.navigate(screenProducts)
			return m, cmd
		}
		if message.String() == "ctrl+r" {
			cmd := m.navigate(screenRegister)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(message)
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.login.inputs[0].Value())
	password := m.login.inputs[1].Value()

	m.login.waiting = true
	m.notice = ""
	gen := m.gen
	sess := m.session
	return m, func() tea.Msg {
		return msg.LoginMsg{Gen: gen, Err: sess.Login(context.Background(), email, password)}
	}
}

func (s *loginState) focusField(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (m *Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Sign in"))
	b.WriteString("\n\n")
	for i, input := range m.login.inputs {
		cursor := "  "
		if i == m.login.focus {
			cursor = styles.Primary.Render("> ")
		}
		b.WriteString(cursor + input.View() + "\n")
	}
	if m.login.waiting {
		b.WriteString("\n" + styles.Muted.Render("Signing in..."))
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" sign in  "+
			styles.HelpKey.Render("ctrl+r")+" register  "+
			styles.HelpKey.Render("esc")+" browse as guest"))
	return b.String()
}
