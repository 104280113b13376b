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

type registerState struct {
	inputs  []textinput.Model
	focus   int
	waiting bool
}

func newRegisterState() registerState {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 120
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password (min 6 chars)"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 120
	confirm.EchoMode = textinput.EchoPassword

	return registerState{inputs: []textinput.Model{name, email, password, confirm}}
}

func (m Model) updateRegister(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.LoginMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.register.waiting = false
		if message.Err != nil {
			m.notice = errors.UserMessage(message.Err, "Registration failed")
			return m, nil
		}
		cmd := m.navigate(screenProducts)
		return m, cmd

	case tea.KeyMsg:
		switch message.Type {
		case tea.KeyTab, tea.KeyDown:
			m.register.focusField((m.register.focus + 1) % len(m.register.inputs))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.register.focusField((m.register.focus + len(m.register.inputs) - 1) % len(m.register.inputs))
			return m, nil
		case tea.KeyEnter:
			if m.register.waiting {
				return m, nil
			}
			return m.submitRegister()
		case tea.KeyEsc:
			cmd := m.navigate(screenLogin)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(message)
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.register.inputs[0].Value())
	email := strings.TrimSpace(m.register.inputs[1].Value())
	password := m.register.inputs[2].Value()
	confirm := m.register.inputs[3].Value()

	m.register.waiting = true
	m.notice = ""
	gen := m.gen
	sess := m.session
	return m, func() tea.Msg {
		return msg.LoginMsg{Gen: gen, Err: sess.Register(context.Background(), name, email, password, confirm)}
	}
}

func (s *registerState) focusField(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (m *Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Create account"))
	b.WriteString("\n\n")
	for i, input := range m.register.inputs {
		cursor := "  "
		if i == m.register.focus {
			cursor = styles.Primary.Render("> ")
		}
		b.WriteString(cursor + input.View() + "\n")
	}
	if m.register.waiting {
		b.WriteString("\n" + styles.Muted.Render("Creating account..."))
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" register  "+
			styles.HelpKey.Render("esc")+" back to sign in"))
	return b.String()
}
