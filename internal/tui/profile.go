package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

// Profile screen modes.
const (
	profileViewing = iota
	profileEditing
	profilePassword
	profileAddressForm
)

type profileState struct {
	profile   *api.Identity
	addresses []api.Address
	mode      int
	cursor    int // address book cursor
	loaded    bool

	inputs  []textinput.Model
	focus   int
	editing api.Address // address being edited; zero ID means create
}

func newProfileState() profileState {
	return profileState{}
}

// enterProfile fetches the profile and address book together.
func (m *Model) enterProfile() tea.Cmd {
	m.profile.loaded = false
	m.profile.mode = profileViewing
	return tea.Batch(
		msg.LoadProfile(m.client, m.gen),
		msg.LoadAddresses(m.client, m.gen),
	)
}

func (m Model) updateProfile(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.ProfileLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.profile.profile = message.Profile
		m.profile.loaded = true
		return m, nil

	case msg.AddressesLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.profile.addresses = message.Addresses
		if m.profile.cursor >= len(m.profile.addresses) && m.profile.cursor > 0 {
			m.profile.cursor = len(m.profile.addresses) - 1
		}
		return m, nil

	case msg.ProfileSavedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.profile.profile = message.Profile
		m.profile.mode = profileViewing
		m.notice = styles.SuccessNotice.Render("Profile saved")
		return m, nil

	case msg.PasswordChangedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.profile.mode = profileViewing
		m.notice = styles.SuccessNotice.Render("Password changed")
		return m, nil

	case msg.AddressSavedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.profile.mode = profileViewing
		return m, msg.LoadAddresses(m.client, m.gen)

	case tea.KeyMsg:
		switch m.profile.mode {
		case profileViewing:
			return m.handleProfileViewKey(message)
		default:
			return m.handleProfileFormKey(message)
		}
	}
	return m, nil
}

func (m Model) handleProfileViewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "e":
		m.startProfileEdit()
		return m, nil
	case "P":
		m.startPasswordChange()
		return m, nil
	case "a":
		m.startAddressForm(api.Address{})
		return m, nil
	case "j", "down":
		if m.profile.cursor < len(m.profile.addresses)-1 {
			m.profile.cursor++
		}
		return m, nil
	case "k", "up":
		if m.profile.cursor > 0 {
			m.profile.cursor--
		}
		return m, nil
	case "enter":
		if addr, ok := m.selectedAddress(); ok {
			m.startAddressForm(addr)
		}
		return m, nil
	case "x", "delete":
		if addr, ok := m.selectedAddress(); ok {
			return m, msg.DeleteAddress(m.client, m.gen, addr.ID)
		}
		return m, nil
	case "d":
		// Mark the selected address default.
		if addr, ok := m.selectedAddress(); ok && !addr.IsDefault {
			addr.IsDefault = true
			return m, msg.SaveAddress(m.client, m.gen, addr)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleProfileFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.profile.mode = profileViewing
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.profile.focusField((m.profile.focus + 1) % len(m.profile.inputs))
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.profile.focusField((m.profile.focus + len(m.profile.inputs) - 1) % len(m.profile.inputs))
		return m, nil
	case tea.KeyEnter:
		switch m.profile.mode {
		case profileEditing:
			return m.submitProfileEdit()
		case profilePassword:
			return m.submitPasswordChange()
		case profileAddressForm:
			return m.submitAddressForm()
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(key)
	return m, cmd
}

func (m *Model) selectedAddress() (api.Address, bool) {
	if m.profile.cursor >= len(m.profile.addresses) {
		return api.Address{}, false
	}
	return m.profile.addresses[m.profile.cursor], true
}

func (m *Model) startProfileEdit() {
	p := m.profile.profile
	if p == nil {
		return
	}
	fields := []struct{ placeholder, value string }{
		{"name", p.Name},
		{"email", p.Email},
		{"phone", p.Phone},
		{"address (legacy)", p.Address},
		{"bio", p.Bio},
	}
	m.profile.inputs = makeInputs(fields)
	m.profile.focus = 0
	m.profile.mode = profileEditing
}

func (m *Model) startPasswordChange() {
	fields := []struct{ placeholder, value string }{
		{"current password", ""},
		{"new password (min 6 chars)", ""},
		{"confirm new password", ""},
	}
	m.profile.inputs = makeInputs(fields)
	for i := range m.profile.inputs {
		m.profile.inputs[i].EchoMode = textinput.EchoPassword
	}
	m.profile.focus = 0
	m.profile.mode = profilePassword
}

func (m *Model) startAddressForm(addr api.Address) {
	fields := []struct{ placeholder, value string }{
		{"name", addr.Name},
		{"phone", addr.Phone},
		{"address line 1", addr.AddressLine1},
		{"address line 2", addr.AddressLine2},
		{"city", addr.City},
		{"state", addr.State},
		{"country", addr.Country},
		{"postal code", addr.PostalCode},
		{"type (home/work/other)", addr.Type},
	}
	m.profile.inputs = makeInputs(fields)
	m.profile.editing = addr
	m.profile.focus = 0
	m.profile.mode = profileAddressForm
}

func makeInputs(fields []struct{ placeholder, value string }) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.CharLimit = 200
		input.SetValue(f.value)
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}
	return inputs
}

func (s *profileState) focusField(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (m Model) submitProfileEdit() (tea.Model, tea.Cmd) {
	update := api.ProfileUpdate{
		Name:    strings.TrimSpace(m.profile.inputs[0].Value()),
		Email:   strings.TrimSpace(m.profile.inputs[1].Value()),
		Phone:   strings.TrimSpace(m.profile.inputs[2].Value()),
		Address: strings.TrimSpace(m.profile.inputs[3].Value()),
		Bio:     strings.TrimSpace(m.profile.inputs[4].Value()),
	}

	gen := m.gen
	sess := m.session
	client := m.client
	return m, func() tea.Msg {
		if err := sess.UpdateProfile(context.Background(), update); err != nil {
			return msg.ErrMsg{Gen: gen, Err: err}
		}
		profile, err := client.Profile(context.Background())
		if err != nil {
			return msg.ErrMsg{Gen: gen, Err: err}
		}
		return msg.ProfileSavedMsg{Gen: gen, Profile: profile}
	}
}

func (m Model) submitPasswordChange() (tea.Model, tea.Cmd) {
	current := m.profile.inputs[0].Value()
	next := m.profile.inputs[1].Value()
	confirm := m.profile.inputs[2].Value()

	gen := m.gen
	sess := m.session
	return m, func() tea.Msg {
		if err := sess.ChangePassword(context.Background(), current, next, confirm); err != nil {
			return msg.ErrMsg{Gen: gen, Err: err}
		}
		return msg.PasswordChangedMsg{Gen: gen}
	}
}

func (m Model) submitAddressForm() (tea.Model, tea.Cmd) {
	addr := m.profile.editing
	addr.Name = strings.TrimSpace(m.profile.inputs[0].Value())
	addr.Phone = strings.TrimSpace(m.profile.inputs[1].Value())
	addr.AddressLine1 = strings.TrimSpace(m.profile.inputs[2].Value())
	addr.AddressLine2 = strings.TrimSpace(m.profile.inputs[3].Value())
	addr.City = strings.TrimSpace(m.profile.inputs[4].Value())
	addr.State = strings.TrimSpace(m.profile.inputs[5].Value())
	addr.Country = strings.TrimSpace(m.profile.inputs[6].Value())
	addr.PostalCode = strings.TrimSpace(m.profile.inputs[7].Value())
	addr.Type = strings.TrimSpace(m.profile.inputs[8].Value())

	if addr.Name == "" || addr.AddressLine1 == "" || addr.City == "" {
		m.notice = errors.UserMessage(
			errors.NewValidationError("address", "name, address line 1, and city are required"), "")
		return m, nil
	}

	return m, msg.SaveAddress(m.client, m.gen, addr)
}

func (m *Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Profile"))
	b.WriteString("\n\n")

	if !m.profile.loaded {
		b.WriteString(styles.Muted.Render("Loading profile..."))
		return b.String()
	}

	switch m.profile.mode {
	case profileEditing:
		return m.viewProfileForm(&b, "Edit profile")
	case profilePassword:
		return m.viewProfileForm(&b, "Change password")
	case profileAddressForm:
		title := "New address"
		if m.profile.editing.ID != "" {
			title = "Edit address"
		}
		return m.viewProfileForm(&b, title)
	}

	p := m.profile.profile
	if p != nil {
		b.WriteString(styles.Text.Render(p.Name) + "\n")
		b.WriteString(styles.Muted.Render(p.Email) + "\n")
		if p.Phone != "" {
			b.WriteString(styles.Muted.Render(p.Phone) + "\n")
		}
		if p.Bio != "" {
			b.WriteString(styles.Subtitle.Render(p.Bio) + "\n")
		}
		if p.Address != "" {
			b.WriteString(styles.Muted.Render("Legacy address: "+p.Address) + "\n")
		}
	}

	b.WriteString("\n" + styles.Primary.Render("Address book"))
	b.WriteString("\n")
	if len(m.profile.addresses) == 0 {
		b.WriteString(styles.Muted.Render("  No saved addresses.") + "\n")
	}
	for i, addr := range m.profile.addresses {
		row := fmt.Sprintf("%s, %s %s", addr.Name, addr.AddressLine1, addr.City)
		if addr.Type != "" {
			row += " · " + addr.Type
		}
		if addr.IsDefault {
			row += styles.Secondary.Render(" (default)")
		}
		if i == m.profile.cursor {
			b.WriteString(styles.RowSelected.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("e")+" edit  "+
			styles.HelpKey.Render("P")+" password  "+
			styles.HelpKey.Render("a")+" new address  "+
			styles.HelpKey.Render("enter")+" edit address  "+
			styles.HelpKey.Render("d")+" make default  "+
			styles.HelpKey.Render("x")+" delete"))
	return b.String()
}

func (m *Model) viewProfileForm(b *strings.Builder, title string) string {
	b.WriteString(styles.Primary.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.profile.inputs {
		cursor := "  "
		if i == m.profile.focus {
			cursor = styles.Primary.Render("> ")
		}
		b.WriteString(cursor + input.View() + "\n")
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" save  "+
			styles.HelpKey.Render("esc")+" cancel"))
	return b.String()
}
