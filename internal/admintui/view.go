package admintui

import (
	"strings"

	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

var tabs = []struct {
	label  string
	target screen
}{
	{"1 Dashboard", screenDashboard},
	{"2 Products", screenProducts},
	{"3 Orders", screenOrders},
	{"4 Users", screenUsers},
}

// View renders the header, the active screen, and any confirm modal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for _, tab := range tabs {
		active := tab.target == m.screen ||
			(tab.target == screenProducts && m.screen == screenProductForm)
		if active {
			b.WriteString(styles.TabActive.Render(tab.label))
		} else {
			b.WriteString(styles.TabInactive.Render(tab.label))
		}
	}
	if admin := m.session.Current(); admin != nil {
		b.WriteString(styles.Admin.Render("  " + admin.Email))
	}
	b.WriteString("\n\n")

	if m.confirm.active {
		modal := m.confirm.prompt + "\n\n" +
			styles.HelpKey.Render("y") + " confirm  " +
			styles.HelpKey.Render("n") + " cancel"
		b.WriteString(styles.ModalBox.Render(modal))
		return b.String()
	}

	switch m.screen {
	case screenLogin:
		b.WriteString(m.viewLogin())
	case screenDashboard:
		b.WriteString(m.viewDashboard())
	case screenProducts:
		b.WriteString(m.viewProducts())
	case screenProductForm:
		b.WriteString(m.viewProductForm())
	case screenOrders:
		b.WriteString(m.viewOrders())
	case screenUsers:
		b.WriteString(m.viewUsers())
	}

	if m.notice != "" {
		b.WriteString("\n\n" + m.notice)
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("1-4")+" screens  "+
			styles.HelpKey.Render("L")+" log out  "+
			styles.HelpKey.Render("q")+" quit"))
	return b.String()
}
