package tui

import (
	"strings"

	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

var tabs = []struct {
	label  string
	target screen
}{
	{"1 Toys", screenProducts},
	{"2 Cart", screenCart},
	{"3 Wishlist", screenWishlist},
	{"4 Orders", screenOrders},
	{"5 Profile", screenProfile},
}

// View renders the header tabs, the active screen, and the notice line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for _, tab := range tabs {
		active := tab.target == m.screen ||
			(tab.target == screenProducts && m.screen == screenProductDetail) ||
			(tab.target == screenCart && m.screen == screenCheckout)
		if active {
			b.WriteString(styles.TabActive.Render(tab.label))
		} else {
			b.WriteString(styles.TabInactive.Render(tab.label))
		}
	}
	if user := m.session.Current(); user != nil {
		b.WriteString(styles.Muted.Render("  " + user.Email))
	} else {
		b.WriteString(styles.Muted.Render("  guest"))
	}
	b.WriteString("\n\n")

	switch m.screen {
	case screenLogin:
		b.WriteString(m.viewLogin())
	case screenRegister:
		b.WriteString(m.viewRegister())
	case screenProducts:
		b.WriteString(m.viewProducts())
	case screenProductDetail:
		b.WriteString(m.viewDetail())
	case screenCart:
		b.WriteString(m.viewCart())
	case screenWishlist:
		b.WriteString(m.viewWishlist())
	case screenCheckout:
		b.WriteString(m.viewCheckout())
	case screenOrders:
		b.WriteString(m.viewOrders())
	case screenProfile:
		b.WriteString(m.viewProfile())
	}

	if m.notice != "" {
		b.WriteString("\n\n" + m.notice)
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("1-5")+" screens  "+
			styles.HelpKey.Render("L")+" log in/out  "+
			styles.HelpKey.Render("q")+" quit"))
	return b.String()
}
