package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type cartState struct {
	lines  []api.CartLine
	cursor int
	loaded bool
}

func (m Model) updateCart(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.CartLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.cart.lines = message.Cart
		m.cart.loaded = true
		if m.cart.cursor >= len(m.cart.lines) && m.cart.cursor > 0 {
			m.cart.cursor = len(m.cart.lines) - 1
		}
		return m, nil

	case msg.CartChangedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		return m, msg.LoadCart(m.client, m.gen)

	case tea.KeyMsg:
		return m.handleCartKey(message)
	}
	return m, nil
}

func (m Model) handleCartKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	line, hasLine := m.selectedCartLine()

	switch key.String() {
	case "j", "down":
		if m.cart.cursor < len(m.cart.lines)-1 {
			m.cart.cursor++
		}
	case "k", "up":
		if m.cart.cursor > 0 {
			m.cart.cursor--
		}
	case "+", "l", "right":
		if hasLine && line.Product != nil {
			return m, msg.UpdateCartItem(m.client, m.gen, line.Product.ID, line.Quantity+1)
		}
	case "-", "h", "left":
		if hasLine && line.Product != nil {
			// Decrementing below one removes the line.
			if line.Quantity <= 1 {
				return m, msg.RemoveFromCart(m.client, m.gen, line.Product.ID)
			}
			return m, msg.UpdateCartItem(m.client, m.gen, line.Product.ID, line.Quantity-1)
		}
	case "x", "delete":
		if hasLine && line.Product != nil {
			return m, msg.RemoveFromCart(m.client, m.gen, line.Product.ID)
		}
	case "C", "enter":
		if len(m.cart.lines) > 0 {
			return m, m.navigate(screenCheckout)
		}
	}
	return m, nil
}

func (m *Model) selectedCartLine() (api.CartLine, bool) {
	if m.cart.cursor >= len(m.cart.lines) {
		return api.CartLine{}, false
	}
	return m.cart.lines[m.cart.cursor], true
}

// cartTotals mirrors the checkout computation for the cart footer: lines
// with a missing product contribute nothing, shipping applies only to
// non-empty totals.
func (m *Model) cartTotals() (subtotal, shipping, grand float64) {
	for _, line := range m.cart.lines {
		if line.Product == nil {
			continue
		}
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	if subtotal > 0 {
		shipping = m.cfg.Checkout.ShippingFee
	}
	return subtotal, shipping, subtotal + shipping
}

func (m *Model) viewCart() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Cart"))
	b.WriteString("\n\n")

	if !m.cart.loaded {
		b.WriteString(styles.Muted.Render("Loading cart..."))
		return b.String()
	}
	if len(m.cart.lines) == 0 {
		b.WriteString(styles.Muted.Render("Your cart is empty. Browse the catalog to add toys."))
		return b.String()
	}

	for i, line := range m.cart.lines {
		name, price := "(unavailable)", 0.0
		if line.Product != nil {
			name, price = line.Product.Name, line.Product.Price
		}
		row := fmt.Sprintf("%-36s x%-3d %10s", truncate(name, 36), line.Quantity,
			fmt.Sprintf("$%.2f", price*float64(line.Quantity)))
		if i == m.cart.cursor {
			b.WriteString(styles.RowSelected.Render("> " + row))
		} else {
			b.WriteString(styles.RowNormal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	subtotal, shipping, grand := m.cartTotals()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Subtotal  %s\n", styles.Price.Render(fmt.Sprintf("$%.2f", subtotal))))
	b.WriteString(fmt.Sprintf("  Shipping  %s\n", styles.Price.Render(fmt.Sprintf("$%.2f", shipping))))
	b.WriteString(fmt.Sprintf("  Total     %s\n", styles.Price.Render(fmt.Sprintf("$%.2f", grand))))

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("+/-")+" quantity  "+
			styles.HelpKey.Render("x")+" remove  "+
			styles.HelpKey.Render("enter")+" checkout"))
	return b.String()
}
