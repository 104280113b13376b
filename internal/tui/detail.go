package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type detailState struct {
	productID string
	product   *api.Product
	quantity  int
}

func (m Model) updateDetail(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.ProductLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.detail.product = message.Product
		m.detail.quantity = 1
		return m, nil

	case msg.CartChangedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.notice = styles.SuccessNotice.Render("Added to cart")
		return m, nil

	case msg.WishlistChangedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.notice = styles.SuccessNotice.Render("Saved to wishlist")
		return m, nil

	case tea.KeyMsg:
		switch message.String() {
		case "esc", "backspace":
			return m, m.navigate(screenProducts)
		case "+", "l", "right":
			if m.detail.product != nil && m.detail.quantity < m.detail.product.Stock {
				m.detail.quantity++
			}
			return m, nil
		case "-", "h", "left":
			if m.detail.quantity > 1 {
				m.detail.quantity--
			}
			return m, nil
		case "a", "enter":
			if m.detail.product == nil {
				return m, nil
			}
			if !m.session.LoggedIn() {
				return m, m.navigate(screenLogin)
			}
			return m, msg.AddToCart(m.client, m.gen, m.detail.product.ID, m.detail.quantity)
		case "w":
			if m.detail.product == nil {
				return m, nil
			}
			if !m.session.LoggedIn() {
				return m, m.navigate(screenLogin)
			}
			return m, msg.AddToWishlist(m.client, m.gen, m.detail.product.ID)
		}
	}
	return m, nil
}

func (m *Model) viewDetail() string {
	p := m.detail.product
	if p == nil {
		return styles.Muted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(p.Category))
	b.WriteString("\n\n")
	if p.Description != "" {
		b.WriteString(styles.Text.Render(p.Description))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.Price.Render(fmt.Sprintf("$%.2f", p.Price)))
	b.WriteString("\n")
	if p.Stock > 0 {
		b.WriteString(styles.Secondary.Render(fmt.Sprintf("%d in stock", p.Stock)))
	} else {
		b.WriteString(styles.Error.Render("Out of stock"))
	}
	if p.Image != "" {
		b.WriteString("\n" + styles.Muted.Render(m.client.ImageURL(p.Image)))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Quantity: %s", styles.Primary.Render(fmt.Sprintf("%d", m.detail.quantity))))
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("+/-")+" quantity  "+
			styles.HelpKey.Render("a")+" add to cart  "+
			styles.HelpKey.Render("w")+" wishlist  "+
			styles.HelpKey.Render("esc")+" back"))
	return b.String()
}
