package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type wishlistState struct {
	products []api.Product
	cursor   int
	loaded   bool
}

func (m Model) updateWishlist(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.WishlistLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.wishlist.products = message.Products
		m.wishlist.loaded = true
		if m.wishlist.cursor >= len(m.wishlist.products) && m.wishlist.cursor > 0 {
			m.wishlist.cursor = len(m.wishlist.products) - 1
		}
		return m, nil

	case msg.WishlistChangedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		return m, msg.LoadWishlist(m.client, m.gen)

	case tea.KeyMsg:
		switch message.String() {
		case "j", "down":
			if m.wishlist.cursor < len(m.wishlist.products)-1 {
				m.wishlist.cursor++
			}
		case "k", "up":
			if m.wishlist.cursor > 0 {
				m.wishlist.cursor--
			}
		case "x", "delete":
			if p, ok := m.selectedWishlistProduct(); ok {
				return m, msg.RemoveFromWishlist(m.client, m.gen, p.ID)
			}
		case "a", "enter":
			if p, ok := m.selectedWishlistProduct(); ok {
				return m, msg.MoveToCart(m.client, m.gen, p.ID)
			}
		}
	}
	return m, nil
}

func (m *Model) selectedWishlistProduct() (api.Product, bool) {
	if m.wishlist.cursor >= len(m.wishlist.products) {
		return api.Product{}, false
	}
	return m.wishlist.products[m.wishlist.cursor], true
}

func (m *Model) viewWishlist() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Wishlist"))
	b.WriteString("\n\n")

	if !m.wishlist.loaded {
		b.WriteString(styles.Muted.Render("Loading wishlist..."))
		return b.String()
	}
	if len(m.wishlist.products) == 0 {
		b.WriteString(styles.Muted.Render("Nothing saved yet."))
		return b.String()
	}

	for i, p := range m.wishlist.products {
		row := fmt.Sprintf("%-36s %-16s %8s", truncate(p.Name, 36), truncate(p.Category, 16),
			fmt.Sprintf("$%.2f", p.Price))
		if i == m.wishlist.cursor {
			b.WriteString(styles.RowSelected.Render("> " + row))
		} else {
			b.WriteString(styles.RowNormal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" move to cart  "+
			styles.HelpKey.Render("x")+" remove"))
	return b.String()
}
