package admintui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/list"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type productsState struct {
	items     *list.List[api.Product]
	cursor    int
	searching bool
	search    textinput.Model
	loaded    bool
}

func (m Model) updateProducts(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case productsLoadedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		m.products.items.SetItems(message.products)
		m.products.loaded = true
		m.products.cursor = 0
		return m, nil

	case productDeletedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		// Patch the local snapshot only after the server confirmed.
		m.products.items.RemoveByID(message.id)
		m.notice = styles.SuccessNotice.Render("Product deleted")
		return m, nil

	case productSavedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		if message.created {
			m.notice = styles.SuccessNotice.Render("Product created")
			return m, loadProducts(m.client, m.gen)
		}
		if message.product != nil {
			m.products.items.ReplaceByID(message.product.ID, *message.product)
		}
		m.notice = styles.SuccessNotice.Render("Product saved")
		return m, nil

	case tea.KeyMsg:
		if m.products.searching {
			return m.updateProductSearch(message)
		}
		return m.handleProductsKey(message)
	}
	return m, nil
}

func (m Model) updateProductSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.products.searching = false
		m.products.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.products.search, cmd = m.products.search.Update(key)
	m.products.items.SetSearch(m.products.search.Value())
	m.products.cursor = 0
	return m, cmd
}

func (m Model) handleProductsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "/":
		if m.products.search.Placeholder == "" {
			m.products.search = textinput.New()
			m.products.search.Placeholder = "search name or description"
			m.products.search.CharLimit = 80
		}
		m.products.searching = true
		m.products.search.Focus()
		return m, nil
	case "j", "down":
		if m.products.cursor < len(m.products.items.Visible())-1 {
			m.products.cursor++
		}
	case "k", "up":
		if m.products.cursor > 0 {
			m.products.cursor--
		}
	case "n", "right":
		m.products.items.NextPage()
		m.products.cursor = 0
	case "p", "left":
		m.products.items.PrevPage()
		m.products.cursor = 0
	case "c":
		m.products.items.SetFilter(nextProductFilter(m.products.items.Filter()))
		m.products.cursor = 0
	case "a":
		m.startProductForm(nil)
		return m, m.enterProductForm()
	case "enter", "e":
		if p, ok := m.selectedAdminProduct(); ok {
			m.startProductForm(&p)
			return m, m.enterProductForm()
		}
	case "x", "delete":
		if p, ok := m.selectedAdminProduct(); ok {
			m.confirm = confirm{
				active:  true,
				prompt:  fmt.Sprintf("Delete %q? This cannot be undone.", p.Name),
				pending: deleteProduct(m.client, m.gen, p.ID),
			}
		}
	}
	return m, nil
}

func (m *Model) selectedAdminProduct() (api.Product, bool) {
	visible := m.products.items.Visible()
	if m.products.cursor >= len(visible) {
		return api.Product{}, false
	}
	return visible[m.products.cursor], true
}

func nextProductFilter(current string) string {
	if current == list.FilterAll {
		return api.Categories[0]
	}
	for i, c := range api.Categories {
		if c == current {
			if i == len(api.Categories)-1 {
				return list.FilterAll
			}
			return api.Categories[i+1]
		}
	}
	return list.FilterAll
}

func (m *Model) viewProducts() string {
	var b strings.Builder
	b.WriteString(styles.AdminTitle.Render("Products"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("category: " + m.products.items.Filter()))
	b.WriteString("\n")
	if m.products.searching || m.products.search.Value() != "" {
		b.WriteString(m.products.search.View() + "\n")
	}
	b.WriteString("\n")

	if !m.products.loaded {
		b.WriteString(styles.Muted.Render("Loading products..."))
		return b.String()
	}

	visible := m.products.items.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("No products match."))
		return b.String()
	}

	for i, p := range visible {
		stock := styles.Secondary.Render(fmt.Sprintf("stock %d", p.Stock))
		if p.Stock == 0 {
			stock = styles.Error.Render("out of stock")
		} else if p.Stock < 5 {
			stock = styles.Warning.Render(fmt.Sprintf("low %d", p.Stock))
		}
		row := fmt.Sprintf("%-32s %-16s %10s  %s",
			truncate(p.Name, 32), truncate(p.Category, 16),
			fmt.Sprintf("$%.2f", p.Price), stock)
		if i == m.products.cursor {
			b.WriteString(styles.RowSelected.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("\npage %d/%d · %d products",
		m.products.items.Page(), m.products.items.TotalPages(), m.products.items.MatchCount())))
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("/")+" search  "+
			styles.HelpKey.Render("c")+" category  "+
			styles.HelpKey.Render("a")+" add  "+
			styles.HelpKey.Render("e")+" edit  "+
			styles.HelpKey.Render("x")+" delete"))
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
