package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/list"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

// Price sort orders for the catalog.
const (
	sortNone = iota
	sortPriceAsc
	sortPriceDesc
)

type productsState struct {
	items     *list.List[api.Product]
	cursor    int
	category  string // "" means all categories
	sortOrder int
	searching bool
	search    textinput.Model
	loaded    bool
}

func newProductsState(pageSize int) productsState {
	items := list.New(pageSize,
		func(p api.Product) string { return p.ID },
		func(p api.Product) string { return p.Name },
		func(p api.Product) string { return p.Description },
	)
	items.SetFilterField(func(p api.Product) string { return p.Category })

	search := textinput.New()
	search.Placeholder = "search toys"
	search.CharLimit = 80

	return productsState{items: items, search: search}
}

func (m Model) updateProducts(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.ProductsLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.products.loaded = true
		m.products.applySort(message.Products)
		m.products.cursor = 0
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
		m.products.searching = true
		m.products.search.Focus()
		return m, nil
	case "j", "down":
		if m.products.cursor < len(m.products.items.Visible())-1 {
			m.products.cursor++
		}
		return m, nil
	case "k", "up":
		if m.products.cursor > 0 {
			m.products.cursor--
		}
		return m, nil
	case "n", "right":
		m.products.items.NextPage()
		m.products.cursor = 0
		return m, nil
	case "p", "left":
		m.products.items.PrevPage()
		m.products.cursor = 0
		return m, nil
	case "c":
		// Cycle category: all -> each category -> all. The category is a
		// server-side query, so refetch.
		m.products.category = nextCategory(m.products.category)
		m.gen++
		return m, msg.LoadProducts(m.client, m.gen, m.products.category)
	case "s":
		m.products.sortOrder = (m.products.sortOrder + 1) % 3
		// Sort the full snapshot; an active search narrows the view only.
		m.products.applySort(m.products.items.All())
		return m, nil
	case "a":
		if p, ok := m.selectedProduct(); ok {
			if !m.session.LoggedIn() {
				return m, m.navigate(screenLogin)
			}
			return m, msg.AddToCart(m.client, m.gen, p.ID, 1)
		}
		return m, nil
	case "w":
		if p, ok := m.selectedProduct(); ok {
			if !m.session.LoggedIn() {
				return m, m.navigate(screenLogin)
			}
			return m, msg.AddToWishlist(m.client, m.gen, p.ID)
		}
		return m, nil
	case "enter":
		if p, ok := m.selectedProduct(); ok {
			m.detail = detailState{productID: p.ID}
			return m, m.navigate(screenProductDetail)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) selectedProduct() (api.Product, bool) {
	visible := m.products.items.Visible()
	if m.products.cursor >= len(visible) {
		return api.Product{}, false
	}
	return visible[m.products.cursor], true
}

// applySort reorders the snapshot by price when a sort is active, then
// reinstalls it. sortNone keeps server order.
func (s *productsState) applySort(products []api.Product) {
	sorted := make([]api.Product, len(products))
	copy(sorted, products)
	switch s.sortOrder {
	case sortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case sortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}
	s.items.SetItems(sorted)
}

func nextCategory(current string) string {
	if current == "" {
		return api.Categories[0]
	}
	for i, c := range api.Categories {
		if c == current {
			if i == len(api.Categories)-1 {
				return ""
			}
			return api.Categories[i+1]
		}
	}
	return ""
}

func (m *Model) viewProducts() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Toys"))
	b.WriteString("\n")

	category := m.products.category
	if category == "" {
		category = "all categories"
	}
	sortLabel := [...]string{"featured", "price low-high", "price high-low"}[m.products.sortOrder]
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s · %s", category, sortLabel)))
	b.WriteString("\n")

	if m.products.searching || m.products.search.Value() != "" {
		b.WriteString(m.products.search.View() + "\n")
	}
	b.WriteString("\n")

	if !m.products.loaded {
		b.WriteString(styles.Muted.Render("Loading catalog..."))
		return b.String()
	}

	visible := m.products.items.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("No toys match."))
		return b.String()
	}

	for i, p := range visible {
		row := fmt.Sprintf("%-36s %-16s %8s  stock %d",
			truncate(p.Name, 36), truncate(p.Category, 16),
			fmt.Sprintf("$%.2f", p.Price), p.Stock)
		if i == m.products.cursor {
			b.WriteString(styles.RowSelected.Render("> " + row))
		} else {
			b.WriteString(styles.RowNormal.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("\npage %d/%d · %d toys",
		m.products.items.Page(), m.products.items.TotalPages(), m.products.items.MatchCount())))
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("/")+" search  "+
			styles.HelpKey.Render("c")+" category  "+
			styles.HelpKey.Render("s")+" sort  "+
			styles.HelpKey.Render("a")+" add to cart  "+
			styles.HelpKey.Render("w")+" wishlist  "+
			styles.HelpKey.Render("enter")+" details"))
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
