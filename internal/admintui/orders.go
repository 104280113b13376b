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

type ordersState struct {
	items     *list.List[api.Order]
	cursor    int
	searching bool
	search    textinput.Model
	loaded    bool

	// Status-change modal state. statusCursor indexes AdminOrderStatuses.
	picking      bool
	pickingOrder api.Order
	statusCursor int
}

func (m Model) updateOrders(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case ordersLoadedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		m.orders.items.SetItems(message.orders)
		m.orders.loaded = true
		m.orders.cursor = 0
		return m, nil

	case orderStatusChangedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		// Patch only on confirmed success.
		for _, order := range m.orders.items.Matching() {
			if order.ID == message.id {
				order.OrderStatus = message.status
				m.orders.items.ReplaceByID(message.id, order)
				break
			}
		}
		m.orders.picking = false
		m.notice = styles.SuccessNotice.Render("Order status updated")
		return m, nil

	case tea.KeyMsg:
		if m.orders.picking {
			return m.handleStatusPickerKey(message)
		}
		if m.orders.searching {
			return m.updateOrderSearch(message)
		}
		return m.handleOrdersKey(message)
	}
	return m, nil
}

func (m Model) updateOrderSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.orders.searching = false
		m.orders.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.orders.search, cmd = m.orders.search.Update(key)
	m.orders.items.SetSearch(m.orders.search.Value())
	m.orders.cursor = 0
	return m, cmd
}

func (m Model) handleOrdersKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "/":
		if m.orders.search.Placeholder == "" {
			m.orders.search = textinput.New()
			m.orders.search.Placeholder = "search id, customer, email"
			m.orders.search.CharLimit = 80
		}
		m.orders.searching = true
		m.orders.search.Focus()
	case "j", "down":
		if m.orders.cursor < len(m.orders.items.Visible())-1 {
			m.orders.cursor++
		}
	case "k", "up":
		if m.orders.cursor > 0 {
			m.orders.cursor--
		}
	case "n", "right":
		m.orders.items.NextPage()
		m.orders.cursor = 0
	case "p", "left":
		m.orders.items.PrevPage()
		m.orders.cursor = 0
	case "f":
		m.orders.items.SetFilter(nextOrderFilter(m.orders.items.Filter()))
		m.orders.cursor = 0
	case "enter", "s":
		if order, ok := m.selectedAdminOrder(); ok {
			m.orders.picking = true
			m.orders.pickingOrder = order
			m.orders.statusCursor = statusIndex(order.OrderStatus)
		}
	case "r":
		return m, loadOrders(m.client, m.gen)
	}
	return m, nil
}

func (m Model) handleStatusPickerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		if m.orders.statusCursor < len(api.AdminOrderStatuses)-1 {
			m.orders.statusCursor++
		}
	case "k", "up":
		if m.orders.statusCursor > 0 {
			m.orders.statusCursor--
		}
	case "enter":
		status := api.AdminOrderStatuses[m.orders.statusCursor]
		return m, updateOrderStatus(m.client, m.gen, m.orders.pickingOrder.ID, status)
	case "esc":
		m.orders.picking = false
	}
	return m, nil
}

func (m *Model) selectedAdminOrder() (api.Order, bool) {
	visible := m.orders.items.Visible()
	if m.orders.cursor >= len(visible) {
		return api.Order{}, false
	}
	return visible[m.orders.cursor], true
}

func statusIndex(status string) int {
	for i, s := range api.AdminOrderStatuses {
		if s == status {
			return i
		}
	}
	return 0
}

// Order status filter cycle for the admin table.
var adminOrderFilters = []string{list.FilterAll, api.OrderPlaced, api.OrderProcessing, api.OrderShipped, api.OrderDelivered}

func nextOrderFilter(current string) string {
	for i, f := range adminOrderFilters {
		if f == current {
			return adminOrderFilters[(i+1)%len(adminOrderFilters)]
		}
	}
	return list.FilterAll
}

// paidRevenue sums the totals of orders whose payment has settled, over
// the full snapshot regardless of search and filter.
func (m *Model) paidRevenue() float64 {
	var total float64
	for _, order := range m.orders.items.All() {
		if order.PaymentStatus == api.PaymentPaid {
			total += order.TotalAmount
		}
	}
	return total
}

func (m *Model) viewOrders() string {
	var b strings.Builder
	b.WriteString(styles.AdminTitle.Render("Orders"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("status: %s · paid revenue $%.2f",
		m.orders.items.Filter(), m.paidRevenue())))
	b.WriteString("\n")
	if m.orders.searching || m.orders.search.Value() != "" {
		b.WriteString(m.orders.search.View() + "\n")
	}
	b.WriteString("\n")

	if !m.orders.loaded {
		b.WriteString(styles.Muted.Render("Loading orders..."))
		return b.String()
	}

	if m.orders.picking {
		return m.viewStatusPicker(&b)
	}

	visible := m.orders.items.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("No orders match."))
		return b.String()
	}

	for i, order := range visible {
		customer, email := "", ""
		if order.User != nil {
			customer, email = order.User.Name, order.User.Email
		}
		row := fmt.Sprintf("%-22s %-18s %-24s %10s  %-6s %s",
			truncate(order.ID, 22), truncate(customer, 18), truncate(email, 24),
			fmt.Sprintf("$%.2f", order.TotalAmount), order.PaymentMethod,
			styles.StatusBadge(order.OrderStatus))
		if i == m.orders.cursor {
			b.WriteString(styles.RowSelected.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("\npage %d/%d · %d orders",
		m.orders.items.Page(), m.orders.items.TotalPages(), m.orders.items.MatchCount())))
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("/")+" search  "+
			styles.HelpKey.Render("f")+" filter  "+
			styles.HelpKey.Render("enter")+" change status  "+
			styles.HelpKey.Render("r")+" refresh"))
	return b.String()
}

func (m *Model) viewStatusPicker(b *strings.Builder) string {
	var modal strings.Builder
	modal.WriteString("Set status for " + truncate(m.orders.pickingOrder.ID, 24) + "\n\n")
	for i, status := range api.AdminOrderStatuses {
		if i == m.orders.statusCursor {
			modal.WriteString(styles.RowSelected.Render("> "+status) + "\n")
		} else {
			modal.WriteString("  " + status + "\n")
		}
	}
	modal.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" apply  "+
			styles.HelpKey.Render("esc")+" cancel"))
	b.WriteString(styles.ModalBox.Render(modal.String()))
	return b.String()
}
