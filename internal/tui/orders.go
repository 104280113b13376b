package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

// Status filter cycle for the order history. PENDING and CANCELLED can
// appear on orders even though the admin console never assigns them.
var orderFilters = []string{"all", api.OrderPlaced, api.OrderProcessing, api.OrderShipped, api.OrderDelivered, api.OrderCancelled}

type ordersState struct {
	orders []api.Order
	filter int
	cursor int
	loaded bool
}

func newOrdersState() ordersState {
	return ordersState{}
}

func (m Model) updateOrders(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.OrdersLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.orders.orders = message.Orders
		m.orders.loaded = true
		m.orders.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch message.String() {
		case "j", "down":
			if m.orders.cursor < len(m.filteredOrders())-1 {
				m.orders.cursor++
			}
		case "k", "up":
			if m.orders.cursor > 0 {
				m.orders.cursor--
			}
		case "f":
			m.orders.filter = (m.orders.filter + 1) % len(orderFilters)
			m.orders.cursor = 0
		case "r":
			return m, msg.LoadOrders(m.client, m.gen)
		}
	}
	return m, nil
}

func (m *Model) filteredOrders() []api.Order {
	filter := orderFilters[m.orders.filter]
	if filter == "all" {
		return m.orders.orders
	}
	out := make([]api.Order, 0, len(m.orders.orders))
	for _, order := range m.orders.orders {
		if order.OrderStatus == filter {
			out = append(out, order)
		}
	}
	return out
}

func (m *Model) viewOrders() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Your orders"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("filter: " + orderFilters[m.orders.filter]))
	b.WriteString("\n\n")

	if !m.orders.loaded {
		b.WriteString(styles.Muted.Render("Loading orders..."))
		return b.String()
	}

	filtered := m.filteredOrders()
	if len(filtered) == 0 {
		if orderFilters[m.orders.filter] == "all" {
			b.WriteString(styles.Muted.Render("No orders yet. Your placed orders will show up here."))
		} else {
			b.WriteString(styles.Muted.Render("No orders with this status."))
		}
		return b.String()
	}

	for i, order := range filtered {
		row := fmt.Sprintf("%-26s %s  %-8s %10s  %s",
			truncate(order.ID, 26),
			order.CreatedAt.Format("2006-01-02"),
			order.PaymentMethod,
			fmt.Sprintf("$%.2f", order.TotalAmount),
			styles.StatusBadge(order.OrderStatus))
		if i == m.orders.cursor {
			b.WriteString(styles.RowSelected.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
		if i == m.orders.cursor {
			for _, item := range order.Items {
				b.WriteString(styles.Muted.Render(fmt.Sprintf("      %s x%d  $%.2f\n",
					truncate(item.Name, 32), item.Quantity, item.Price)))
			}
		}
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("f")+" filter status  "+
			styles.HelpKey.Render("r")+" refresh"))
	return b.String()
}
