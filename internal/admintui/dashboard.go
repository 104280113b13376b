package admintui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type dashboardState struct {
	dashboard *api.Dashboard
	loaded    bool
}

func (m Model) updateDashboard(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case dashboardLoadedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		m.dashboard.dashboard = message.dashboard
		m.dashboard.loaded = true
		return m, nil

	case tea.KeyMsg:
		if message.String() == "r" {
			return m, loadDashboard(m.client, m.gen)
		}
	}
	return m, nil
}

func (m *Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(styles.AdminTitle.Render("Dashboard"))
	b.WriteString("\n\n")

	if !m.dashboard.loaded {
		b.WriteString(styles.Muted.Render("Loading dashboard..."))
		return b.String()
	}

	d := m.dashboard.dashboard
	if d == nil {
		b.WriteString(styles.Muted.Render("No dashboard data."))
		return b.String()
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Revenue", fmt.Sprintf("$%.2f", d.Stats.TotalRevenue)),
		statCard("Users", fmt.Sprintf("%d", d.Stats.TotalUsers)),
		statCard("Orders", fmt.Sprintf("%d", d.Stats.TotalOrders)),
		statCard("Products", fmt.Sprintf("%d", d.Stats.TotalProducts)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(styles.Admin.Render("Recent orders"))
	b.WriteString("\n")
	if len(d.RecentOrders) == 0 {
		b.WriteString(styles.Muted.Render("  none") + "\n")
	}
	for _, order := range d.RecentOrders {
		customer := ""
		if order.User != nil {
			customer = order.User.Name
		}
		b.WriteString(fmt.Sprintf("  %-24s %-20s %10s  %s\n",
			truncate(order.ID, 24), truncate(customer, 20),
			fmt.Sprintf("$%.2f", order.TotalAmount),
			styles.StatusBadge(order.OrderStatus)))
	}

	b.WriteString("\n" + styles.Admin.Render("Recent users"))
	b.WriteString("\n")
	if len(d.RecentUsers) == 0 {
		b.WriteString(styles.Muted.Render("  none") + "\n")
	}
	for _, user := range d.RecentUsers {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", truncate(user.Name, 24), styles.Muted.Render(user.Email)))
	}

	b.WriteString(styles.HelpBar.Render(styles.HelpKey.Render("r") + " refresh"))
	return b.String()
}

func statCard(label, value string) string {
	return styles.StatCard.Render(
		styles.Muted.Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
}
