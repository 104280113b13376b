package admintui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
)

func loadDashboard(client *api.AdminClient, g gen) tea.Cmd {
	return func() tea.Msg {
		dashboard, err := client.DashboardStats(context.Background())
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return dashboardLoadedMsg{gen: g, dashboard: dashboard}
	}
}

func loadProducts(client *api.AdminClient, g gen) tea.Cmd {
	return func() tea.Msg {
		products, err := client.Products(context.Background())
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return productsLoadedMsg{gen: g, products: products}
	}
}

func saveProduct(client *api.AdminClient, g gen, id string, form api.ProductForm) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			product, err := client.CreateProduct(ctx, form)
			if err != nil {
				return errMsg{gen: g, err: err}
			}
			return productSavedMsg{gen: g, product: product, created: true}
		}
		product, err := client.UpdateProduct(ctx, id, form)
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return productSavedMsg{gen: g, product: product}
	}
}

func deleteProduct(client *api.AdminClient, g gen, id string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteProduct(context.Background(), id); err != nil {
			return errMsg{gen: g, err: err}
		}
		return productDeletedMsg{gen: g, id: id}
	}
}

func loadOrders(client *api.AdminClient, g gen) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.Orders(context.Background())
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return ordersLoadedMsg{gen: g, orders: orders}
	}
}

func updateOrderStatus(client *api.AdminClient, g gen, id, status string) tea.Cmd {
	return func() tea.Msg {
		if err := client.UpdateOrderStatus(context.Background(), id, status); err != nil {
			return errMsg{gen: g, err: err}
		}
		return orderStatusChangedMsg{gen: g, id: id, status: status}
	}
}

func loadUsers(client *api.AdminClient, g gen) tea.Cmd {
	return func() tea.Msg {
		users, err := client.Users(context.Background())
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return usersLoadedMsg{gen: g, users: users}
	}
}

func loadUserStats(client *api.AdminClient, g gen) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.UserStats(context.Background())
		if err != nil {
			return errMsg{gen: g, err: err}
		}
		return userStatsLoadedMsg{gen: g, stats: stats}
	}
}

func setUserBlocked(client *api.AdminClient, g gen, id string, blocked bool) tea.Cmd {
	return func() tea.Msg {
		if err := client.SetUserBlocked(context.Background(), id, blocked); err != nil {
			return errMsg{gen: g, err: err}
		}
		return userBlockToggledMsg{gen: g, id: id, blocked: blocked}
	}
}
