// Package admintui implements the admin console terminal UI: dashboard,
// product management, order management, and user management over the
// admin API. Structure mirrors the storefront TUI: the Model owns all
// state, Update routes messages, per-screen files hold the handlers.
package admintui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/list"
	"github.com/lmoreno/toyhaven/internal/logging"
	"github.com/lmoreno/toyhaven/internal/session"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenProducts
	screenProductForm
	screenOrders
	screenUsers
)

// confirm is a blocking modal. While active it swallows all input except
// y/n; the pending command runs only on confirmation.
type confirm struct {
	active  bool
	prompt  string
	pending tea.Cmd
}

// Model holds the admin console state.
type Model struct {
	client  *api.AdminClient
	session *session.AdminSession
	cfg     *config.Config
	logger  *logging.Logger

	screen  screen
	gen     gen
	width   int
	height  int
	notice  string
	quitting bool
	confirm confirm

	login     loginState
	dashboard dashboardState
	products  productsState
	form      productFormState
	orders    ordersState
	users     usersState
}

// NewModel creates the admin model. Without a restored admin session the
// console opens on login; there is no guest mode.
func NewModel(client *api.AdminClient, sess *session.AdminSession, cfg *config.Config, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}

	m := Model{
		client:  client,
		session: sess,
		cfg:     cfg,
		logger:  logger.WithScreen("admin"),
		screen:  screenLogin,
	}

	m.login = newLoginState()
	m.products = newAdminProductsState(cfg.TUI.PageSize)
	m.orders = newAdminOrdersState(cfg.TUI.PageSize)
	m.users = newAdminUsersState(cfg.TUI.PageSize)

	if sess.LoggedIn() {
		m.screen = screenDashboard
	}
	return m
}

// Init starts the dashboard fetch when a session was restored.
func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return loadDashboard(m.client, m.gen)
	}
	return nil
}

func (m *Model) stale(g gen) bool {
	return g != m.gen
}

// navigate switches screens with the generation bump. Everything except
// login requires an admin session.
func (m *Model) navigate(to screen) tea.Cmd {
	if to != screenLogin && !m.session.LoggedIn() {
		to = screenLogin
	}

	m.screen = to
	m.gen++
	m.notice = ""
	m.confirm = confirm{}

	switch to {
	case screenLogin:
		m.login = newLoginState()
		return nil
	case screenDashboard:
		return loadDashboard(m.client, m.gen)
	case screenProducts:
		return loadProducts(m.client, m.gen)
	case screenOrders:
		return loadOrders(m.client, m.gen)
	case screenUsers:
		return tea.Batch(loadUsers(m.client, m.gen), loadUserStats(m.client, m.gen))
	}
	return nil
}

// newAdminProductsState builds the products table browse model: search
// over name and description, category equality filter.
func newAdminProductsState(pageSize int) productsState {
	items := list.New(pageSize,
		func(p api.Product) string { return p.ID },
		func(p api.Product) string { return p.Name },
		func(p api.Product) string { return p.Description },
	)
	items.SetFilterField(func(p api.Product) string { return p.Category })
	return productsState{items: items}
}

// newAdminOrdersState: search over id, customer name, customer email;
// status equality filter.
func newAdminOrdersState(pageSize int) ordersState {
	items := list.New(pageSize,
		func(o api.Order) string { return o.ID },
		func(o api.Order) string { return o.ID },
		func(o api.Order) string {
			if o.User == nil {
				return ""
			}
			return o.User.Name
		},
		func(o api.Order) string {
			if o.User == nil {
				return ""
			}
			return o.User.Email
		},
	)
	items.SetFilterField(func(o api.Order) string { return o.OrderStatus })
	return ordersState{items: items}
}

// newAdminUsersState: search over name and email; the all/active/blocked
// filter maps onto the blocked flag.
func newAdminUsersState(pageSize int) usersState {
	items := list.New(pageSize,
		func(u api.AdminUser) string { return u.ID },
		func(u api.AdminUser) string { return u.Name },
		func(u api.AdminUser) string { return u.Email },
	)
	items.SetFilterField(func(u api.AdminUser) string {
		if u.IsBlocked {
			return "blocked"
		}
		return "active"
	})
	return usersState{items: items}
}
