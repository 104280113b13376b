// Package tui implements the storefront terminal UI: catalog browsing,
// cart, wishlist, checkout, orders, and profile management over the
// backend API. It follows the Model/Update/View split: the Model owns all
// state, Update routes messages, and the view package renders.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/checkout"
	"github.com/lmoreno/toyhaven/internal/checkout/paypal"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/logging"
	"github.com/lmoreno/toyhaven/internal/session"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
)

// screen identifies the active storefront screen.
type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenProducts
	screenProductDetail
	screenCart
	screenWishlist
	screenCheckout
	screenOrders
	screenProfile
)

// protectedScreens require a logged-in session; navigation to one while
// logged out redirects to login.
var protectedScreens = map[screen]bool{
	screenCart:     true,
	screenWishlist: true,
	screenCheckout: true,
	screenOrders:   true,
	screenProfile:  true,
}

// Model holds the storefront TUI state.
type Model struct {
	client  *api.Client
	session *session.Session
	cfg     *config.Config
	logger  *logging.Logger

	screen screen
	gen    msg.Gen
	width  int
	height int
	notice string
	quitting bool

	login    loginState
	register registerState
	products productsState
	detail   detailState
	cart     cartState
	wishlist wishlistState
	checkout checkoutState
	orders   ordersState
	profile  profileState
}

// NewModel creates the storefront model. The session should already be
// restored; the starting screen is Products when logged in, Login
// otherwise.
func NewModel(client *api.Client, sess *session.Session, cfg *config.Config, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}

	m := Model{
		client:  client,
		session: sess,
		cfg:     cfg,
		logger:  logger.WithScreen("storefront"),
		screen:  screenLogin,
	}

	m.login = newLoginState()
	m.register = newRegisterState()
	m.products = newProductsState(cfg.TUI.PageSize)
	m.orders = newOrdersState()
	m.profile = newProfileState()
	m.checkout = checkoutState{
		orch: checkout.New(client, cfg, logger),
		flow: paypal.NewFlow(client, cfg.PayPal, logger),
	}

	if sess.LoggedIn() {
		m.screen = screenProducts
	}
	return m
}

// Init starts the first fetch for the opening screen.
func (m Model) Init() tea.Cmd {
	if m.screen == screenProducts {
		return msg.LoadProducts(m.client, m.gen, "")
	}
	return nil
}

// stale reports whether a message belongs to a screen generation the user
// already navigated away from.
func (m *Model) stale(g msg.Gen) bool {
	return g != m.gen
}

// navigate switches screens, bumping the generation so in-flight fetches
// for the old screen are dropped, and returns the new screen's entry
// fetch. Protected screens redirect to login when the session is empty.
func (m *Model) navigate(to screen) tea.Cmd {
	if protectedScreens[to] && !m.session.LoggedIn() {
		m.logger.Debug("route guard redirect", "to", int(to))
		to = screenLogin
	}

	m.screen = to
	m.gen++
	m.notice = ""

	switch to {
	case screenLogin:
		m.login = newLoginState()
		return nil
	case screenRegister:
		m.register = newRegisterState()
		return nil
	case screenProducts:
		return msg.LoadProducts(m.client, m.gen, m.products.category)
	case screenProductDetail:
		return msg.LoadProduct(m.client, m.gen, m.detail.productID)
	case screenCart:
		return msg.LoadCart(m.client, m.gen)
	case screenWishlist:
		return msg.LoadWishlist(m.client, m.gen)
	case screenCheckout:
		return m.enterCheckout()
	case screenOrders:
		return msg.LoadOrders(m.client, m.gen)
	case screenProfile:
		return m.enterProfile()
	}
	return nil
}
