package admintui

import "github.com/lmoreno/toyhaven/internal/api"

// gen tags messages with the screen generation that requested them, the
// same stale-response guard the storefront uses.
type gen int

type errMsg struct {
	gen gen
	err error
}

type loginMsg struct {
	gen gen
	err error
}

type dashboardLoadedMsg struct {
	gen       gen
	dashboard *api.Dashboard
}

type productsLoadedMsg struct {
	gen      gen
	products []api.Product
}

type productSavedMsg struct {
	gen     gen
	product *api.Product
	created bool
}

type productDeletedMsg struct {
	gen gen
	id  string
}

type ordersLoadedMsg struct {
	gen    gen
	orders []api.Order
}

type orderStatusChangedMsg struct {
	gen    gen
	id     string
	status string
}

type usersLoadedMsg struct {
	gen   gen
	users []api.AdminUser
}

type userStatsLoadedMsg struct {
	gen   gen
	stats *api.UserStats
}

type userBlockToggledMsg struct {
	gen     gen
	id      string
	blocked bool
}
