package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/checkout"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/session"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.Default()
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.API.Origin = "http://127.0.0.1:1"

	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	client := api.New(cfg, api.TokenFunc(store.UserToken))
	sess := session.NewSession(store, client, nil)
	return NewModel(client, sess, cfg, nil)
}

func TestStartScreenDependsOnSession(t *testing.T) {
	m := newTestModel(t)
	if m.screen != screenLogin {
		t.Errorf("start screen = %d, want login for an empty session", m.screen)
	}
}

func TestRouteGuardRedirectsToLogin(t *testing.T) {
	m := newTestModel(t)

	for _, target := range []screen{screenCart, screenWishlist, screenCheckout, screenOrders, screenProfile} {
		m.navigate(target)
		if m.screen != screenLogin {
			t.Errorf("navigate(%d) with empty session landed on %d, want login", target, m.screen)
		}
	}
}

func TestUnprotectedScreensNeedNoSession(t *testing.T) {
	m := newTestModel(t)

	m.navigate(screenProducts)
	if m.screen != screenProducts {
		t.Errorf("products screen should be reachable as guest, got %d", m.screen)
	}
}

func TestNavigateBumpsGeneration(t *testing.T) {
	m := newTestModel(t)
	before := m.gen

	m.navigate(screenProducts)

	if m.gen == before {
		t.Error("navigate must bump the generation so stale fetches drop")
	}
}

func TestStaleMessageDropped(t *testing.T) {
	m := newTestModel(t)
	m.navigate(screenProducts)
	staleGen := m.gen
	m.navigate(screenProducts) // bump again; staleGen now outdated

	updated, _ := m.Update(msg.ProductsLoadedMsg{
		Gen:      staleGen,
		Products: []api.Product{{ID: "p1", Name: "Ghost Toy"}},
	})
	next := updated.(Model)

	if next.products.loaded {
		t.Error("stale ProductsLoadedMsg must be dropped")
	}
	if next.products.items.Len() != 0 {
		t.Error("stale snapshot must not be installed")
	}
}

func TestCurrentGenerationMessageApplies(t *testing.T) {
	m := newTestModel(t)
	m.navigate(screenProducts)

	updated, _ := m.Update(msg.ProductsLoadedMsg{
		Gen:      m.gen,
		Products: []api.Product{{ID: "p1", Name: "Wooden Train", Price: 20}},
	})
	next := updated.(Model)

	if !next.products.loaded {
		t.Fatal("current-generation snapshot must apply")
	}
	if next.products.items.Len() != 1 {
		t.Errorf("items = %d, want 1", next.products.items.Len())
	}
}

func TestStaleErrMsgDropped(t *testing.T) {
	m := newTestModel(t)
	m.navigate(screenProducts)
	staleGen := m.gen
	m.navigate(screenProducts)

	updated, _ := m.Update(msg.ErrMsg{Gen: staleGen, Err: tea.ErrProgramKilled})
	next := updated.(Model)

	if next.notice != "" {
		t.Errorf("stale error surfaced a notice: %q", next.notice)
	}
}

func TestWindowSizeTracked(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next := updated.(Model)

	if next.width != 120 || next.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", next.width, next.height)
	}
}

func TestOrderFilterCycle(t *testing.T) {
	m := newTestModel(t)
	m.orders.orders = []api.Order{
		{ID: "o1", OrderStatus: api.OrderPlaced, CreatedAt: time.Now()},
		{ID: "o2", OrderStatus: api.OrderDelivered, CreatedAt: time.Now()},
		{ID: "o3", OrderStatus: api.OrderPlaced, CreatedAt: time.Now()},
	}

	if got := len(m.filteredOrders()); got != 3 {
		t.Errorf("unfiltered = %d, want 3", got)
	}

	// Cycle to PLACED.
	m.orders.filter = 1
	got := m.filteredOrders()
	if len(got) != 2 {
		t.Fatalf("PLACED filter = %d orders, want 2", len(got))
	}
	for _, order := range got {
		if order.OrderStatus != api.OrderPlaced {
			t.Errorf("order %s leaked through PLACED filter", order.ID)
		}
	}
}

func TestCartTotalsMirrorCheckout(t *testing.T) {
	m := newTestModel(t)
	m.cart.lines = []api.CartLine{
		{ID: "1", Product: &api.Product{ID: "p1", Price: 100}, Quantity: 2},
		{ID: "2", Product: &api.Product{ID: "p2", Price: 50}, Quantity: 1},
		{ID: "3", Product: nil, Quantity: 7},
	}

	subtotal, shipping, grand := m.cartTotals()
	if subtotal != 250 || shipping != 5 || grand != 255 {
		t.Errorf("totals = %v/%v/%v, want 250/5/255", subtotal, shipping, grand)
	}

	m.cart.lines = nil
	subtotal, shipping, grand = m.cartTotals()
	if subtotal != 0 || shipping != 0 || grand != 0 {
		t.Errorf("empty cart totals = %v/%v/%v, want zeros", subtotal, shipping, grand)
	}
}

func TestNextCategoryCycles(t *testing.T) {
	seen := map[string]bool{}
	current := ""
	for i := 0; i <= len(api.Categories); i++ {
		current = nextCategory(current)
		seen[current] = true
	}
	if current != "" {
		t.Errorf("cycle should return to all categories, ended on %q", current)
	}
	for _, c := range api.Categories {
		if !seen[c] {
			t.Errorf("category %q never visited", c)
		}
	}
}

func TestOrderPlacedAppliedOnEventLoop(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenCheckout
	m.checkout.loaded = true
	m.checkout.orch = checkout.New(m.client, m.cfg, m.logger)

	updated, _ := m.Update(msg.OrderPlacedMsg{Gen: m.gen, Order: &api.Order{ID: "o1"}})
	next := updated.(Model)

	if !next.checkout.orch.Succeeded() {
		t.Error("order placement outcome must be applied when the message arrives")
	}
	if next.checkout.orch.Submitting() {
		t.Error("submitting flag must clear once the placement message lands")
	}
}

func TestOrderPlacedFailureKeepsCheckoutOpen(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenCheckout
	m.checkout.loaded = true
	m.checkout.orch = checkout.New(m.client, m.cfg, m.logger)

	updated, _ := m.Update(msg.OrderPlacedMsg{Gen: m.gen, Err: tea.ErrProgramKilled})
	next := updated.(Model)

	if next.checkout.orch.Succeeded() {
		t.Error("failed placement must not reach the succeeded state")
	}
	if next.notice == "" {
		t.Error("failed placement should surface a notice")
	}
}

func TestSortDuringSearchKeepsFullSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.navigate(screenProducts)

	updated, _ := m.Update(msg.ProductsLoadedMsg{
		Gen: m.gen,
		Products: []api.Product{
			{ID: "p1", Name: "Wooden Train", Price: 30},
			{ID: "p2", Name: "Kite", Price: 10},
			{ID: "p3", Name: "Puzzle", Price: 20},
		},
	})
	m = updated.(Model)

	m.products.items.SetSearch("train")
	if got := m.products.items.MatchCount(); got != 1 {
		t.Fatalf("search matches = %d, want 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(Model)

	if got := m.products.items.MatchCount(); got != 1 {
		t.Errorf("search matches after sort = %d, want 1", got)
	}

	m.products.items.SetSearch("")
	if got := m.products.items.Len(); got != 3 {
		t.Fatalf("snapshot after clearing search = %d items, want 3", got)
	}
	if got := m.products.items.MatchCount(); got != 3 {
		t.Errorf("visible catalog after clearing search = %d, want 3", got)
	}

	// The new sort order holds across the whole snapshot
	all := m.products.items.All()
	if all[0].ID != "p2" || all[1].ID != "p3" || all[2].ID != "p1" {
		t.Errorf("price-ascending order = %s %s %s, want p2 p3 p1", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long product name", 10, "a very ..."},
		{"Holzeisenbahn für Kinder", 10, "Holzeis..."},
		{"ぬいぐるみのくまさんセット", 8, "ぬいぐるみ..."},
		{"éé", 2, "éé"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
