package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/checkout"
	"github.com/lmoreno/toyhaven/internal/checkout/paypal"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/tui/msg"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type checkoutState struct {
	orch *checkout.Orchestrator
	flow *paypal.Flow

	loaded    bool
	cursor    int // address selector position
	approving bool
	approval  string
}

// enterCheckout kicks off the orchestrator load as one async command.
func (m *Model) enterCheckout() tea.Cmd {
	m.checkout.loaded = false
	m.checkout.cursor = 0
	m.checkout.approving = false
	m.checkout.approval = ""
	m.checkout.orch = checkout.New(m.client, m.cfg, m.logger)
	m.checkout.flow = paypal.NewFlow(m.client, m.cfg.PayPal, m.logger)

	gen := m.gen
	orch := m.checkout.orch
	return func() tea.Msg {
		return msg.CheckoutLoadedMsg{Gen: gen, Err: orch.Load(context.Background())}
	}
}

func (m Model) updateCheckout(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case msg.CheckoutLoadedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		if message.Err != nil {
			if errors.IsAuthFailure(message.Err) {
				m.session.Logout()
				return m, m.navigate(screenLogin)
			}
			m.notice = errors.UserMessage(message.Err, "Failed to load checkout")
			return m, nil
		}
		m.checkout.loaded = true
		return m, nil

	case msg.OrderPlacedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		m.checkout.orch.FinishPlacement(message.Order, message.Err)
		if message.Err != nil {
			m.notice = errors.UserMessage(message.Err, "Order placement failed, please try again")
			return m, nil
		}
		return m, msg.Redirect(m.gen, m.cfg.Checkout.SuccessRedirectDelay())

	case msg.PayPalOrderCreatedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		if message.Err != nil {
			m.notice = errors.UserMessage(message.Err, "Could not start the payment")
			return m, nil
		}
		m.checkout.approving = true
		m.checkout.approval = message.ApprovalURL
		return m, msg.OpenBrowser(message.ApprovalURL)

	case msg.PayPalCapturedMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		if message.Err != nil {
			m.notice = errors.UserMessage(message.Err, "Payment failed, order not completed")
			return m, nil
		}
		m.checkout.approving = false
		m.checkout.orch.CompletePayment(message.Order)
		return m, msg.Redirect(m.gen, m.cfg.Checkout.SuccessRedirectDelay())

	case msg.RedirectMsg:
		if m.stale(message.Gen) {
			return m, nil
		}
		return m, m.navigate(screenOrders)

	case tea.KeyMsg:
		return m.handleCheckoutKey(message)
	}
	return m, nil
}

func (m Model) handleCheckoutKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.checkout.loaded || m.checkout.orch.Succeeded() {
		return m, nil
	}

	orch := m.checkout.orch

	if m.checkout.approving {
		switch key.String() {
		case "y":
			return m.capturePayPal()
		case "c", "esc":
			m.checkout.flow.Cancel()
			m.checkout.approving = false
			m.checkout.approval = ""
			return m, nil
		}
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.checkout.cursor < len(orch.Addresses())-1 {
			m.checkout.cursor++
			orch.SelectAddress(orch.Addresses()[m.checkout.cursor].ID)
		}
		return m, nil
	case "k", "up":
		if m.checkout.cursor > 0 {
			m.checkout.cursor--
			orch.SelectAddress(orch.Addresses()[m.checkout.cursor].ID)
		}
		return m, nil
	case "m":
		if orch.PaymentMethod() == api.MethodCOD {
			orch.SetPaymentMethod(api.MethodPayPal)
		} else {
			orch.SetPaymentMethod(api.MethodCOD)
		}
		return m, nil
	case "enter":
		// The primary action places COD orders only; while PAYPAL is
		// selected the hosted panel is the sole trigger.
		if orch.PaymentMethod() != api.MethodCOD || !orch.CanSubmit() {
			return m, nil
		}
		return m.placeOrder()
	case "b":
		if !orch.PayPalPanelVisible() {
			return m, nil
		}
		return m.createPayPalOrder()
	case "esc":
		return m, m.navigate(screenCart)
	}
	return m, nil
}

// placeOrder snapshots the payload on the event loop and sends it from
// the command goroutine; the orchestrator is written again only when
// OrderPlacedMsg comes back.
func (m Model) placeOrder() (tea.Model, tea.Cmd) {
	req, err := m.checkout.orch.BeginPlacement()
	if err != nil {
		m.notice = errors.UserMessage(err, "Order placement failed, please try again")
		return m, nil
	}

	gen := m.gen
	client := m.client
	m.notice = ""
	return m, func() tea.Msg {
		order, err := client.PlaceOrder(context.Background(), req)
		return msg.OrderPlacedMsg{Gen: gen, Order: order, Err: err}
	}
}

func (m Model) createPayPalOrder() (tea.Model, tea.Cmd) {
	gen := m.gen
	orch := m.checkout.orch
	flow := m.checkout.flow
	amount := orch.Totals().GrandTotal
	items := orch.PayPalItems()
	m.notice = ""
	return m, func() tea.Msg {
		orderID, err := flow.CreateOrder(context.Background(), amount, items)
		return msg.PayPalOrderCreatedMsg{Gen: gen, OrderID: orderID, ApprovalURL: flow.ApprovalURL(), Err: err}
	}
}

func (m Model) capturePayPal() (tea.Model, tea.Cmd) {
	gen := m.gen
	flow := m.checkout.flow
	return m, func() tea.Msg {
		order, err := flow.Approve(context.Background())
		return msg.PayPalCapturedMsg{Gen: gen, Order: order, Err: err}
	}
}

func (m *Model) viewCheckout() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Checkout"))
	b.WriteString("\n\n")

	if !m.checkout.loaded {
		b.WriteString(styles.Muted.Render("Loading checkout..."))
		return b.String()
	}

	orch := m.checkout.orch

	if orch.Succeeded() {
		b.WriteString(styles.SuccessNotice.Render("Order placed!"))
		if order := orch.PlacedOrder(); order != nil {
			b.WriteString("\n" + styles.Text.Render("Order "+order.ID))
		}
		b.WriteString("\n\n" + styles.Muted.Render("Taking you to your orders..."))
		return b.String()
	}

	// Address panel
	b.WriteString(styles.Primary.Render("Shipping address"))
	b.WriteString("\n")
	addresses := orch.Addresses()
	if len(addresses) == 0 {
		if legacy := orch.LegacyAddress(); legacy != "" {
			b.WriteString(styles.Text.Render("  " + legacy))
			b.WriteString(styles.Muted.Render("  (from profile)"))
		} else {
			b.WriteString(styles.Warning.Render("  No address on file"))
		}
		b.WriteString("\n")
	}
	selected := orch.SelectedAddress()
	for i, addr := range addresses {
		marker := "  "
		if selected != nil && addr.ID == selected.ID {
			marker = styles.Primary.Render("● ")
		}
		row := fmt.Sprintf("%s%s, %s %s", marker, addr.Name, addr.AddressLine1, addr.City)
		if addr.IsDefault {
			row += styles.Muted.Render(" (default)")
		}
		if i == m.checkout.cursor {
			b.WriteString(styles.RowSelected.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Payment method
	b.WriteString(styles.Primary.Render("Payment"))
	b.WriteString("\n  ")
	if orch.PaymentMethod() == api.MethodCOD {
		b.WriteString(styles.TabActive.Render("Cash on delivery") + " " + styles.TabInactive.Render("PayPal"))
	} else {
		b.WriteString(styles.TabInactive.Render("Cash on delivery") + " " + styles.TabActive.Render("PayPal"))
	}
	b.WriteString("\n\n")

	// Summary
	totals := orch.Totals()
	b.WriteString(styles.Primary.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Subtotal  %s\n", styles.Price.Render(fmt.Sprintf("$%.2f", totals.Subtotal))))
	b.WriteString(fmt.Sprintf("  Shipping  %s\n", styles.Price.Render(fmt.Sprintf("$%.2f", totals.Shipping))))
	b.WriteString(fmt.Sprintf("  Total     %s\n\n", styles.Price.Render(fmt.Sprintf("$%.2f", totals.GrandTotal))))

	if m.checkout.approving {
		b.WriteString(styles.Warning.Render("Approve the payment in your browser:"))
		b.WriteString("\n  " + styles.Muted.Render(m.checkout.approval))
		b.WriteString("\n" + styles.HelpBar.Render(
			styles.HelpKey.Render("y")+" I approved, capture  "+
				styles.HelpKey.Render("c")+" cancel"))
		return b.String()
	}

	if reason := orch.BlockReason(); reason != "" {
		b.WriteString(styles.Warning.Render(reason))
		b.WriteString("\n")
	} else if orch.PaymentMethod() == api.MethodPayPal {
		if orch.PayPalPanelVisible() {
			b.WriteString(styles.HelpBar.Render(styles.HelpKey.Render("b") + " pay with PayPal"))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(styles.HelpBar.Render(styles.HelpKey.Render("enter") + " place order"))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("j/k")+" address  "+
			styles.HelpKey.Render("m")+" payment method  "+
			styles.HelpKey.Render("esc")+" back to cart"))
	return b.String()
}
