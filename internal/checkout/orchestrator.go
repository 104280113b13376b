// Package checkout orchestrates order placement: it loads the cart,
// profile, and address book, resolves the shipping address, computes
// totals, and drives the cash-on-delivery and hosted-payment paths. The
// TUI's checkout screen is a thin rendering of this state machine.
package checkout

import (
	"context"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/logging"
)

// Totals is the price breakdown shown on the summary panel. Recomputed
// from the cart on every call, never cached.
type Totals struct {
	Subtotal   float64
	Shipping   float64
	GrandTotal float64
}

// Block reasons returned by BlockReason, shown inline next to the
// disabled submit action.
const (
	BlockCartEmpty  = "Your cart is empty"
	BlockNoAddress  = "Add an address in your profile to continue"
	BlockSelectAddr = "Select a shipping address"
)

// Orchestrator owns checkout state for one session. Not safe for
// concurrent use; the event loop serializes access.
type Orchestrator struct {
	client *api.Client
	cfg    *config.Config
	logger *logging.Logger

	cart      []api.CartLine
	profile   *api.Identity
	addresses []api.Address

	paymentMethod   string
	selectedAddress string
	submitting      bool
	succeeded       bool
	placed          *api.Order
}

// New creates an Orchestrator. Payment method starts as COD.
func New(client *api.Client, cfg *config.Config, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Orchestrator{
		client:        client,
		cfg:           cfg,
		logger:        logger.WithScope("checkout"),
		paymentMethod: api.MethodCOD,
	}
}

// Load fetches the cart, then the profile, then the address book, in that
// order. Address selection is resolved only after the address list
// settles: the default-flagged address wins, else the first saved
// address, else nothing (the legacy profile address becomes the
// fallback).
func (o *Orchestrator) Load(ctx context.Context) error {
	cart, err := o.client.Cart(ctx)
	if err != nil {
		return err
	}
	o.cart = cart

	profile, err := o.client.Profile(ctx)
	if err != nil {
		return err
	}
	o.profile = profile

	addresses, err := o.client.Addresses(ctx)
	if err != nil {
		return err
	}
	o.SetAddresses(addresses)

	o.logger.Debug("checkout loaded",
		"cart_lines", len(o.cart),
		"addresses", len(o.addresses),
	)
	return nil
}

// SetAddresses replaces the address book and re-resolves the selection.
// A previously selected address that still exists is kept.
func (o *Orchestrator) SetAddresses(addresses []api.Address) {
	o.addresses = addresses

	if o.selectedAddress != "" && o.addressByID(o.selectedAddress) != nil {
		return
	}
	o.selectedAddress = ""
	for _, addr := range addresses {
		if addr.IsDefault {
			o.selectedAddress = addr.ID
			return
		}
	}
	if len(addresses) > 0 {
		o.selectedAddress = addresses[0].ID
	}
}

// Cart returns the loaded cart snapshot.
func (o *Orchestrator) Cart() []api.CartLine { return o.cart }

// Profile returns the loaded profile, or nil before Load.
func (o *Orchestrator) Profile() *api.Identity { return o.profile }

// Addresses returns the loaded address book.
func (o *Orchestrator) Addresses() []api.Address { return o.addresses }

// PaymentMethod returns the active method, COD or PAYPAL.
func (o *Orchestrator) PaymentMethod() string { return o.paymentMethod }

// SetPaymentMethod switches between COD and PAYPAL. Unknown values are
// ignored.
func (o *Orchestrator) SetPaymentMethod(method string) {
	if method == api.MethodCOD || method == api.MethodPayPal {
		o.paymentMethod = method
	}
}

// SelectAddress attaches a saved address by id. Only the attachment
// changes; totals are unaffected. Selecting an unknown id is ignored.
func (o *Orchestrator) SelectAddress(id string) {
	if o.addressByID(id) != nil {
		o.selectedAddress = id
	}
}

// SelectedAddress returns the attached saved address, or nil when the
// legacy fallback (or nothing) applies.
func (o *Orchestrator) SelectedAddress() *api.Address {
	return o.addressByID(o.selectedAddress)
}

// LegacyAddress returns the profile's free-text address, the fallback
// when no saved address exists.
func (o *Orchestrator) LegacyAddress() string {
	if o.profile == nil {
		return ""
	}
	return o.profile.Address
}

// AddressResolved reports whether an address is attached, saved or legacy.
func (o *Orchestrator) AddressResolved() bool {
	return o.SelectedAddress() != nil || o.LegacyAddress() != ""
}

// Totals computes the price breakdown. Cart lines with a missing product
// reference contribute nothing. The flat shipping fee applies only to
// non-empty totals.
func (o *Orchestrator) Totals() Totals {
	var subtotal float64
	for _, line := range o.cart {
		if line.Product == nil {
			continue
		}
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	var shipping float64
	if subtotal > 0 {
		shipping = o.cfg.Checkout.ShippingFee
	}

	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		GrandTotal: subtotal + shipping,
	}
}

// CanSubmit reports whether an order can be placed: non-empty cart and a
// resolved address.
func (o *Orchestrator) CanSubmit() bool {
	return len(o.cart) > 0 && o.AddressResolved() && !o.submitting
}

// BlockReason returns the inline message explaining why submission is
// blocked, or "" when it isn't.
func (o *Orchestrator) BlockReason() string {
	if len(o.cart) == 0 {
		return BlockCartEmpty
	}
	if !o.AddressResolved() {
		if len(o.addresses) == 0 {
			return BlockNoAddress
		}
		return BlockSelectAddr
	}
	return ""
}

// Submitting reports whether a placement request is in flight.
func (o *Orchestrator) Submitting() bool { return o.submitting }

// Succeeded reports whether an order has been placed this session.
func (o *Orchestrator) Succeeded() bool { return o.succeeded }

// PlacedOrder returns the order a successful placement yielded, or nil.
func (o *Orchestrator) PlacedOrder() *api.Order { return o.placed }

// BeginPlacement validates checkout state, snapshots the placement
// payload, and marks the orchestrator as submitting. The orchestrator is
// not written again until FinishPlacement, so the request may be sent
// from another goroutine while views keep reading.
func (o *Orchestrator) BeginPlacement() (api.PlaceOrderRequest, error) {
	if len(o.cart) == 0 {
		return api.PlaceOrderRequest{}, errors.ErrCartEmpty
	}
	if !o.AddressResolved() {
		return api.PlaceOrderRequest{}, errors.ErrNoAddress
	}

	req := api.PlaceOrderRequest{PaymentMethod: api.MethodCOD}
	if addr := o.SelectedAddress(); addr != nil {
		req.Address = addr
	} else {
		req.LegacyAddress = o.LegacyAddress()
	}

	o.submitting = true
	return req, nil
}

// FinishPlacement applies the outcome of a placement started with
// BeginPlacement. On success the local cart is cleared and the succeeded
// flag set; on failure every piece of checkout state is left exactly as
// it was so the buyer can retry.
func (o *Orchestrator) FinishPlacement(order *api.Order, err error) {
	o.submitting = false
	if err != nil {
		o.logger.Warn("order placement failed", "error", err)
		return
	}
	o.succeed(order)
}

// PlaceOrder submits a cash-on-delivery order synchronously. Callers
// sharing the orchestrator across goroutines use the
// BeginPlacement/FinishPlacement pair instead.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (*api.Order, error) {
	req, err := o.BeginPlacement()
	if err != nil {
		return nil, err
	}
	order, err := o.client.PlaceOrder(ctx, req)
	o.FinishPlacement(order, err)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CompletePayment records a captured hosted payment, transitioning to the
// same succeeded state a COD placement reaches.
func (o *Orchestrator) CompletePayment(order *api.Order) {
	o.succeed(order)
}

// PayPalItems snapshots the cart as provider line items. Lines with a
// missing product reference are skipped, matching Totals.
func (o *Orchestrator) PayPalItems() []api.PayPalItem {
	items := make([]api.PayPalItem, 0, len(o.cart))
	for _, line := range o.cart {
		if line.Product == nil {
			continue
		}
		items = append(items, api.PayPalItem{
			Name:     line.Product.Name,
			Quantity: line.Quantity,
			Price:    line.Product.Price,
		})
	}
	return items
}

// PayPalPanelVisible reports whether the hosted-payment trigger should be
// rendered: PAYPAL selected, non-empty cart, resolved address. When it is
// false the panel is cleared so no stale order can be created.
func (o *Orchestrator) PayPalPanelVisible() bool {
	return o.paymentMethod == api.MethodPayPal && len(o.cart) > 0 && o.AddressResolved()
}

// succeed records a completed placement, COD or captured payment, and
// clears the local cart copy. The server already emptied its side.
func (o *Orchestrator) succeed(order *api.Order) {
	o.placed = order
	o.succeeded = true
	o.cart = nil
	id := ""
	if order != nil {
		id = order.ID
	}
	o.logger.Info("order placed", "order", id)
}

func (o *Orchestrator) addressByID(id string) *api.Address {
	if id == "" {
		return nil
	}
	for i := range o.addresses {
		if o.addresses[i].ID == id {
			return &o.addresses[i]
		}
	}
	return nil
}
