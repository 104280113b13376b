// Package paypal drives the hosted-payment flow. The backend owns the
// provider credentials; this client only creates provider orders, hands
// the buyer an approval URL to open in a browser, and captures approved
// orders.
package paypal

import (
	"context"
	"sync"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/logging"
)

const (
	liveApprovalBase    = "https://www.paypal.com/checkoutnow?token="
	sandboxApprovalBase = "https://www.sandbox.paypal.com/checkoutnow?token="
)

// Backend is the slice of the API client the flow needs.
type Backend interface {
	CreatePayPalOrder(ctx context.Context, amount float64, currency string, items []api.PayPalItem) (string, error)
	CapturePayPalOrder(ctx context.Context, orderID string) (*api.Order, error)
}

// Flow is the hosted-payment state machine for one checkout session.
// Initialization runs at most once per Flow regardless of how many times
// the buyer toggles the payment method; EnsureLoaded caches its outcome.
// Not safe for concurrent use beyond the EnsureLoaded guard.
type Flow struct {
	backend Backend
	cfg     config.PayPalConfig
	logger  *logging.Logger

	loadOnce sync.Once
	loadErr  error
	approval string

	orderID string
	pending bool
}

// NewFlow creates a Flow. Nothing is initialized until EnsureLoaded.
func NewFlow(backend Backend, cfg config.PayPalConfig, logger *logging.Logger) *Flow {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Flow{
		backend: backend,
		cfg:     cfg,
		logger:  logger.WithScope("paypal"),
	}
}

// EnsureLoaded initializes the flow exactly once: it verifies a client id
// is configured and fixes the approval host. Every later call returns the
// first outcome without re-running initialization.
func (f *Flow) EnsureLoaded() error {
	f.loadOnce.Do(func() {
		if f.cfg.ClientID == "" {
			f.loadErr = errors.ErrPaymentNotConfigured
			return
		}
		f.approval = liveApprovalBase
		if f.cfg.Sandbox {
			f.approval = sandboxApprovalBase
		}
		f.logger.Debug("payment flow initialized", "sandbox", f.cfg.Sandbox)
	})
	return f.loadErr
}

// Loaded reports whether initialization has run and succeeded.
func (f *Flow) Loaded() bool {
	return f.approval != ""
}

// CreateOrder opens a provider order for the given amount and cart
// snapshot. The returned id identifies the order through approval and
// capture; ApprovalURL turns it into the page the buyer must visit.
func (f *Flow) CreateOrder(ctx context.Context, amount float64, items []api.PayPalItem) (string, error) {
	if err := f.EnsureLoaded(); err != nil {
		return "", err
	}

	orderID, err := f.backend.CreatePayPalOrder(ctx, amount, f.cfg.Currency, items)
	if err != nil {
		return "", errors.NewPaymentError("failed to create provider order", err)
	}

	f.orderID = orderID
	f.pending = true
	f.logger.Info("provider order created", "order", orderID, "amount", amount)
	return orderID, nil
}

// ApprovalURL returns the page where the buyer approves the pending
// order, or "" when no order is pending.
func (f *Flow) ApprovalURL() string {
	if f.orderID == "" {
		return ""
	}
	return f.approval + f.orderID
}

// Pending reports whether a created order awaits approval or capture.
func (f *Flow) Pending() bool { return f.pending }

// OrderID returns the pending provider order id, or "".
func (f *Flow) OrderID() string { return f.orderID }

// Approve captures the pending provider order, converting it into a
// placed, paid order. Failure leaves the flow pending so the buyer can
// retry or cancel.
func (f *Flow) Approve(ctx context.Context) (*api.Order, error) {
	if f.orderID == "" {
		return nil, errors.NewPaymentError("no pending provider order", nil)
	}

	order, err := f.backend.CapturePayPalOrder(ctx, f.orderID)
	if err != nil {
		f.logger.Warn("capture failed", "order", f.orderID, "error", err)
		return nil, errors.NewPaymentError("failed to capture payment", err).WithOrderID(f.orderID)
	}

	f.logger.Info("payment captured", "order", f.orderID)
	f.reset()
	return order, nil
}

// Cancel abandons the pending order without error. Backing out of the
// approval page is a normal outcome, not a failure.
func (f *Flow) Cancel() {
	if f.orderID != "" {
		f.logger.Info("payment cancelled", "order", f.orderID)
	}
	f.reset()
}

// Fail records a provider-side failure and resets the pending order,
// returning the notice-worthy error.
func (f *Flow) Fail(cause error) error {
	err := errors.NewPaymentError("payment failed", cause).WithOrderID(f.orderID)
	f.logger.Warn("payment failed", "order", f.orderID, "error", cause)
	f.reset()
	return err
}

func (f *Flow) reset() {
	f.orderID = ""
	f.pending = false
}
