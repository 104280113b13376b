package paypal

import (
	"context"
	"strings"
	"testing"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/errors"
)

// fakeBackend records flow calls without a server.
type fakeBackend struct {
	createCalls  int
	captureCalls int
	createErr    error
	captureErr   error
	lastAmount   float64
	lastCurrency string
	lastCapture  string
}

func (f *fakeBackend) CreatePayPalOrder(_ context.Context, amount float64, currency string, _ []api.PayPalItem) (string, error) {
	f.createCalls++
	f.lastAmount = amount
	f.lastCurrency = currency
	if f.createErr != nil {
		return "", f.createErr
	}
	return "PP-123", nil
}

func (f *fakeBackend) CapturePayPalOrder(_ context.Context, orderID string) (*api.Order, error) {
	f.captureCalls++
	f.lastCapture = orderID
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return &api.Order{ID: "o1", PaymentStatus: api.PaymentPaid}, nil
}

func sandboxConfig() config.PayPalConfig {
	return config.PayPalConfig{ClientID: "client-1", Currency: "USD", Sandbox: true}
}

func TestEnsureLoadedRunsOnce(t *testing.T) {
	flow := NewFlow(&fakeBackend{}, sandboxConfig(), nil)

	for i := 0; i < 5; i++ {
		if err := flow.EnsureLoaded(); err != nil {
			t.Fatalf("EnsureLoaded call %d failed: %v", i, err)
		}
	}
	if !flow.Loaded() {
		t.Error("expected loaded flow")
	}
}

func TestEnsureLoadedCachesFailure(t *testing.T) {
	flow := NewFlow(&fakeBackend{}, config.PayPalConfig{Currency: "USD"}, nil)

	first := flow.EnsureLoaded()
	if !errors.Is(first, errors.ErrPaymentNotConfigured) {
		t.Fatalf("EnsureLoaded without client id = %v, want ErrPaymentNotConfigured", first)
	}

	// The outcome is cached; toggling the method and retrying never
	// re-runs initialization.
	second := flow.EnsureLoaded()
	if !errors.Is(second, errors.ErrPaymentNotConfigured) {
		t.Errorf("second EnsureLoaded = %v, want the cached failure", second)
	}
	if flow.Loaded() {
		t.Error("failed initialization must not mark the flow loaded")
	}
}

func TestCreateOrderAndApprovalURL(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewFlow(backend, sandboxConfig(), nil)

	orderID, err := flow.CreateOrder(context.Background(), 255.00, []api.PayPalItem{
		{Name: "Wooden Train", Quantity: 2, Price: 100},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if orderID != "PP-123" {
		t.Errorf("orderID = %q", orderID)
	}
	if backend.lastAmount != 255.00 || backend.lastCurrency != "USD" {
		t.Errorf("backend saw amount=%v currency=%q", backend.lastAmount, backend.lastCurrency)
	}
	if !flow.Pending() {
		t.Error("expected pending order after create")
	}

	url := flow.ApprovalURL()
	if !strings.HasPrefix(url, "https://www.sandbox.paypal.com/") {
		t.Errorf("ApprovalURL = %q, want the sandbox host", url)
	}
	if !strings.HasSuffix(url, "PP-123") {
		t.Errorf("ApprovalURL = %q, want it to carry the order id", url)
	}
}

func TestCreateOrderWithoutClientID(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewFlow(backend, config.PayPalConfig{Currency: "USD"}, nil)

	_, err := flow.CreateOrder(context.Background(), 10, nil)
	if !errors.Is(err, errors.ErrPaymentNotConfigured) {
		t.Fatalf("CreateOrder = %v, want ErrPaymentNotConfigured", err)
	}
	if backend.createCalls != 0 {
		t.Error("backend must not be called when unconfigured")
	}
}

func TestApproveCaptures(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewFlow(backend, sandboxConfig(), nil)

	if _, err := flow.CreateOrder(context.Background(), 10, nil); err != nil {
		t.Fatal(err)
	}

	order, err := flow.Approve(context.Background())
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if order.PaymentStatus != api.PaymentPaid {
		t.Errorf("captured order = %+v", order)
	}
	if backend.lastCapture != "PP-123" {
		t.Errorf("captured id = %q, want PP-123", backend.lastCapture)
	}
	if flow.Pending() {
		t.Error("flow should reset after capture")
	}
}

func TestApproveFailureStaysPending(t *testing.T) {
	backend := &fakeBackend{captureErr: errors.New("provider declined")}
	flow := NewFlow(backend, sandboxConfig(), nil)

	if _, err := flow.CreateOrder(context.Background(), 10, nil); err != nil {
		t.Fatal(err)
	}

	_, err := flow.Approve(context.Background())
	var perr *errors.PaymentError
	if !errors.As(err, &perr) {
		t.Fatalf("Approve = %v, want *PaymentError", err)
	}
	if perr.OrderID != "PP-123" {
		t.Errorf("error order id = %q", perr.OrderID)
	}
	if !flow.Pending() {
		t.Error("failed capture leaves the order pending for retry")
	}
}

func TestCancelResetsWithoutError(t *testing.T) {
	flow := NewFlow(&fakeBackend{}, sandboxConfig(), nil)

	if _, err := flow.CreateOrder(context.Background(), 10, nil); err != nil {
		t.Fatal(err)
	}

	flow.Cancel()

	if flow.Pending() {
		t.Error("cancel should clear the pending order")
	}
	if got := flow.ApprovalURL(); got != "" {
		t.Errorf("ApprovalURL after cancel = %q, want empty", got)
	}
}

func TestFail(t *testing.T) {
	flow := NewFlow(&fakeBackend{}, sandboxConfig(), nil)

	if _, err := flow.CreateOrder(context.Background(), 10, nil); err != nil {
		t.Fatal(err)
	}

	err := flow.Fail(errors.New("window closed unexpectedly"))
	var perr *errors.PaymentError
	if !errors.As(err, &perr) {
		t.Fatalf("Fail = %v, want *PaymentError", err)
	}
	if flow.Pending() {
		t.Error("failure should reset the pending order")
	}
}
