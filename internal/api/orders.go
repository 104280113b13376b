package api

import (
	"context"
	"encoding/json"
	"net/http"
)

type ordersResponse struct {
	envelope
	Orders []Order `json:"orders"`
}

type placeOrderResponse struct {
	envelope
	Order *Order `json:"order,omitempty"`
}

type paypalCreateResponse struct {
	envelope
	OrderID string `json:"orderId"`
}

// PlaceOrderRequest is the order-placement payload. Exactly one of Address
// (a saved, structured address) or LegacyAddress (the profile's free-text
// field) is set; the server accepts either shape under the same key.
type PlaceOrderRequest struct {
	Address       *Address
	LegacyAddress string
	PaymentMethod string
}

// MarshalJSON writes the address under the "address" key whether it is a
// structured address or the legacy string.
func (r PlaceOrderRequest) MarshalJSON() ([]byte, error) {
	payload := map[string]any{"paymentMethod": r.PaymentMethod}
	switch {
	case r.Address != nil:
		payload["address"] = r.Address
	case r.LegacyAddress != "":
		payload["address"] = r.LegacyAddress
	}
	return json.Marshal(payload)
}

// PlaceOrder submits a cash-on-delivery order. The server snapshots the
// cart; the client must not clear its local copy until this succeeds.
func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	var out placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/user/orders/place", req, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}

// MyOrders fetches the customer's order history.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var out ordersResponse
	if err := c.do(ctx, http.MethodGet, "/user/orders/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// CreatePayPalOrder asks the backend to open a provider order for the given
// amount and cart snapshot, returning the provider order id.
func (c *Client) CreatePayPalOrder(ctx context.Context, amount float64, currency string, items []PayPalItem) (string, error) {
	body := map[string]any{
		"amount":   amount,
		"currency": currency,
		"items":    items,
	}

	var out paypalCreateResponse
	if err := c.do(ctx, http.MethodPost, "/user/orders/paypal/create", body, &out); err != nil {
		return "", err
	}
	return out.OrderID, nil
}

// CapturePayPalOrder captures an approved provider order, converting it into
// a placed, paid order.
func (c *Client) CapturePayPalOrder(ctx context.Context, orderID string) (*Order, error) {
	body := map[string]string{"orderID": orderID}

	var out placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/user/orders/paypal/capture", body, &out); err != nil {
		return nil, err
	}
	return out.Order, nil
}
