package api

import (
	"context"
	"net/http"
)

type cartResponse struct {
	envelope
	Cart []CartLine `json:"cart"`
}

// Cart fetches the current cart contents.
func (c *Client) Cart(ctx context.Context) ([]CartLine, error) {
	var out cartResponse
	if err := c.do(ctx, http.MethodGet, "/user/cart", nil, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

// AddToCart adds quantity units of a product. Quantity below 1 is sent as 1.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	var out envelope
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPost, "/user/cart/add/"+productID, body, &out)
}

// UpdateCartItem sets the quantity of an existing cart line. The server
// removes the line when quantity drops below 1; callers that decrement to
// zero should use RemoveFromCart instead to keep intent explicit.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	var out envelope
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/user/cart/update/"+productID, body, &out)
}

// RemoveFromCart deletes a cart line.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	var out envelope
	return c.do(ctx, http.MethodDelete, "/user/cart/remove/"+productID, nil, &out)
}
