package api

import (
	"context"
	"net/http"
)

type wishlistResponse struct {
	envelope
	Wishlist []Product `json:"wishlist"`
}

// Wishlist fetches the saved-for-later products.
func (c *Client) Wishlist(ctx context.Context) ([]Product, error) {
	var out wishlistResponse
	if err := c.do(ctx, http.MethodGet, "/user/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out.Wishlist, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, productID string) error {
	var out envelope
	return c.do(ctx, http.MethodPost, "/user/wishlist/add/"+productID, nil, &out)
}

// RemoveFromWishlist drops a saved product.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	var out envelope
	return c.do(ctx, http.MethodDelete, "/user/wishlist/remove/"+productID, nil, &out)
}
