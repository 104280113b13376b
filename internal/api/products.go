package api

import (
	"context"
	"net/http"
	"net/url"
)

type productsResponse struct {
	envelope
	Products []Product `json:"products"`
}

type productResponse struct {
	envelope
	Product *Product `json:"product"`
}

// Products fetches the catalog. A non-empty category narrows the result
// server-side; all other filtering is client-side.
func (c *Client) Products(ctx context.Context, category string) ([]Product, error) {
	path := "/user/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var out productsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// Product fetches a single catalog record.
func (c *Client) Product(ctx context.Context, productID string) (*Product, error) {
	var out productResponse
	if err := c.do(ctx, http.MethodGet, "/user/products/"+productID, nil, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}
