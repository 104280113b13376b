package api

import (
	"context"
	"net/http"
)

type addressesResponse struct {
	envelope
	Addresses []Address `json:"addresses"`
}

type addressResponse struct {
	envelope
	Address *Address `json:"address"`
}

// Addresses fetches the saved address book.
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var out addressesResponse
	if err := c.do(ctx, http.MethodGet, "/user/addresses", nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

// CreateAddress saves a new address. Setting IsDefault is honored
// server-side by clearing the flag on the previous default.
func (c *Client) CreateAddress(ctx context.Context, addr Address) (*Address, error) {
	var out addressResponse
	if err := c.do(ctx, http.MethodPost, "/user/addresses", addr, &out); err != nil {
		return nil, err
	}
	return out.Address, nil
}

// UpdateAddress edits a saved address.
func (c *Client) UpdateAddress(ctx context.Context, addr Address) (*Address, error) {
	var out addressResponse
	if err := c.do(ctx, http.MethodPut, "/user/addresses/"+addr.ID, addr, &out); err != nil {
		return nil, err
	}
	return out.Address, nil
}

// DeleteAddress removes a saved address.
func (c *Client) DeleteAddress(ctx context.Context, addressID string) error {
	var out envelope
	return c.do(ctx, http.MethodDelete, "/user/addresses/"+addressID, nil, &out)
}
