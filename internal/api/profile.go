package api

import (
	"context"
	"net/http"
)

// Profile fetches the full profile record, including the legacy free-text
// address the checkout falls back on when no saved address exists.
func (c *Client) Profile(ctx context.Context) (*Identity, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// UpdateProfile submits edited profile fields and returns the saved record.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Identity, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPut, "/user/profile", update, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, change PasswordChange) error {
	var out envelope
	return c.do(ctx, http.MethodPut, "/user/profile/password", change, &out)
}
