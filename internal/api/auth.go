package api

import (
	"context"
	"net/http"
)

// authResponse is returned by login, register, and profile validation.
type authResponse struct {
	envelope
	Token string    `json:"token,omitempty"`
	User  *Identity `json:"user,omitempty"`
	Admin *Identity `json:"admin,omitempty"`
}

// AuthResult bundles the identity and token a successful auth call yields.
type AuthResult struct {
	Token    string
	Identity *Identity
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/user/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &AuthResult{Token: out.Token, Identity: out.User}, nil
}

// Register creates an account and, like Login, returns a live session.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResult, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/user/auth/register", reg, &out); err != nil {
		return nil, err
	}
	return &AuthResult{Token: out.Token, Identity: out.User}, nil
}

// Me validates the current token and returns the fresh identity snapshot.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodGet, "/user/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates the admin console.
func (c *AdminClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/admin/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &AuthResult{Token: out.Token, Identity: out.Admin}, nil
}

// Profile validates the admin token and returns the admin identity.
func (c *AdminClient) Profile(ctx context.Context) (*Identity, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodGet, "/admin/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	if out.Admin != nil {
		return out.Admin, nil
	}
	return out.User, nil
}
