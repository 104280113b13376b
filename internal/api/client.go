// Package api provides typed clients for the Toyhaven backend REST API.
// Two pre-configured clients exist: Client for the storefront (user-scoped
// bearer token) and AdminClient for the admin console (admin-scoped token).
// The backend owns all canonical state; every method here is a thin request
// wrapper returning transient snapshots.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/errors"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

// Token returns the current token.
func (f TokenFunc) Token() string { return f() }

// StaticToken is a TokenSource that always returns the same token.
// Useful for tests and one-shot CLI commands.
type StaticToken string

// Token returns the token.
func (s StaticToken) Token() string { return string(s) }

// Client is the user-scoped API client.
type Client struct {
	rest
}

// AdminClient is the admin-scoped API client. It is a distinct type so a
// storefront view can never be handed admin reach by accident.
type AdminClient struct {
	rest
}

// New creates the user-scoped client. The token source is consulted on
// every request, so a login that lands mid-session is picked up without
// rebuilding the client.
func New(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{rest: newRest(cfg, tokens)}
}

// NewAdmin creates the admin-scoped client.
func NewAdmin(cfg *config.Config, tokens TokenSource) *AdminClient {
	return &AdminClient{rest: newRest(cfg, tokens)}
}

// rest holds the configured resty client and the shared request plumbing.
type rest struct {
	http   *resty.Client
	origin string
}

func newRest(cfg *config.Config, tokens TokenSource) rest {
	client := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout()).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tokens != nil {
			if token := tokens.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	return rest{http: client, origin: strings.TrimRight(cfg.API.Origin, "/")}
}

// responder is implemented by every response struct via the embedded envelope.
type responder interface {
	ok() bool
	msg() string
}

func (e *envelope) ok() bool    { return e.Success }
func (e *envelope) msg() string { return e.Message }

// do issues a JSON request and decodes the enveloped response into out.
// A transport failure, a non-2xx status, or success=false all come back as
// *errors.APIError; out is only trustworthy when the returned error is nil.
func (r rest) do(ctx context.Context, method, path string, body any, out responder) error {
	req := r.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return errors.WrapAPIError(path, err)
	}

	return decode(path, resp.StatusCode(), resp.Body(), out)
}

// doMultipart issues a multipart form request (admin product upload).
func (r rest) doMultipart(ctx context.Context, method, path string, fields map[string]string, filePath string, out responder) error {
	req := r.http.R().SetContext(ctx).SetFormData(fields)
	if filePath != "" {
		req.SetFile("image", filePath)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return errors.WrapAPIError(path, err)
	}

	return decode(path, resp.StatusCode(), resp.Body(), out)
}

func decode(path string, status int, body []byte, out responder) error {
	if len(body) > 0 {
		// Decode even on error statuses: the envelope carries the
		// server's message text.
		if err := json.Unmarshal(body, out); err != nil {
			if status >= http.StatusOK && status < http.StatusMultipleChoices {
				return errors.WrapAPIError(path, err)
			}
			return errors.NewAPIError(status, "").WithEndpoint(path)
		}
	}

	if status >= http.StatusBadRequest || !out.ok() {
		return errors.NewAPIError(status, out.msg()).WithEndpoint(path)
	}
	return nil
}

// ImageURL resolves an image reference returned by the backend. Absolute
// URLs pass through; server-relative paths are prefixed with the configured
// backend origin.
func (r rest) ImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return r.origin + ref
}
