package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoreno/toyhaven/internal/config"
	"github.com/lmoreno/toyhaven/internal/errors"
)

// testConfig points a Config at the given test server.
func testConfig(srv *httptest.Server) *config.Config {
	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api"
	cfg.API.Origin = srv.URL
	return cfg
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "cart": []any{}})
	}))
	defer srv.Close()

	client := New(testConfig(srv), StaticToken("tok-123"))
	_, err := client.Cart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "products": []any{}})
	}))
	defer srv.Close()

	client := New(testConfig(srv), StaticToken(""))
	_, err := client.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestTokenSourceConsultedPerRequest(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "cart": []any{}})
	}))
	defer srv.Close()

	token := ""
	client := New(testConfig(srv), TokenFunc(func() string { return token }))

	_, err := client.Cart(context.Background())
	require.NoError(t, err)

	token = "late-login"
	_, err = client.Cart(context.Background())
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Empty(t, gotAuth[0])
	assert.Equal(t, "Bearer late-login", gotAuth[1])
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "stock changed"})
	}))
	defer srv.Close()

	client := New(testConfig(srv), nil)
	_, err := client.PlaceOrder(context.Background(), PlaceOrderRequest{PaymentMethod: MethodCOD})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "stock changed", apiErr.UserMessage("Order failed"))
}

func TestSuccessFalseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Order failed"})
	}))
	defer srv.Close()

	client := New(testConfig(srv), nil)
	_, err := client.PlaceOrder(context.Background(), PlaceOrderRequest{PaymentMethod: MethodCOD})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Order failed", apiErr.Message)
}

func TestUnauthorizedClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "jwt expired"})
	}))
	defer srv.Close()

	client := New(testConfig(srv), StaticToken("stale"))
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsAuthFailure(err))
}

func TestConnectionFailureClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client := New(testConfig(srv), nil)
	_, err := client.Cart(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsConnectionFailure(err))
}

func TestMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := New(testConfig(srv), nil)
	_, err := client.Cart(context.Background())
	require.Error(t, err)
}

func TestImageURL(t *testing.T) {
	cfg := config.Default()
	cfg.API.Origin = "http://localhost:5000"
	client := New(cfg, nil)

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"absolute http", "http://cdn.example.com/toy.png", "http://cdn.example.com/toy.png"},
		{"absolute https", "https://cdn.example.com/toy.png", "https://cdn.example.com/toy.png"},
		{"server relative", "/uploads/toy.png", "http://localhost:5000/uploads/toy.png"},
		{"bare relative", "uploads/toy.png", "http://localhost:5000/uploads/toy.png"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.ImageURL(tt.ref))
		})
	}
}

func TestProductsCategoryQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "products": []any{}})
	}))
	defer srv.Close()

	client := New(testConfig(srv), nil)
	_, err := client.Products(context.Background(), "Educational Toy")
	require.NoError(t, err)
	assert.Equal(t, "category=Educational+Toy", gotQuery)
}
