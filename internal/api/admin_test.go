package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginDecodesAdminField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "admin-tok",
			"admin":   map[string]any{"_id": "a1", "name": "Root", "email": "root@example.com"},
		})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), nil)
	res, err := client.Login(context.Background(), Credentials{Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "admin-tok", res.Token)
	require.NotNil(t, res.Identity)
	assert.Equal(t, "a1", res.Identity.ID)
}

func TestSetUserBlockedActions(t *testing.T) {
	var gotActions []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/users/u1/block", r.URL.Path)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotActions = append(gotActions, body["action"])

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), StaticToken("admin-tok"))

	require.NoError(t, client.SetUserBlocked(context.Background(), "u1", true))
	require.NoError(t, client.SetUserBlocked(context.Background(), "u1", false))

	assert.Equal(t, []string{"block", "unblock"}, gotActions)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/orders/o1/status", r.URL.Path)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, OrderShipped, body["status"])

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), StaticToken("admin-tok"))
	require.NoError(t, client.UpdateOrderStatus(context.Background(), "o1", OrderShipped))
}

func TestCreateProductMultipart(t *testing.T) {
	imgDir := t.TempDir()
	imgPath := filepath.Join(imgDir, "toy.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Wooden Train", r.FormValue("name"))
		assert.Equal(t, "24.5", r.FormValue("price"))
		assert.Equal(t, "Vehicle", r.FormValue("category"))
		assert.Equal(t, "12", r.FormValue("stock"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "toy.png", header.Filename)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"product": map[string]any{"_id": "p1", "name": "Wooden Train", "price": 24.5},
		})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), StaticToken("admin-tok"))
	product, err := client.CreateProduct(context.Background(), ProductForm{
		Name:      "Wooden Train",
		Price:     24.5,
		Category:  "Vehicle",
		Stock:     12,
		ImagePath: imgPath,
	})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "p1", product.ID)
}

func TestUpdateProductWithoutImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))

		_, _, err := r.FormFile("image")
		assert.Error(t, err, "no image part expected")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"product": map[string]any{"_id": "p1", "name": "Renamed"},
		})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), StaticToken("admin-tok"))
	product, err := client.UpdateProduct(context.Background(), "p1", ProductForm{Name: "Renamed", Price: 10, Stock: 1, Category: "Action"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", product.Name)
}

func TestDashboardStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/dashboard/stats", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"stats": map[string]any{
				"totalUsers": 4, "totalOrders": 9, "totalProducts": 31, "totalRevenue": 812.5,
			},
			"recentOrders": []map[string]any{{"_id": "o1", "totalAmount": 55.0, "orderStatus": "PLACED", "paymentStatus": "PENDING", "paymentMethod": "COD"}},
			"recentUsers":  []map[string]any{{"_id": "u1", "name": "Ana", "email": "ana@example.com"}},
		})
	}))
	defer srv.Close()

	client := NewAdmin(testConfig(srv), StaticToken("admin-tok"))
	dash, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 812.5, dash.Stats.TotalRevenue)
	require.Len(t, dash.RecentOrders, 1)
	assert.Equal(t, "o1", dash.RecentOrders[0].ID)
	require.Len(t, dash.RecentUsers, 1)
	assert.Equal(t, "Ana", dash.RecentUsers[0].Name)
}
