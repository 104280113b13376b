package api

import (
	"context"
	"fmt"
	"net/http"
)

type adminUsersResponse struct {
	envelope
	Users []AdminUser `json:"users"`
}

type userStatsResponse struct {
	envelope
	Stats UserStats `json:"stats"`
}

type dashboardResponse struct {
	envelope
	Stats        DashboardStats `json:"stats"`
	RecentOrders []Order        `json:"recentOrders"`
	RecentUsers  []AdminUser    `json:"recentUsers"`
}

// Dashboard is the admin landing-page payload.
type Dashboard struct {
	Stats        DashboardStats
	RecentOrders []Order
	RecentUsers  []AdminUser
}

// Products fetches the full catalog for the admin table.
func (c *AdminClient) Products(ctx context.Context) ([]Product, error) {
	var out productsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// Product fetches a single record to pre-populate the edit form.
func (c *AdminClient) Product(ctx context.Context, productID string) (*Product, error) {
	var out productResponse
	if err := c.do(ctx, http.MethodGet, "/admin/products/"+productID, nil, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// CreateProduct submits a new product as multipart form data, attaching the
// image file when the form names one.
func (c *AdminClient) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	var out productResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/admin/products", form.fields(), form.ImagePath, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// UpdateProduct edits an existing product. An empty ImagePath leaves the
// stored image untouched.
func (c *AdminClient) UpdateProduct(ctx context.Context, productID string, form ProductForm) (*Product, error) {
	var out productResponse
	if err := c.doMultipart(ctx, http.MethodPut, "/admin/products/"+productID, form.fields(), form.ImagePath, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// DeleteProduct removes a product from the catalog.
func (c *AdminClient) DeleteProduct(ctx context.Context, productID string) error {
	var out envelope
	return c.do(ctx, http.MethodDelete, "/admin/products/"+productID, nil, &out)
}

// Orders fetches every order for the admin table.
func (c *AdminClient) Orders(ctx context.Context) ([]Order, error) {
	var out ordersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// UpdateOrderStatus transitions an order to one of AdminOrderStatuses.
func (c *AdminClient) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	var out envelope
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/admin/orders/"+orderID+"/status", body, &out)
}

// Users fetches every customer for the admin table.
func (c *AdminClient) Users(ctx context.Context) ([]AdminUser, error) {
	var out adminUsersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UserStats fetches the user-management summary counts.
func (c *AdminClient) UserStats(ctx context.Context) (*UserStats, error) {
	var out userStatsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// SetUserBlocked toggles a customer's access. blocked=true issues a block
// action, false an unblock.
func (c *AdminClient) SetUserBlocked(ctx context.Context, userID string, blocked bool) error {
	action := "unblock"
	if blocked {
		action = "block"
	}

	var out envelope
	body := map[string]string{"action": action}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/block", body, &out)
}

// DashboardStats fetches the dashboard summary plus recent activity.
func (c *AdminClient) DashboardStats(ctx context.Context) (*Dashboard, error) {
	var out dashboardResponse
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &Dashboard{
		Stats:        out.Stats,
		RecentOrders: out.RecentOrders,
		RecentUsers:  out.RecentUsers,
	}, nil
}

// fields flattens the form for multipart submission.
func (f ProductForm) fields() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       fmt.Sprintf("%g", f.Price),
		"category":    f.Category,
		"stock":       fmt.Sprintf("%d", f.Stock),
	}
}
