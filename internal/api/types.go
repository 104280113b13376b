package api

import "time"

// Order status values the backend reports. The admin console only ever
// transitions between the first four; PENDING and CANCELLED can still appear
// on decoded orders coming from older records.
const (
	OrderPlaced     = "PLACED"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderPending    = "PENDING"
	OrderCancelled  = "CANCELLED"
)

// Payment status values
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

// Payment methods
const (
	MethodCOD    = "COD"
	MethodPayPal = "PAYPAL"
)

// Address types
const (
	AddressHome  = "home"
	AddressWork  = "work"
	AddressOther = "other"
)

// Categories lists the product categories the catalog understands.
var Categories = []string{"Educational Toy", "Outdoor", "Action", "Vehicle"}

// AdminOrderStatuses lists the statuses the admin console may assign.
var AdminOrderStatuses = []string{OrderPlaced, OrderProcessing, OrderShipped, OrderDelivered}

// Identity is the logged-in user as the backend reports it. The same shape
// is used for the storefront user and (with Role set) the admin.
type Identity struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"` // legacy free-text shipping address
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Role         string `json:"role,omitempty"`
}

// Product is a catalog record. Price and stock are display-only on the
// storefront; only admin forms mutate them.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
}

// CartLine is a single cart entry. Product may be nil when the referenced
// product was deleted server-side; such lines contribute nothing to totals.
type CartLine struct {
	ID       string   `json:"_id"`
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Address is a saved shipping address. The server enforces that at most one
// address per user carries IsDefault.
type Address struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Type         string `json:"type,omitempty"` // home, work, other
	IsDefault    bool   `json:"isDefault"`
}

// OrderItem is a priced snapshot of a cart line at placement time.
type OrderItem struct {
	ID       string   `json:"_id,omitempty"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Image    string   `json:"image,omitempty"`
	Product  *Product `json:"product,omitempty"`
}

// OrderUser is the embedded customer reference on admin order rows.
type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a placed order. The client treats it as read-mostly; status is
// mutated only through admin actions or payment capture.
type Order struct {
	ID              string     `json:"_id"`
	User            *OrderUser `json:"user,omitempty"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64    `json:"totalAmount"`
	ShippingFee     float64    `json:"shippingFee,omitempty"`
	OrderStatus     string     `json:"orderStatus"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaymentMethod   string     `json:"paymentMethod"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt,omitempty"`
}

// AdminUser is a customer record as the admin console sees it.
type AdminUser struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	IsBlocked  bool       `json:"isBlocked"`
	LoginCount int        `json:"loginCount,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// UserStats is the user-management summary row.
type UserStats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	BlockedUsers  int `json:"blockedUsers"`
	NewUsersToday int `json:"newUsersToday"`
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the register form fields.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Bio     string `json:"bio,omitempty"`
}

// PasswordChange carries a password-change request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProductForm carries the admin product create/edit fields. ImagePath, when
// set, is uploaded as a multipart file part.
type ProductForm struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	ImagePath   string
}

// PayPalItem is the line-item snapshot sent when creating a provider order.
type PayPalItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// envelope is the response wrapper every backend endpoint uses. Payload
// fields are declared per call site; success and message are universal.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
