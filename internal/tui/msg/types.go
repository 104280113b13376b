package msg

import (
	"time"

	"github.com/lmoreno/toyhaven/internal/api"
)

// Gen tags a message with the screen generation that requested it. The
// model drops messages whose generation no longer matches the active
// screen, so a slow response can never land on a screen the user already
// left.
type Gen int

// ErrMsg wraps an error for inline display.
type ErrMsg struct {
	Gen Gen
	Err error
}

// ProductsLoadedMsg carries the catalog snapshot.
type ProductsLoadedMsg struct {
	Gen      Gen
	Products []api.Product
}

// ProductLoadedMsg carries a single product for the detail screen.
type ProductLoadedMsg struct {
	Gen     Gen
	Product *api.Product
}

// CartLoadedMsg carries the cart snapshot.
type CartLoadedMsg struct {
	Gen  Gen
	Cart []api.CartLine
}

// CartChangedMsg signals a cart mutation completed; the screen refetches.
type CartChangedMsg struct {
	Gen Gen
}

// WishlistLoadedMsg carries the wishlist snapshot.
type WishlistLoadedMsg struct {
	Gen      Gen
	Products []api.Product
}

// WishlistChangedMsg signals a wishlist mutation completed.
type WishlistChangedMsg struct {
	Gen Gen
}

// OrdersLoadedMsg carries the order history.
type OrdersLoadedMsg struct {
	Gen    Gen
	Orders []api.Order
}

// ProfileLoadedMsg carries the full profile record.
type ProfileLoadedMsg struct {
	Gen     Gen
	Profile *api.Identity
}

// AddressesLoadedMsg carries the address book.
type AddressesLoadedMsg struct {
	Gen       Gen
	Addresses []api.Address
}

// AddressSavedMsg signals an address create/update/delete completed.
type AddressSavedMsg struct {
	Gen Gen
}

// ProfileSavedMsg carries the saved profile after an edit.
type ProfileSavedMsg struct {
	Gen     Gen
	Profile *api.Identity
}

// PasswordChangedMsg signals a successful password rotation.
type PasswordChangedMsg struct {
	Gen Gen
}

// LoginMsg reports an authentication attempt.
type LoginMsg struct {
	Gen Gen
	Err error
}

// CheckoutLoadedMsg signals the checkout orchestrator finished loading.
type CheckoutLoadedMsg struct {
	Gen Gen
	Err error
}

// OrderPlacedMsg reports a cash-on-delivery placement.
type OrderPlacedMsg struct {
	Gen   Gen
	Order *api.Order
	Err   error
}

// PayPalOrderCreatedMsg carries the provider order id and approval URL.
type PayPalOrderCreatedMsg struct {
	Gen         Gen
	OrderID     string
	ApprovalURL string
	Err         error
}

// PayPalCapturedMsg reports the capture outcome.
type PayPalCapturedMsg struct {
	Gen   Gen
	Order *api.Order
	Err   error
}

// RedirectMsg fires after the success-screen delay to move to Orders.
type RedirectMsg struct {
	Gen Gen
}

// TickMsg drives time-based UI updates.
type TickMsg time.Time
