// Package msg defines the typed messages flowing through the storefront
// event loop and the tea.Cmd factories that produce them. Every factory
// is tagged with the requesting screen's generation so stale responses
// can be dropped.
package msg

import (
	"context"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
)

// LoadProducts fetches the catalog, optionally narrowed to a category.
func LoadProducts(client *api.Client, gen Gen, category string) tea.Cmd {
	return func() tea.Msg {
		products, err := client.Products(context.Background(), category)
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return ProductsLoadedMsg{Gen: gen, Products: products}
	}
}

// LoadProduct fetches one product for the detail screen.
func LoadProduct(client *api.Client, gen Gen, id string) tea.Cmd {
	return func() tea.Msg {
		product, err := client.Product(context.Background(), id)
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return ProductLoadedMsg{Gen: gen, Product: product}
	}
}

// LoadCart fetches the cart.
func LoadCart(client *api.Client, gen Gen) tea.Cmd {
	return func() tea.Msg {
		cart, err := client.Cart(context.Background())
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return CartLoadedMsg{Gen: gen, Cart: cart}
	}
}

// AddToCart adds a product and signals the screen to refetch.
func AddToCart(client *api.Client, gen Gen, productID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		if err := client.AddToCart(context.Background(), productID, quantity); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return CartChangedMsg{Gen: gen}
	}
}

// UpdateCartItem sets a line quantity.
func UpdateCartItem(client *api.Client, gen Gen, productID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		if err := client.UpdateCartItem(context.Background(), productID, quantity); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return CartChangedMsg{Gen: gen}
	}
}

// RemoveFromCart deletes a cart line.
func RemoveFromCart(client *api.Client, gen Gen, productID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.RemoveFromCart(context.Background(), productID); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return CartChangedMsg{Gen: gen}
	}
}

// LoadWishlist fetches the wishlist.
func LoadWishlist(client *api.Client, gen Gen) tea.Cmd {
	return func() tea.Msg {
		products, err := client.Wishlist(context.Background())
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return WishlistLoadedMsg{Gen: gen, Products: products}
	}
}

// AddToWishlist saves a product to the wishlist.
func AddToWishlist(client *api.Client, gen Gen, productID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.AddToWishlist(context.Background(), productID); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return WishlistChangedMsg{Gen: gen}
	}
}

// RemoveFromWishlist drops a product from the wishlist.
func RemoveFromWishlist(client *api.Client, gen Gen, productID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.RemoveFromWishlist(context.Background(), productID); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return WishlistChangedMsg{Gen: gen}
	}
}

// MoveToCart adds a wishlist product to the cart and removes it from the
// wishlist, in that order, so a cart failure keeps the product saved.
func MoveToCart(client *api.Client, gen Gen, productID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.AddToCart(ctx, productID, 1); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		if err := client.RemoveFromWishlist(ctx, productID); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return WishlistChangedMsg{Gen: gen}
	}
}

// LoadOrders fetches the order history.
func LoadOrders(client *api.Client, gen Gen) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.MyOrders(context.Background())
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return OrdersLoadedMsg{Gen: gen, Orders: orders}
	}
}

// LoadProfile fetches the full profile record.
func LoadProfile(client *api.Client, gen Gen) tea.Cmd {
	return func() tea.Msg {
		profile, err := client.Profile(context.Background())
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return ProfileLoadedMsg{Gen: gen, Profile: profile}
	}
}

// LoadAddresses fetches the address book.
func LoadAddresses(client *api.Client, gen Gen) tea.Cmd {
	return func() tea.Msg {
		addresses, err := client.Addresses(context.Background())
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return AddressesLoadedMsg{Gen: gen, Addresses: addresses}
	}
}

// SaveAddress creates or updates an address depending on whether it has
// an id yet.
func SaveAddress(client *api.Client, gen Gen, addr api.Address) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if addr.ID == "" {
			_, err = client.CreateAddress(ctx, addr)
		} else {
			_, err = client.UpdateAddress(ctx, addr)
		}
		if err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return AddressSavedMsg{Gen: gen}
	}
}

// DeleteAddress removes a saved address.
func DeleteAddress(client *api.Client, gen Gen, addressID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteAddress(context.Background(), addressID); err != nil {
			return ErrMsg{Gen: gen, Err: err}
		}
		return AddressSavedMsg{Gen: gen}
	}
}

// Redirect fires a RedirectMsg after the success-screen delay.
func Redirect(gen Gen, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RedirectMsg{Gen: gen}
	})
}

// OpenBrowser opens a URL in the system browser. Errors are swallowed;
// the approval URL stays on screen for manual copy either way.
func OpenBrowser(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		_ = cmd.Start()
		return nil
	}
}
