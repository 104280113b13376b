package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

// -----------------------------------------------------------------------------
// APIError Tests
// -----------------------------------------------------------------------------

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "status and message",
			err:  NewAPIError(400, "invalid quantity"),
			want: "api error [status=400]: invalid quantity",
		},
		{
			name: "with endpoint",
			err:  NewAPIError(404, "product not found").WithEndpoint("/user/products/abc"),
			want: "api error [status=404, endpoint=/user/products/abc]: product not found",
		},
		{
			name: "transport failure",
			err:  WrapAPIError("/user/cart", fmt.Errorf("dial tcp: connection refused")),
			want: "api error [endpoint=/user/cart]: dial tcp: connection refused",
		},
		{
			name: "bare",
			err:  &APIError{},
			want: "api error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_UnauthorizedIsSentinel(t *testing.T) {
	err := NewAPIError(http.StatusUnauthorized, "token expired")

	if !errors.Is(err, ErrUnauthorized) {
		t.Error("401 APIError should match ErrUnauthorized")
	}

	ok := NewAPIError(http.StatusBadRequest, "nope")
	if errors.Is(ok, ErrUnauthorized) {
		t.Error("400 APIError should not match ErrUnauthorized")
	}
}

func TestAPIError_UserMessage(t *testing.T) {
	withMsg := NewAPIError(500, "inventory conflict")
	if got := withMsg.UserMessage("Order failed"); got != "inventory conflict" {
		t.Errorf("UserMessage() = %q, want server message", got)
	}

	blank := NewAPIError(500, "")
	if got := blank.UserMessage("Order failed"); got != "Order failed" {
		t.Errorf("UserMessage() = %q, want fallback", got)
	}
}

func TestAPIError_As(t *testing.T) {
	var apiErr *APIError
	wrapped := fmt.Errorf("placing order: %w", NewAPIError(409, "stock changed"))

	if !errors.As(wrapped, &apiErr) {
		t.Fatal("errors.As should unwrap to *APIError")
	}
	if apiErr.Status != 409 {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
}

// -----------------------------------------------------------------------------
// SessionError Tests
// -----------------------------------------------------------------------------

func TestSessionError_Error(t *testing.T) {
	err := NewSessionError("admin", "restore failed", ErrCredentialsNotFound)
	want := "session error [scope=admin]: restore failed: credentials not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Error("SessionError should match its cause")
	}
}

// -----------------------------------------------------------------------------
// PaymentError Tests
// -----------------------------------------------------------------------------

func TestPaymentError_Error(t *testing.T) {
	err := NewPaymentError("capture failed", ErrConnection).WithOrderID("PP-123")
	want := "payment error [order=PP-123]: capture failed: connection failed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPaymentError_CancelledMatches(t *testing.T) {
	err := NewPaymentError("buyer cancelled", ErrPaymentCancelled)
	if !errors.Is(err, ErrPaymentCancelled) {
		t.Error("PaymentError should match ErrPaymentCancelled cause")
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with field",
			err:  NewValidationError("password", "passwords do not match"),
			want: "validation error [field=password]: passwords do not match",
		},
		{
			name: "no field",
			err:  NewValidationError("", "select a category"),
			want: "validation error: select a category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"401 api error", NewAPIError(401, ""), true},
		{"403 api error", NewAPIError(403, ""), true},
		{"unauthorized sentinel", ErrUnauthorized, true},
		{"expired sentinel", fmt.Errorf("restore: %w", ErrSessionExpired), true},
		{"not logged in", ErrNotLoggedIn, true},
		{"500 api error", NewAPIError(500, "boom"), false},
		{"plain error", errors.New("nope"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthFailure(tt.err); got != tt.want {
				t.Errorf("IsAuthFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsConnectionFailure(t *testing.T) {
	if !IsConnectionFailure(WrapAPIError("/user/cart", errors.New("refused"))) {
		t.Error("transport-level APIError should be a connection failure")
	}
	if IsConnectionFailure(NewAPIError(500, "boom")) {
		t.Error("answered request should not be a connection failure")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{"server text wins", NewAPIError(409, "out of stock"), "Order failed", "out of stock"},
		{"blank server text", NewAPIError(500, ""), "Order failed", "Order failed"},
		{"validation text", NewValidationError("email", "email is required"), "Failed", "email is required"},
		{"plain error", errors.New("dial tcp"), "Something went wrong", "Something went wrong"},
		{"nil", nil, "Something went wrong", "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, tt.fallback); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
