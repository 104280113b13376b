package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default API config
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:5000/api")
	}
	if cfg.API.Origin != "http://localhost:5000" {
		t.Errorf("API.Origin = %q, want %q", cfg.API.Origin, "http://localhost:5000")
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("API.TimeoutSeconds = %d, want 30", cfg.API.TimeoutSeconds)
	}

	// Verify default checkout config
	if cfg.Checkout.ShippingFee != 5.00 {
		t.Errorf("Checkout.ShippingFee = %v, want 5.00", cfg.Checkout.ShippingFee)
	}
	if cfg.Checkout.SuccessRedirectSeconds != 4 {
		t.Errorf("Checkout.SuccessRedirectSeconds = %d, want 4", cfg.Checkout.SuccessRedirectSeconds)
	}

	// Verify default PayPal config
	if cfg.PayPal.ClientID != "" {
		t.Errorf("PayPal.ClientID = %q, want empty", cfg.PayPal.ClientID)
	}
	if cfg.PayPal.Currency != "USD" {
		t.Errorf("PayPal.Currency = %q, want USD", cfg.PayPal.Currency)
	}

	// Verify default TUI config
	if cfg.TUI.PageSize != 10 {
		t.Errorf("TUI.PageSize = %d, want 10", cfg.TUI.PageSize)
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("Default() config should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestAPIConfig_Timeout(t *testing.T) {
	cfg := APIConfig{TimeoutSeconds: 45}
	if got := cfg.Timeout(); got != 45*time.Second {
		t.Errorf("Timeout() = %v, want 45s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "empty base url",
			mutate: func(c *Config) { c.API.BaseURL = "" },
			field:  "api.base_url",
		},
		{
			name:   "relative base url",
			mutate: func(c *Config) { c.API.BaseURL = "/api" },
			field:  "api.base_url",
		},
		{
			name:   "bad origin",
			mutate: func(c *Config) { c.API.Origin = "localhost:5000" },
			field:  "api.origin",
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.API.TimeoutSeconds = 0 },
			field:  "api.timeout_seconds",
		},
		{
			name:   "negative shipping fee",
			mutate: func(c *Config) { c.Checkout.ShippingFee = -1 },
			field:  "checkout.shipping_fee",
		},
		{
			name:   "unknown currency",
			mutate: func(c *Config) { c.PayPal.Currency = "ZZZ" },
			field:  "paypal.currency",
		},
		{
			name:   "page size too small",
			mutate: func(c *Config) { c.TUI.PageSize = 0 },
			field:  "tui.page_size",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			field:  "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}

			found := false
			for _, e := range errs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error for field %q, got: %v", tt.field, ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "tui.page_size", Value: 0, Message: "must be between 1 and 100"},
		{Field: "logging.level", Value: "verbose", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected non-empty error message")
	}
	if got := len(ValidationErrors{}); got != 0 {
		t.Errorf("empty ValidationErrors length = %d", got)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should produce empty message")
	}
}

func TestResolveStateDir(t *testing.T) {
	p := PathsConfig{}
	if got := p.ResolveStateDir(); got != ConfigDir() {
		t.Errorf("empty StateDir should resolve to ConfigDir(), got %q", got)
	}

	p = PathsConfig{StateDir: "/var/lib/toyhaven"}
	if got := p.ResolveStateDir(); got != "/var/lib/toyhaven" {
		t.Errorf("absolute StateDir = %q, want /var/lib/toyhaven", got)
	}
}
