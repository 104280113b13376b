package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Toyhaven configuration
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	PayPal   PayPalConfig   `mapstructure:"paypal"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Paths    PathsConfig    `mapstructure:"paths"`
}

// APIConfig controls how the backend is reached
type APIConfig struct {
	// BaseURL is the base path of the backend REST API
	BaseURL string `mapstructure:"base_url"`
	// Origin is the backend origin used to absolutize server-relative image paths
	Origin string `mapstructure:"origin"`
	// TimeoutSeconds is the per-request timeout in seconds
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// CheckoutConfig controls checkout behavior
type CheckoutConfig struct {
	// ShippingFee is the flat shipping fee applied to non-empty carts.
	// The backend does not supply this; it is client configuration.
	ShippingFee float64 `mapstructure:"shipping_fee"`
	// SuccessRedirectSeconds is how long the success screen is shown
	// before redirecting to the order list
	SuccessRedirectSeconds int `mapstructure:"success_redirect_seconds"`
}

// PayPalConfig controls the hosted-payment flow
type PayPalConfig struct {
	// ClientID is the PayPal REST client id. Empty disables the PAYPAL
	// payment method in checkout.
	ClientID string `mapstructure:"client_id"`
	// Currency is the checkout currency code
	Currency string `mapstructure:"currency"`
	// Sandbox selects the sandbox approval host instead of the live one
	Sandbox bool `mapstructure:"sandbox"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// PageSize is the number of rows per page in list views
	PageSize int `mapstructure:"page_size"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where Toyhaven stores data
type PathsConfig struct {
	// StateDir is the directory for persisted credentials and logs.
	// If empty, defaults to the config directory. Supports ~ expansion.
	StateDir string `mapstructure:"state_dir"`
}

// ResolveStateDir returns the resolved state directory path.
func (p *PathsConfig) ResolveStateDir() string {
	if p.StateDir == "" {
		return ConfigDir()
	}

	path := p.StateDir
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// Timeout returns the per-request timeout as a duration.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SuccessRedirectDelay returns the success-screen delay as a duration.
func (c *CheckoutConfig) SuccessRedirectDelay() time.Duration {
	return time.Duration(c.SuccessRedirectSeconds) * time.Second
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			Origin:         "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		Checkout: CheckoutConfig{
			ShippingFee:            5.00,
			SuccessRedirectSeconds: 4,
		},
		PayPal: PayPalConfig{
			Currency: "USD",
			Sandbox:  true,
		},
		TUI: TUIConfig{
			PageSize: 10,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.origin", defaults.API.Origin)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	// Checkout defaults
	viper.SetDefault("checkout.shipping_fee", defaults.Checkout.ShippingFee)
	viper.SetDefault("checkout.success_redirect_seconds", defaults.Checkout.SuccessRedirectSeconds)

	// PayPal defaults
	viper.SetDefault("paypal.client_id", defaults.PayPal.ClientID)
	viper.SetDefault("paypal.currency", defaults.PayPal.Currency)
	viper.SetDefault("paypal.sandbox", defaults.PayPal.Sandbox)

	// TUI defaults
	viper.SetDefault("tui.page_size", defaults.TUI.PageSize)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Paths defaults
	viper.SetDefault("paths.state_dir", defaults.Paths.StateDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toyhaven")
	}
	// Fall back to ~/.config/toyhaven
	home, err := os.UserHomeDir()
	if err != nil {
		return ".toyhaven"
	}
	return filepath.Join(home, ".config", "toyhaven")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
