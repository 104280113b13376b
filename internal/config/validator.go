package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.base_url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidCurrencies returns the currency codes the hosted-payment flow accepts
func ValidCurrencies() []string {
	return []string{"USD", "EUR", "GBP", "AUD", "CAD", "INR"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateCheckout()...)
	errors = append(errors, c.validatePayPal()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute http(s) URL",
		})
	}

	if c.API.Origin != "" {
		if u, err := url.Parse(c.API.Origin); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "api.origin",
				Value:   c.API.Origin,
				Message: "must be an absolute http(s) URL",
			})
		}
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateCheckout() []ValidationError {
	var errors []ValidationError

	if c.Checkout.ShippingFee < 0 {
		errors = append(errors, ValidationError{
			Field:   "checkout.shipping_fee",
			Value:   c.Checkout.ShippingFee,
			Message: "must not be negative",
		})
	}

	if c.Checkout.SuccessRedirectSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "checkout.success_redirect_seconds",
			Value:   c.Checkout.SuccessRedirectSeconds,
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validatePayPal() []ValidationError {
	var errors []ValidationError

	if c.PayPal.Currency != "" && !slices.Contains(ValidCurrencies(), c.PayPal.Currency) {
		errors = append(errors, ValidationError{
			Field:   "paypal.currency",
			Value:   c.PayPal.Currency,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidCurrencies(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.PageSize < 1 || c.TUI.PageSize > 100 {
		errors = append(errors, ValidationError{
			Field:   "tui.page_size",
			Value:   c.TUI.PageSize,
			Message: "must be between 1 and 100",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
