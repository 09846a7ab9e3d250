package twiliomanager

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New. Options must
// be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout. This is a
// coarse safety net bounding one HTTP request end to end; pagination
// and scans have no overall deadline beyond their per-request budgets.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHost points the client at a different API host. Useful for tests
// and proxies; the default is the public Twilio endpoint.
func WithHost(host string) Option {
	return func(c *Client) error {
		if host == "" {
			return fmt.Errorf("host must not be empty")
		}
		c.host = host
		return nil
	}
}

// WithInsecureTLS disables certificate verification. This is an
// explicit operator trust decision for networks that intercept TLS;
// it is never enabled implicitly.
func WithInsecureTLS(enabled bool) Option {
	return func(c *Client) error {
		c.insecure = enabled
		return nil
	}
}

// WithRetryPolicy overrides the transient-failure retry budget: total
// attempts per request and the fixed pause between them.
func WithRetryPolicy(attempts int, delay time.Duration) Option {
	return func(c *Client) error {
		if attempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		if delay < 0 {
			return fmt.Errorf("retry delay must be >= 0")
		}
		c.attempts = attempts
		c.delay = delay
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and
// response is dumped to the log when enabled is true. Dumps include
// auth headers; do not enable outside development.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
