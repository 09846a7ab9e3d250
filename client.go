// Package twiliomanager is a read-only client for inspecting call and
// message activity on a Twilio account: windowed bidirectional lookups,
// paginated resource listing, per-record detail fetches and an
// inactive-number scan.
//
// The client is deliberately sequential: pages and directional queries
// are fetched one at a time, and every operation either completes in
// full or fails as a whole. No partial results are ever returned.
package twiliomanager

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"time"

	"github.com/jmhjr316-Git/twilio-manager/internal/api"
	"github.com/jmhjr316-Git/twilio-manager/internal/scan"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

const defaultHost = "https://api.twilio.com"

// Client talks to one account. It holds no result state; every call
// re-fetches from zero.
type Client struct {
	http     *http.Client
	host     string
	insecure bool
	attempts int
	delay    time.Duration
	session  *api.Session
}

// New builds a client for one account. The credential shape is
// validated here so a typo fails fast instead of as a 401 later.
// Additional knobs are provided via functional options.
func New(accountSID, authToken string, opts ...Option) (*Client, error) {
	cred := types.Credential{AccountSID: accountSID, AuthToken: authToken}
	if err := types.ValidateCredential(cred); err != nil {
		return nil, err
	}

	c := &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		host: defaultHost,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.insecure {
		c.installInsecureTransport()
	}

	c.session = &api.Session{
		HTTP:     c.http,
		Host:     c.host,
		Cred:     cred,
		Attempts: c.attempts,
		Delay:    c.delay,
	}
	return c, nil
}

// installInsecureTransport swaps the base transport for one that skips
// certificate verification, keeping any debug wrapper on top.
func (c *Client) installInsecureTransport() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	if dt, ok := c.http.Transport.(*debugTransport); ok {
		dt.base = t
		return
	}
	c.http.Transport = t
}

// --------------------------------------------------------------------
// Lookup operations - delegated to internal/api
// --------------------------------------------------------------------

// Calls returns every call to and from number inside w, most recent
// first. number must already be E.164; see FormatPhoneNumber.
func (c *Client) Calls(ctx context.Context, number string, w QueryWindow) ([]Record, error) {
	if err := types.RequireE164(number); err != nil {
		return nil, err
	}
	return c.session.Calls(ctx, number, w)
}

// Messages returns every message to and from number inside w, most
// recent first.
func (c *Client) Messages(ctx context.Context, number string, w QueryWindow) ([]Record, error) {
	if err := types.RequireE164(number); err != nil {
		return nil, err
	}
	return c.session.Messages(ctx, number, w)
}

// IncomingNumbers lists every phone number on the account.
func (c *Client) IncomingNumbers(ctx context.Context) ([]IncomingNumber, error) {
	return c.session.IncomingNumbers(ctx)
}

// CallEvents returns the event log for one call.
func (c *Client) CallEvents(ctx context.Context, callSID string) ([]map[string]any, error) {
	return c.session.CallEvents(ctx, callSID)
}

// MessageDetails returns the full record for one message.
func (c *Client) MessageDetails(ctx context.Context, messageSID string) (map[string]any, error) {
	return c.session.MessageDetails(ctx, messageSID)
}

// NumberConfig returns the raw configuration document for one incoming
// number.
func (c *Client) NumberConfig(ctx context.Context, numberSID string) (map[string]any, error) {
	return c.session.NumberConfig(ctx, numberSID)
}

// --------------------------------------------------------------------
// Activity scan - delegated to internal/scan
// --------------------------------------------------------------------

// ScanInactive walks every number on the account and reports the ones
// with no qualifying activity in the trailing window of days days.
// onProgress, if non-nil, is invoked after each number; the first
// error anywhere aborts the whole scan.
func (c *Client) ScanInactive(ctx context.Context, days int, onProgress func(ScanProgress)) (*ScanResult, error) {
	opts := []scan.Option{}
	if onProgress != nil {
		opts = append(opts, scan.WithProgress(onProgress))
	}
	return scan.New(c.session, days, opts...).Run(ctx)
}

// debugLoggingRequested checks if HTTP debug logging should be enabled
// via TWILIO_MANAGER_DEBUG=true or DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("TWILIO_MANAGER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
