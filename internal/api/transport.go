// Package api issues authenticated requests against the Twilio
// 2010-04-01 REST API: a retrying GET transport, a cursor-following
// paginator and per-resource fetchers that decode and normalize raw
// records at the boundary.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

const (
	apiVersion      = "2010-04-01"
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// Session carries everything needed to call one account's API. It is
// cheap to construct and holds no state between requests; each request
// re-applies the credential.
type Session struct {
	HTTP *http.Client
	Host string // scheme://host, e.g. "https://api.twilio.com"
	Cred types.Credential

	// Retry policy for transient failures. Zero values mean the
	// defaults: 3 attempts total with a 1s pause between them.
	Attempts int
	Delay    time.Duration
}

func (s *Session) base() string {
	return s.Host + "/" + apiVersion + "/Accounts/" + s.Cred.AccountSID
}

// get issues one authenticated GET, retrying timeouts and connection
// failures up to the attempt budget with a constant pause between
// tries. Any other transport error surfaces immediately. A non-2xx
// response is a successful transport call here; the paginator decides
// what to do with the status.
func (s *Session) get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errs.NewValidation("bad request URL %q: %v", rawURL, err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.SetBasicAuth(s.Cred.AccountSID, s.Cred.AuthToken)

	attempts := s.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	delay := s.Delay
	if delay <= 0 {
		delay = defaultDelay
	}

	var (
		resp      *http.Response
		tries     int
		transient string // "timed out" or "connection failed"
	)
	op := func() error {
		tries++
		if tries > 1 {
			retriesTotal.Inc()
		}
		r, doErr := s.HTTP.Do(req)
		if doErr != nil {
			switch {
			case isTimeout(doErr):
				transient = "timed out"
				return doErr
			case isConnFailure(doErr):
				transient = "connection failed"
				return doErr
			default:
				return backoff.Permanent(doErr)
			}
		}
		resp = r
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, bo); err != nil {
		requestsTotal.WithLabelValues("network_error").Inc()
		if transient != "" {
			return nil, errs.NewNetwork(tries, fmt.Errorf("%s after %d attempts: %w", transient, tries, err))
		}
		return nil, errs.NewNetwork(tries, err)
	}
	requestsTotal.WithLabelValues("ok").Inc()
	return resp, nil
}

// isTimeout reports whether err is a request timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isConnFailure reports whether err is a failure to reach the remote
// end at all (refused, reset, unreachable). Checked after isTimeout
// because dial timeouts satisfy both.
func isConnFailure(err error) bool {
	var oe *net.OpError
	return errors.As(err, &oe)
}
