package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
)

// pageSize is the fixed page size requested on the first page of a
// windowed query; follow-up pages carry it inside the server cursor.
const pageSize = 100

// fetchAll walks a paginated list resource until the server stops
// returning a next-page URI. The first request carries params; every
// later request uses the server's cursor verbatim, re-rooted on the
// session host when it is a bare path. decode consumes one page body
// and returns the next-page URI, empty when exhausted.
//
// Any non-2xx page aborts the walk; pages already decoded are the
// caller's to discard, so a failed walk must never be surfaced as a
// partial result.
func (s *Session) fetchAll(ctx context.Context, resource, firstURL string, params url.Values, decode func(body []byte) (string, error)) error {
	pageURL := firstURL
	first := true
	for pageURL != "" {
		var p url.Values
		if first {
			p = params
			first = false
		}
		resp, err := s.get(ctx, pageURL, p)
		if err != nil {
			return err
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return errs.NewNetwork(1, fmt.Errorf("reading %s page: %w", resource, err))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return errs.NewAPI(resp.StatusCode, string(body))
		}
		next, err := decode(body)
		if err != nil {
			return err
		}
		pagesTotal.WithLabelValues(resource).Inc()
		if strings.HasPrefix(next, "/") {
			next = s.Host + next
		}
		pageURL = next
	}
	return nil
}
