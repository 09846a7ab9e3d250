package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
)

// CallEvents returns the event log for one call. Detail endpoints are
// not paginated; events stay opaque maps because their shape varies by
// event name and they are rendered verbatim.
func (s *Session) CallEvents(ctx context.Context, callSID string) ([]map[string]any, error) {
	var doc struct {
		Events []map[string]any `json:"events"`
	}
	url := s.base() + "/Calls/" + callSID + "/Events.json"
	if err := s.getJSON(ctx, url, &doc); err != nil {
		return nil, err
	}
	return doc.Events, nil
}

// MessageDetails returns the full record for one message, including
// fields the list view drops (full body, price, segments, media).
func (s *Session) MessageDetails(ctx context.Context, messageSID string) (map[string]any, error) {
	var doc map[string]any
	url := s.base() + "/Messages/" + messageSID + ".json"
	if err := s.getJSON(ctx, url, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// NumberConfig returns the raw configuration document for one incoming
// number (voice/SMS URLs, capabilities, trunk and application SIDs).
func (s *Session) NumberConfig(ctx context.Context, numberSID string) (map[string]any, error) {
	var doc map[string]any
	url := s.base() + "/IncomingPhoneNumbers/" + numberSID + ".json"
	if err := s.getJSON(ctx, url, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// getJSON fetches a single non-paginated document.
func (s *Session) getJSON(ctx context.Context, url string, out any) error {
	resp, err := s.get(ctx, url, nil)
	if err != nil {
		return err
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return errs.NewNetwork(1, fmt.Errorf("reading response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewAPI(resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
