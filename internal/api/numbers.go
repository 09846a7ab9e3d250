package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// IncomingNumbers lists every phone number on the account. This is a
// flat paginated list, not a windowed query, so there is no directional
// split.
func (s *Session) IncomingNumbers(ctx context.Context) ([]types.IncomingNumber, error) {
	var out []types.IncomingNumber
	err := s.fetchAll(ctx, "incoming_phone_numbers", s.base()+"/IncomingPhoneNumbers.json", nil, func(body []byte) (string, error) {
		var page struct {
			IncomingPhoneNumbers []struct {
				SID          string `json:"sid"`
				PhoneNumber  string `json:"phone_number"`
				FriendlyName string `json:"friendly_name"`
			} `json:"incoming_phone_numbers"`
			NextPageURI string `json:"next_page_uri"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("decode incoming numbers page: %w", err)
		}
		for _, n := range page.IncomingPhoneNumbers {
			out = append(out, types.IncomingNumber{
				SID:          n.SID,
				PhoneNumber:  n.PhoneNumber,
				FriendlyName: n.FriendlyName,
			})
		}
		return page.NextPageURI, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
