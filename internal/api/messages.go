package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// Messages returns every message to and from number inside w,
// normalized and sorted most recent first, with the same merge and
// tie-break semantics as Calls.
func (s *Session) Messages(ctx context.Context, number string, w types.QueryWindow) ([]types.Record, error) {
	var out []types.Record
	for _, r := range []role{roleTo, roleFrom} {
		recs, err := s.messagesFor(ctx, r, number, w)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	sortRecords(out)
	return out, nil
}

// CountMessagesFrom reports how many messages originated from number
// inside w. The activity probe deliberately checks only this direction.
func (s *Session) CountMessagesFrom(ctx context.Context, number string, w types.QueryWindow) (int, error) {
	recs, err := s.messagesFor(ctx, roleFrom, number, w)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (s *Session) messagesFor(ctx context.Context, r role, number string, w types.QueryWindow) ([]types.Record, error) {
	params := windowParams(r, number, "DateSent", w)
	var out []types.Record
	err := s.fetchAll(ctx, "messages", s.base()+"/Messages.json", params, func(body []byte) (string, error) {
		var page struct {
			Messages    []rawMessage `json:"messages"`
			NextPageURI string       `json:"next_page_uri"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("decode messages page: %w", err)
		}
		for _, rm := range page.Messages {
			out = append(out, normalizeMessage(rm))
		}
		return page.NextPageURI, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
