package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// role selects which endpoint of a record a directional query filters
// on. The two roles are disjoint, so the same record can only show up
// in both when a number calls or texts itself.
type role string

const (
	roleTo   role = "To"
	roleFrom role = "From"
)

const dateLayout = "2006-01-02"

// Calls returns every call to and from number inside w, normalized and
// sorted most recent first. Ties keep insertion order, so records from
// the To-query stay ahead of records from the From-query. Either
// directional query failing fails the whole aggregation.
func (s *Session) Calls(ctx context.Context, number string, w types.QueryWindow) ([]types.Record, error) {
	var out []types.Record
	for _, r := range []role{roleTo, roleFrom} {
		recs, err := s.callsFor(ctx, r, number, w)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	sortRecords(out)
	return out, nil
}

// CountCallsTo reports how many calls terminated at number inside w.
// The activity probe deliberately checks only this direction.
func (s *Session) CountCallsTo(ctx context.Context, number string, w types.QueryWindow) (int, error) {
	recs, err := s.callsFor(ctx, roleTo, number, w)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (s *Session) callsFor(ctx context.Context, r role, number string, w types.QueryWindow) ([]types.Record, error) {
	params := windowParams(r, number, "StartTime", w)
	var out []types.Record
	err := s.fetchAll(ctx, "calls", s.base()+"/Calls.json", params, func(body []byte) (string, error) {
		var page struct {
			Calls       []rawCall `json:"calls"`
			NextPageURI string    `json:"next_page_uri"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("decode calls page: %w", err)
		}
		for _, rc := range page.Calls {
			out = append(out, normalizeCall(rc))
		}
		return page.NextPageURI, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// windowParams builds the first-page query for a directional, windowed
// list. The caller-selected end date is inclusive, so it is widened by
// one day before being used as the provider's exclusive upper bound.
func windowParams(r role, number, dateField string, w types.QueryWindow) url.Values {
	params := url.Values{}
	params.Set(string(r), number)
	params.Set(dateField+">", w.From.Format(dateLayout))
	params.Set(dateField+"<", w.To.AddDate(0, 0, 1).Format(dateLayout))
	params.Set("PageSize", strconv.Itoa(pageSize))
	return params
}

// sortRecords orders most recent first. The sort is stable so equal
// (or zero) sort keys preserve relative insertion order.
func sortRecords(rs []types.Record) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].SortKey > rs[j].SortKey })
}
