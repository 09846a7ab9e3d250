package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
)

// stamp renders an epoch second in the provider's wire layout, so the
// resulting record sorts with exactly that key.
func stamp(sec int) string {
	return fmt.Sprintf("Thu, 01 Jan 1970 00:%02d:%02d +0000", sec/60, sec%60)
}

func callJSON(sid string, sec int) string {
	return fmt.Sprintf(`{"sid":%q,"direction":"inbound","from":"+19195550100","to":"+19195550101","start_time":%q,"duration":"10","status":"completed"}`, sid, stamp(sec))
}

func TestCalls_MergesBothDirectionsMostRecentFirst(t *testing.T) {
	t.Parallel()

	// To-query yields keys 10 and 3; From-query yields 5 and 3. The
	// stable merge must order 10, 5, then the To-side 3 ahead of the
	// From-side 3.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("To") == "+19195550101":
			fmt.Fprintf(w, `{"calls":[%s,%s],"next_page_uri":""}`,
				callJSON("CAdest10", 10), callJSON("CAdest3", 3))
		case q.Get("From") == "+19195550101":
			fmt.Fprintf(w, `{"calls":[%s,%s],"next_page_uri":""}`,
				callJSON("CAorig5", 5), callJSON("CAorig3", 3))
		default:
			t.Errorf("query filters on neither endpoint: %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	s := serverSession(t, handler)

	recs, err := s.Calls(context.Background(), "+19195550101", testWindow())
	if err != nil {
		t.Fatalf("Calls: %v", err)
	}
	want := []string{"CAdest10", "CAorig5", "CAdest3", "CAorig3"}
	if len(recs) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(recs))
	}
	for i, sid := range want {
		if recs[i].SID != sid {
			t.Fatalf("position %d: expected %s, got %s (keys %v)", i, sid, recs[i].SID, recs)
		}
	}
}

func TestCalls_WindowEndIsWidenedOneDay(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("StartTime>"); got != "2024-05-01" {
			t.Errorf("expected start bound 2024-05-01, got %q", got)
		}
		// Inclusive caller end 2024-05-10 becomes the provider's
		// exclusive 2024-05-11.
		if got := q.Get("StartTime<"); got != "2024-05-11" {
			t.Errorf("expected widened end bound 2024-05-11, got %q", got)
		}
		fmt.Fprint(w, `{"calls":[],"next_page_uri":""}`)
	})
	s := serverSession(t, handler)

	if _, err := s.Calls(context.Background(), "+19195550101", testWindow()); err != nil {
		t.Fatalf("Calls: %v", err)
	}
}

func TestCalls_OneDirectionFailingFailsTheWhole(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("From") != "" {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, "bad gateway")
			return
		}
		fmt.Fprintf(w, `{"calls":[%s],"next_page_uri":""}`, callJSON("CAdest1", 1))
	})
	s := serverSession(t, handler)

	recs, err := s.Calls(context.Background(), "+19195550101", testWindow())
	if err == nil {
		t.Fatal("expected error when the origin query fails")
	}
	if recs != nil {
		t.Fatalf("no partial result on failure, got %d records", len(recs))
	}
	if !errs.IsKind(err, errs.API) {
		t.Fatalf("expected API error, got %v", err)
	}
}

func TestCountCallsTo_ProbesOnlyTheDestinationSide(t *testing.T) {
	t.Parallel()

	var sawFrom bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("From") != "" {
			sawFrom = true
		}
		fmt.Fprintf(w, `{"calls":[%s,%s],"next_page_uri":""}`,
			callJSON("CA1", 1), callJSON("CA2", 2))
	})
	s := serverSession(t, handler)

	n, err := s.CountCallsTo(context.Background(), "+19195550101", testWindow())
	if err != nil {
		t.Fatalf("CountCallsTo: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
	if sawFrom {
		t.Fatal("destination probe must not issue a From-query")
	}
}
