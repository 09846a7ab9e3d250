package twiliomanager

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const (
	testSID   = "AC00000000000000000000000000000000"
	testToken = "tttttttttttttttttttttttttttttttt"
)

func TestNew_RejectsMalformedCredentials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sid  string
		tok  string
	}{
		{"short sid", "AC123", testToken},
		{"wrong prefix", "XX00000000000000000000000000000000", testToken},
		{"short token", testSID, "nope"},
	}
	for _, tc := range cases {
		_, err := New(tc.sid, tc.tok)
		if !IsValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestNew_OptionErrorsSurface(t *testing.T) {
	t.Parallel()

	if _, err := New(testSID, testToken, WithHTTPTimeout(0)); err == nil {
		t.Error("zero timeout should be rejected")
	}
	if _, err := New(testSID, testToken, WithHost("")); err == nil {
		t.Error("empty host should be rejected")
	}
	if _, err := New(testSID, testToken, WithRetryPolicy(0, time.Second)); err == nil {
		t.Error("zero attempts should be rejected")
	}
}

func TestClient_LookupRequiresE164(t *testing.T) {
	t.Parallel()

	c, err := New(testSID, testToken)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Calls(context.Background(), "9195551234", QueryWindow{}); !IsValidationError(err) {
		t.Fatalf("Calls without E.164 number: expected validation error, got %v", err)
	}
	if _, err := c.Messages(context.Background(), "9195551234", QueryWindow{}); !IsValidationError(err) {
		t.Fatalf("Messages without E.164 number: expected validation error, got %v", err)
	}
}

func TestClient_CallsEndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != testSID || pass != testToken {
			t.Errorf("request not authenticated with the account credential")
		}
		if !strings.HasPrefix(r.URL.Path, "/2010-04-01/Accounts/"+testSID+"/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("To") != "" {
			fmt.Fprint(w, `{"calls":[{"sid":"CA1","direction":"inbound","from":"+19195550100","to":"+19195550101","start_time":"Thu, 01 Jan 1970 00:00:05 +0000","duration":"42","status":"completed"}],"next_page_uri":""}`)
			return
		}
		fmt.Fprint(w, `{"calls":[],"next_page_uri":""}`)
	}))
	defer srv.Close()

	c, err := New(testSID, testToken,
		WithHost(srv.URL),
		WithRetryPolicy(1, time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	recs, err := c.Calls(context.Background(), "+19195550101", QueryWindow{From: day, To: day})
	if err != nil {
		t.Fatalf("Calls: %v", err)
	}
	if len(recs) != 1 || recs[0].SID != "CA1" || recs[0].Kind != KindCall {
		t.Fatalf("unexpected records %+v", recs)
	}
	if recs[0].Direction != Inbound || recs[0].Duration != "42" {
		t.Fatalf("record not normalized: %+v", recs[0])
	}
}

func TestClient_ScanInactiveEndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/IncomingPhoneNumbers.json"):
			fmt.Fprint(w, `{"incoming_phone_numbers":[{"sid":"PN1","phone_number":"+19195550101","friendly_name":"main"},{"sid":"PN2","phone_number":"+19195550102","friendly_name":"quiet"}],"next_page_uri":""}`)
		case strings.HasSuffix(r.URL.Path, "/Calls.json"):
			if r.URL.Query().Get("To") == "+19195550101" {
				fmt.Fprint(w, `{"calls":[{"sid":"CA1","start_time":"Thu, 01 Jan 1970 00:00:05 +0000"}],"next_page_uri":""}`)
				return
			}
			fmt.Fprint(w, `{"calls":[],"next_page_uri":""}`)
		case strings.HasSuffix(r.URL.Path, "/Messages.json"):
			fmt.Fprint(w, `{"messages":[],"next_page_uri":""}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, err := New(testSID, testToken, WithHost(srv.URL), WithRetryPolicy(1, time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var seen int
	res, err := c.ScanInactive(context.Background(), 30, func(ScanProgress) { seen++ })
	if err != nil {
		t.Fatalf("ScanInactive: %v", err)
	}
	if res.Total != 2 || seen != 2 {
		t.Fatalf("expected 2 numbers scanned, got total=%d progress=%d", res.Total, seen)
	}
	if len(res.Inactive) != 1 || res.Inactive[0].PhoneNumber != "+19195550102" {
		t.Fatalf("expected only the quiet number, got %+v", res.Inactive)
	}
}

func TestFormatPhoneNumber_Reexport(t *testing.T) {
	t.Parallel()

	got, err := FormatPhoneNumber("9195551234")
	if err != nil {
		t.Fatalf("FormatPhoneNumber: %v", err)
	}
	if got != "+19195551234" {
		t.Fatalf("expected +19195551234, got %q", got)
	}
	if _, err := FormatPhoneNumber("555"); !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStatusSeverity_Reexport(t *testing.T) {
	t.Parallel()

	if s := StatusSeverity("completed", ""); s != SeverityNeutral {
		t.Fatalf("completed should be neutral, got %s", s)
	}
	if s := StatusSeverity("queued", "30003"); s != SeverityError {
		t.Fatalf("queued with an error code should be an error, got %s", s)
	}
}
