package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// timeoutErr simulates a request timeout at the transport level.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

// flakyRT fails the first failN round trips with err, then succeeds.
type flakyRT struct {
	calls int
	failN int
	err   error
}

func (f *flakyRT) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls++
	if f.calls <= f.failN {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("{}")),
		Header:     make(http.Header),
	}, nil
}

// statusRT always answers with one status code.
type statusRT struct {
	calls  int
	status int
}

func (s *statusRT) RoundTrip(*http.Request) (*http.Response, error) {
	s.calls++
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader("oops")),
		Header:     make(http.Header),
	}, nil
}

func testSession(rt http.RoundTripper) *Session {
	return &Session{
		HTTP:     &http.Client{Transport: rt},
		Host:     "http://api.test",
		Cred:     types.Credential{AccountSID: "AC" + strings.Repeat("0", 32), AuthToken: strings.Repeat("t", 32)},
		Attempts: 3,
		Delay:    time.Millisecond,
	}
}

func TestGet_TimeoutsExhaustRetryBudget(t *testing.T) {
	t.Parallel()
	rt := &flakyRT{failN: 10, err: timeoutErr{}}
	s := testSession(rt)

	_, err := s.get(context.Background(), s.base()+"/Calls.json", nil)
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if rt.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", rt.calls)
	}
	if !errs.IsKind(err, errs.Network) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out after 3 attempts") {
		t.Fatalf("error should name the attempt count, got %q", err.Error())
	}
}

func TestGet_RecoversAfterOneTimeout(t *testing.T) {
	t.Parallel()
	rt := &flakyRT{failN: 1, err: timeoutErr{}}
	s := testSession(rt)

	resp, err := s.get(context.Background(), s.base()+"/Calls.json", nil)
	if err != nil {
		t.Fatalf("get after one timeout: %v", err)
	}
	_ = resp.Body.Close()
	if rt.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", rt.calls)
	}
}

func TestGet_ConnectionFailuresExhaustRetryBudget(t *testing.T) {
	t.Parallel()
	rt := &flakyRT{
		failN: 10,
		err:   &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")},
	}
	s := testSession(rt)

	_, err := s.get(context.Background(), s.base()+"/Calls.json", nil)
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if rt.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", rt.calls)
	}
	if !strings.Contains(err.Error(), "connection failed after 3 attempts") {
		t.Fatalf("error should name the attempt count, got %q", err.Error())
	}
}

func TestGet_OtherTransportErrorsAreNotRetried(t *testing.T) {
	t.Parallel()
	rt := &flakyRT{failN: 10, err: errors.New("tls: handshake failure")}
	s := testSession(rt)

	_, err := s.get(context.Background(), s.base()+"/Calls.json", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if rt.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", rt.calls)
	}
	if !errs.IsKind(err, errs.Network) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestGet_NonOKStatusIsNotRetried(t *testing.T) {
	t.Parallel()
	rt := &statusRT{status: http.StatusInternalServerError}
	s := testSession(rt)

	resp, err := s.get(context.Background(), s.base()+"/Calls.json", nil)
	if err != nil {
		t.Fatalf("non-2xx must be a successful transport call, got %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if rt.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", rt.calls)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestGet_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rt := &flakyRT{failN: 10, err: timeoutErr{}}
	s := testSession(rt)

	if _, err := s.get(ctx, s.base()+"/Calls.json", nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
