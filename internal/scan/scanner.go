// Package scan implements the inactive-number sweep: list every number
// on the account, probe each for recent activity, and keep the ones
// with none. One failure anywhere aborts the whole scan.
package scan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// Source is the slice of the API the scanner needs. The probe is
// deliberately narrower than the general lookup: it counts only calls
// terminating at the number and messages originating from it.
type Source interface {
	IncomingNumbers(ctx context.Context) ([]types.IncomingNumber, error)
	CountCallsTo(ctx context.Context, number string, w types.QueryWindow) (int, error)
	CountMessagesFrom(ctx context.Context, number string, w types.QueryWindow) (int, error)
}

// State tracks where a scan is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateListing
	StateScanning
	StateDone
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListing:
		return "listing"
	case StateScanning:
		return "scanning"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress is emitted after each number is checked.
type Progress struct {
	Index  int // 1-based
	Total  int
	Number string
}

// Result is the terminal summary of a completed scan. Active numbers
// are dropped, not retained.
type Result struct {
	Inactive []types.ActivitySummary
	Total    int
}

// Option configures a Scanner during construction.
type Option func(*Scanner)

// WithProgress registers a callback invoked after each number. It runs
// on the scanning goroutine; a slow callback slows the scan.
func WithProgress(fn func(Progress)) Option {
	return func(s *Scanner) { s.onProgress = fn }
}

// WithLogger replaces the package-level default logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// WithClock overrides the scan's notion of now. Test seam.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

// Scanner drives one inactive-number sweep. It is single-use: build,
// Run, discard.
type Scanner struct {
	src        Source
	days       int
	onProgress func(Progress)
	log        zerolog.Logger
	now        func() time.Time
	state      State
}

// New builds a scanner over a trailing window of days days.
func New(src Source, days int, opts ...Option) *Scanner {
	s := &Scanner{
		src:   src,
		days:  days,
		log:   log.Logger,
		now:   time.Now,
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the scanner's current lifecycle state.
func (s *Scanner) State() State { return s.state }

// Run drives the scan to a terminal state. Numbers are probed strictly
// in list order, one at a time; the first error aborts the whole scan
// and no partial summary is produced for the number in flight.
// Cancellation is honored between numbers, never mid-request.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	if s.days <= 0 {
		s.state = StateFailed
		return nil, errs.NewValidation("scan window must be at least 1 day, got %d", s.days)
	}

	logger := s.log.With().Str("run_id", uuid.NewString()).Logger()

	s.state = StateListing
	numbers, err := s.src.IncomingNumbers(ctx)
	if err != nil {
		return nil, s.fail(logger, err)
	}
	logger.Info().Int("numbers", len(numbers)).Int("days", s.days).Msg("scan started")

	// Probe up to one day past now so records landing today are not
	// missed to clock skew between us and the provider.
	now := s.now()
	window := types.QueryWindow{From: now.AddDate(0, 0, -s.days), To: now}

	s.state = StateScanning
	res := &Result{Total: len(numbers)}
	for i, num := range numbers {
		if err := ctx.Err(); err != nil {
			return nil, s.fail(logger, err)
		}

		calls, err := s.src.CountCallsTo(ctx, num.PhoneNumber, window)
		if err != nil {
			return nil, s.fail(logger, err)
		}
		messages, err := s.src.CountMessagesFrom(ctx, num.PhoneNumber, window)
		if err != nil {
			return nil, s.fail(logger, err)
		}

		numbersCheckedTotal.Inc()
		sum := summarize(num, calls, messages)
		if sum.IsInactive {
			res.Inactive = append(res.Inactive, sum)
		}
		logger.Debug().
			Str("number", num.PhoneNumber).
			Int("calls", calls).
			Int("messages", messages).
			Msg("number checked")

		if s.onProgress != nil {
			s.onProgress(Progress{Index: i + 1, Total: len(numbers), Number: num.PhoneNumber})
		}
	}

	s.state = StateDone
	scansTotal.WithLabelValues("done").Inc()
	logger.Info().
		Int("inactive", len(res.Inactive)).
		Int("total", res.Total).
		Msg("scan complete")
	return res, nil
}

// summarize classifies one probed number. Inactive means zero
// qualifying activity of either kind in the window.
func summarize(num types.IncomingNumber, calls, messages int) types.ActivitySummary {
	return types.ActivitySummary{
		PhoneNumber:   num.PhoneNumber,
		FriendlyName:  num.FriendlyName,
		CallCount:     calls,
		MessageCount:  messages,
		TotalActivity: calls + messages,
		IsInactive:    calls+messages == 0,
	}
}

func (s *Scanner) fail(logger zerolog.Logger, err error) error {
	s.state = StateFailed
	scansTotal.WithLabelValues("failed").Inc()
	logger.Error().Err(err).Msg("scan aborted")
	return err
}
