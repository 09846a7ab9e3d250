package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Credential identifies one Twilio account. The core receives it by
// value per call and never persists it.
type Credential struct {
	AccountSID string
	AuthToken  string
}

// Kind tags a record as a call or a message.
type Kind string

const (
	KindCall    Kind = "call"
	KindMessage Kind = "message"
)

// Direction is the normalized direction of a record.
type Direction string

const (
	Inbound  Direction = "Inbound"
	Outbound Direction = "Outbound"
)

// Record is the canonical form of one call or message, decoded and
// normalized once at the API boundary so downstream code never inspects
// raw provider payloads.
type Record struct {
	Kind      Kind
	SID       string
	Direction Direction
	From      string
	To        string

	// When is the local-time display string, or the raw provider
	// timestamp when parsing failed.
	When string

	// SortKey is the record's Unix time in seconds. 0 means the
	// timestamp was unparsable; such records sort as earliest.
	SortKey int64

	Status string

	// Call-only.
	Duration string

	// Message-only.
	BodyPreview  string
	ErrorCode    string
	ErrorMessage string
}

// QueryWindow bounds a lookup by date. Both endpoints are required; the
// end date is inclusive and widened by one day at the API boundary
// because the provider filters at date granularity with an exclusive
// upper bound. From > To is not rejected; it simply matches nothing.
type QueryWindow struct {
	From time.Time
	To   time.Time
}

// ActivitySummary is the per-number result of an activity scan.
type ActivitySummary struct {
	PhoneNumber   string
	FriendlyName  string
	CallCount     int
	MessageCount  int
	TotalActivity int
	IsInactive    bool
}

// IncomingNumber is one phone number owned by the account.
type IncomingNumber struct {
	SID          string
	PhoneNumber  string
	FriendlyName string
}
