package twiliomanager

import (
	"github.com/jmhjr316-Git/twilio-manager/internal/scan"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// Public type aliases so consumers can import only this package.
type (
	// Domain entities
	Credential      = types.Credential
	Record          = types.Record
	Direction       = types.Direction
	Kind            = types.Kind
	QueryWindow     = types.QueryWindow
	ActivitySummary = types.ActivitySummary
	IncomingNumber  = types.IncomingNumber
	Severity        = types.Severity

	// Scan surface
	ScanProgress = scan.Progress
	ScanResult   = scan.Result
	ScanState    = scan.State
)

const (
	Inbound  = types.Inbound
	Outbound = types.Outbound

	KindCall    = types.KindCall
	KindMessage = types.KindMessage

	SeverityNeutral = types.SeverityNeutral
	SeverityWarning = types.SeverityWarning
	SeverityError   = types.SeverityError
)

// FormatPhoneNumber coerces common US number spellings into E.164; see
// the rules on types.FormatPhoneNumber. Callers are expected to run
// operator input through this before Calls or Messages.
func FormatPhoneNumber(raw string) (string, error) {
	return types.FormatPhoneNumber(raw)
}

// StatusSeverity classifies a record's status for display.
func StatusSeverity(status, errorCode string) Severity {
	return types.StatusSeverity(status, errorCode)
}
