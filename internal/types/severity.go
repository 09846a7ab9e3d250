package types

// Severity classifies a record's status for display. It is computed on
// demand rather than stored on the record.
type Severity int

const (
	SeverityNeutral Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNeutral:
		return "neutral"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusSeverity maps a record's status and error code to a severity.
// Terminal success statuses are neutral; an error code or a terminal
// failure status is an error; everything else (queued, ringing,
// sending, ...) is a warning.
func StatusSeverity(status, errorCode string) Severity {
	switch status {
	case "delivered", "completed", "received":
		return SeverityNeutral
	}
	if errorCode != "" {
		return SeverityError
	}
	switch status {
	case "failed", "canceled", "busy", "no-answer", "undelivered":
		return SeverityError
	}
	return SeverityWarning
}
