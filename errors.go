package twiliomanager

import (
	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
)

// IsNetworkError reports whether err is a transport-level failure that
// survived the retry policy (or was immediately fatal).
func IsNetworkError(err error) bool { return errs.IsKind(err, errs.Network) }

// IsAPIError reports whether err is a non-2xx response from the API.
func IsAPIError(err error) bool { return errs.IsKind(err, errs.API) }

// IsValidationError reports whether err is malformed caller input
// caught before any network call.
func IsValidationError(err error) bool { return errs.IsKind(err, errs.Validation) }

// APIStatus returns the HTTP status carried by an API error, or 0 when
// err is not one.
func APIStatus(err error) int { return errs.StatusCode(err) }
