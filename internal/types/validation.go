package types

import (
	"strings"

	errs "github.com/jmhjr316-Git/twilio-manager/internal/errors"
)

// FormatPhoneNumber coerces common US number spellings into E.164. A
// bare 10-digit number gets a "+1" prefix and an 11-digit number
// starting with "1" gets a "+"; anything else that does not already
// start with "+" is rejected before any network call is made.
func FormatPhoneNumber(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if strings.HasPrefix(p, "+") {
		return p, nil
	}
	switch {
	case len(p) == 10 && allDigits(p):
		return "+1" + p, nil
	case len(p) == 11 && p[0] == '1' && allDigits(p):
		return "+" + p, nil
	default:
		return "", errs.NewValidation("phone number must be E.164 (+19195551234) or 10 digits, got %q", raw)
	}
}

// RequireE164 rejects numbers that are not already in E.164 form.
func RequireE164(number string) error {
	if !strings.HasPrefix(number, "+") {
		return errs.NewValidation("phone number must be E.164, got %q", number)
	}
	return nil
}

// ValidateCredential checks the shape of an account credential so a
// typo fails fast instead of as a confusing 401.
func ValidateCredential(c Credential) error {
	if !strings.HasPrefix(c.AccountSID, "AC") || len(c.AccountSID) != 34 {
		return errs.NewValidation("account SID must start with \"AC\" and be 34 characters, got %d", len(c.AccountSID))
	}
	if len(c.AuthToken) < 32 {
		return errs.NewValidation("auth token too short (%d characters)", len(c.AuthToken))
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
