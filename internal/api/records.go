package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// Provider timestamps arrive as "Mon, 02 Jan 2006 15:04:05 -0700".
const stampLayout = time.RFC1123Z

// localLayout is the display form after conversion to local time.
const localLayout = "2006-01-02 15:04:05"

// previewLimit caps the message body preview at 50 characters.
const previewLimit = 50

type rawCall struct {
	SID       string `json:"sid"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	To        string `json:"to"`
	StartTime string `json:"start_time"`
	Duration  string `json:"duration"`
	Status    string `json:"status"`
}

type rawMessage struct {
	SID          string      `json:"sid"`
	Direction    string      `json:"direction"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	DateSent     string      `json:"date_sent"`
	Body         string      `json:"body"`
	Status       string      `json:"status"`
	ErrorCode    json.Number `json:"error_code"`
	ErrorMessage string      `json:"error_message"`
}

// normalizeStamp converts a provider UTC timestamp to a local display
// string and an epoch sort key. Unparsable input is kept verbatim with
// sort key 0 so the record still renders; this is a lenient fallback,
// never an error.
func normalizeStamp(raw string) (string, int64) {
	t, err := time.Parse(stampLayout, raw)
	if err != nil {
		return raw, 0
	}
	return t.Local().Format(localLayout), t.Unix()
}

func normalizeCall(rc rawCall) types.Record {
	when, key := normalizeStamp(rc.StartTime)
	dir := types.Inbound
	if strings.HasPrefix(rc.Direction, "outbound") {
		dir = types.Outbound
	}
	return types.Record{
		Kind:      types.KindCall,
		SID:       rc.SID,
		Direction: dir,
		From:      rc.From,
		To:        rc.To,
		When:      when,
		SortKey:   key,
		Status:    rc.Status,
		Duration:  rc.Duration,
	}
}

func normalizeMessage(rm rawMessage) types.Record {
	when, key := normalizeStamp(rm.DateSent)
	// Only "outbound-api" counts as Outbound here; other outbound
	// sub-types ("outbound-call", "outbound-reply") classify as
	// Inbound. Narrower than the call rule, kept that way on purpose.
	dir := types.Inbound
	if rm.Direction == "outbound-api" {
		dir = types.Outbound
	}
	return types.Record{
		Kind:         types.KindMessage,
		SID:          rm.SID,
		Direction:    dir,
		From:         rm.From,
		To:           rm.To,
		When:         when,
		SortKey:      key,
		Status:       rm.Status,
		BodyPreview:  previewBody(rm.Body),
		ErrorCode:    rm.ErrorCode.String(),
		ErrorMessage: rm.ErrorMessage,
	}
}

// previewBody flattens a message body to a single line and truncates it
// for grid display.
func previewBody(body string) string {
	s := strings.ReplaceAll(body, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > previewLimit {
		return string(r[:previewLimit]) + "..."
	}
	return s
}
