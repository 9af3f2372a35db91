// Package timeutil holds the fixed-precision timestamp formats used on the wire and in logs.
package timeutil

import (
	"strconv"
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, used in API payloads.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time marshals to JSON as RFC3339Millis in UTC, e.g. "2024-01-15T10:30:00.000Z".
// Unmarshaling JSON null leaves the value untouched.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, t.UTC().Format(RFC3339Millis)), nil
}

// UnmarshalJSON implements json.Unmarshaler and accepts any RFC 3339 variant.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Now returns the current time.
func Now() Time {
	return Time{Time: time.Now()}
}
