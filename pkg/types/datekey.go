package types

import (
	"errors"
	"time"
)

// dateKeyLayout is the canonical day-granularity key format. Keys index
// day records in the store and in export documents.
const dateKeyLayout = "2006-01-02"

// ErrInvalidDateKey reports a string that does not parse as YYYY-MM-DD.
var ErrInvalidDateKey = errors.New("invalid date key")

// DateKey maps a time to its canonical YYYY-MM-DD key. Only the calendar
// date components in t's location are used; time-of-day is discarded, so
// any two times on the same calendar day in the same zone map to the
// same key.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into the midnight of that
// calendar day in the local zone. Returns ErrInvalidDateKey for any
// string that is not a well-formed date key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	// Reject shapes ParseInLocation accepts but the key format does
	// not, such as "2024-3-4".
	if DateKey(t) != key {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

// IsDateKey reports whether key is a well-formed YYYY-MM-DD date key.
func IsDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}
