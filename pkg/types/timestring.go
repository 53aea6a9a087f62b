// Package types contains small shared value types.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// Values past midnight (e.g. "24:00") can appear as interval endpoints
// but never validate as a time of day.
type TimeString string

var ErrInvalidTimeString = errors.New("types: invalid time string format")

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time of day.
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" value.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}

// FromMinutes builds a TimeString from minutes since midnight.
// Minutes beyond 23:59 are kept as-is ("24:00"), which keeps interval
// endpoint comparisons working.
func FromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// AddMinutes returns the value shifted forward by m minutes.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(total + m), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
