package types

import (
	"errors"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateString = errors.New("invalid date string format")

// DateString is a calendar date in YYYY-MM-DD form, as exchanged with the
// booking API. A full RFC 3339 timestamp is also accepted on input.
type DateString string

// NewDateString formats t as a DateString.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and normalizes s.
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(strings.TrimSpace(s))
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t), nil
}

func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the date is empty.
func (d DateString) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Validate checks the format.
func (d DateString) Validate() error {
	_, err := d.Time()
	return err
}

// Time returns the date as a UTC time.
func (d DateString) Time() (time.Time, error) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return time.Time{}, ErrInvalidDateString
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateString
	}
	return t.UTC(), nil
}

// DaysUntil returns ceil((other - d) / 24h). Unparseable dates yield 0.
func (d DateString) DaysUntil(other DateString) int {
	from, err := d.Time()
	if err != nil {
		return 0
	}
	to, err := other.Time()
	if err != nil {
		return 0
	}
	diff := to.Sub(from)
	return int(math.Ceil(diff.Hours() / 24))
}

// IsBefore reports whether d is strictly earlier than other.
func (d DateString) IsBefore(other DateString) bool {
	return d.DaysUntil(other) > 0
}
