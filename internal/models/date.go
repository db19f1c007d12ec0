package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the plain calendar date form used on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses a YYYY-MM-DD string. A full ISO timestamp is accepted
// and truncated, since some servers serialize dates as datetimes.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return Date{Time: t}, nil
	}
	if len(raw) > len(DateLayout) {
		if t, err := time.Parse(DateLayout, raw[:len(DateLayout)]); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// String returns the wire form of the date.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Display returns the dd/mm/yyyy form shown on cards.
func (d Date) Display() string {
	return d.Format("02/01/2006")
}

// DisplayDate formats an optional date for a card, "-" when absent.
func DisplayDate(d *Date) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return d.Display()
}

// MarshalJSON implements json.Marshaler. The zero date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
