package crud

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Editable form drafts keep datetimes in the HTML datetime-local shape.
// Parsing accepts an optional seconds part so stored values round-trip.
const (
	FormDateTimeLayout = "2006-01-02T15:04"
	formDateTimeSecs   = "2006-01-02T15:04:05"
	FormDateLayout     = "2006-01-02"
)

// NullableString trims s and coerces "" to NULL instead of storing the
// empty string.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NullableUUID coerces "" to NULL; anything else must be a valid UUID.
func NullableUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %q", s)
	}
	return &id, nil
}

// NullableInt coerces "" to NULL. Non numeric input is rejected, never
// silently turned into zero.
func NullableInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &n, nil
}

// NullableFloat is NullableInt for decimal fields (price).
func NullableFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &f, nil
}

// SplitLines turns a textarea draft into the stored string list: split on
// newline, trim, drop empty lines.
func SplitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinLines is the edit-side inverse of SplitLines.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

// NullableDate parses a date-input draft value ("" → NULL). Dates carry no
// time-of-day, so no zone conversion happens.
func NullableDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(FormDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}

// ParseFormDateTime parses a datetime-local draft value in the server's
// local zone, minute precision (seconds accepted when present).
func ParseFormDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(FormDateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(formDateTimeSecs, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q (want YYYY-MM-DDTHH:mm)", s)
	}
	return t, nil
}

// FormatFormDateTime renders a stored timestamp back into the editable
// draft shape. Truncation to the minute matches what the form can hold.
func FormatFormDateTime(t time.Time) string {
	return t.In(time.Local).Format(FormDateTimeLayout)
}
