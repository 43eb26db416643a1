// Package timeutil converts between wall-clock strings, minute-of-day values,
// calendar date keys and the Monday-first weekday index used by studyplan.
//
// No timezone handling happens here beyond the location carried by the
// time.Time values passed in; everything is local wall-clock.
package timeutil

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of a day in minutes and the upper bound of any
// daily minute count.
const MinutesPerDay = 24 * 60

// DateKeyLayout is the time layout of a calendar date key.
const DateKeyLayout = "2006-01-02"

// TimeOfDay is a wall-clock time expressed in minutes since local midnight.
type TimeOfDay int

// Invalid is the result of parsing a malformed time string. It compares false
// against every valid time in the schedule queries and renders as "--:--".
const Invalid TimeOfDay = -1

// ErrMalformedTime is returned by ParseTime for input that is not HH:MM.
var ErrMalformedTime = errors.New("malformed time of day")

// ParseTime splits s on ':' and returns hour*60+minute.
func ParseTime(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Invalid, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	if hour < 0 || minute < 0 || minute > 59 || hour*60+minute > MinutesPerDay {
		return Invalid, fmt.Errorf("%w: %q out of range", ErrMalformedTime, s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustParseTime is like ParseTime but panics on malformed input.
// Use only for literals.
func MustParseTime(s string) TimeOfDay {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}

	return t
}

// FormatTime renders minutes as zero-padded HH:MM.
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Valid reports whether t came from a well-formed time string.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

// Minutes returns t as a plain int.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	if !t.Valid() {
		return "--:--"
	}

	return FormatTime(int(t))
}

// MarshalText encodes t as HH:MM. Invalid times encode as an empty string.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return []byte{}, nil
	}

	return []byte(FormatTime(int(t))), nil
}

// UnmarshalText never fails: a malformed value decodes to Invalid so one bad
// entry does not discard the rest of a persisted collection.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		*t = Invalid

		return nil
	}

	*t = parsed

	return nil
}

// Clamp saturates n into [lo, hi].
func Clamp[T cmp.Ordered](n, lo, hi T) T {
	return min(max(n, lo), hi)
}

// MinuteOfDay returns the minutes elapsed since local midnight of t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Midnight returns 00:00 of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey formats the local calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in the local timezone.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", key, err)
	}

	return t, nil
}

// StartOfWeekMonday returns midnight of the Monday on or before t.
func StartOfWeekMonday(t time.Time) time.Time {
	day := Midnight(t)

	return day.AddDate(0, 0, -int(WeekdayOf(day)))
}
