package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is the canonical day index: Monday=0 .. Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of weekday indices.
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOf converts the Sunday-first time.Weekday of t into the Monday-first
// index. This is the only place native weekday numbering is read.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysPerWeek)
}

// Valid reports whether w is within Monday..Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Next returns the following weekday, wrapping Sunday to Monday.
func (w Weekday) Next() Weekday {
	return (w + 1) % DaysPerWeek
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}

	return weekdayNames[w]
}

// Short returns the three-letter abbreviation, e.g. "Mon".
func (w Weekday) Short() string {
	if !w.Valid() {
		return "???"
	}

	return weekdayNames[w][:3]
}

// Weekdays lists Monday..Sunday in order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday accepts an index ("0".."6"), a full English name or any prefix
// of at least three letters, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		w := Weekday(n)
		if !w.Valid() {
			return 0, fmt.Errorf("weekday index %d out of range 0..6", n)
		}

		return w, nil
	}

	if len(s) >= 3 {
		for i, name := range weekdayNames {
			if strings.HasPrefix(strings.ToLower(name), s) {
				return Weekday(i), nil
			}
		}
	}

	return 0, fmt.Errorf("unknown weekday %q", s)
}
