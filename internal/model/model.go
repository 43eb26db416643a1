package model

import (
	"github.com/google/uuid"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// ClassEntry is one weekly recurring class in the timetable.
type ClassEntry struct {
	// ID is an opaque identifier assigned on creation
	ID string `json:"id"`

	// Name is the display name of the class (e.g., "Math")
	Name string `json:"name" validate:"required,max=80"`

	// Color is an RGB hex color used to render the class block
	Color string `json:"color" validate:"omitempty,hexcolor"`

	// Weekday is the day the class repeats on, Monday=0 .. Sunday=6
	Weekday timeutil.Weekday `json:"weekday" validate:"min=0,max=6"`

	// Start is the wall-clock start time
	Start timeutil.TimeOfDay `json:"start" validate:"min=0,max=1440"`

	// End is the wall-clock end time; must be after Start when edited,
	// but stored entries are not guaranteed to satisfy that
	End timeutil.TimeOfDay `json:"end" validate:"max=1440,gtfield=Start"`
}

// NewClassEntry returns an entry with a fresh random ID.
func NewClassEntry(name, color string, weekday timeutil.Weekday, start, end timeutil.TimeOfDay) ClassEntry {
	return ClassEntry{
		ID:      uuid.New().String(),
		Name:    name,
		Color:   color,
		Weekday: weekday,
		Start:   start,
		End:     end,
	}
}

// Valid reports whether both times are well formed.
func (c ClassEntry) Valid() bool {
	return c.Start.Valid() && c.End.Valid()
}

// Duration returns End-Start in minutes. It may be zero or negative for
// entries that bypassed validation.
func (c ClassEntry) Duration() int {
	return int(c.End) - int(c.Start)
}

// Contains reports whether minute falls inside [Start, End).
func (c ClassEntry) Contains(minute int) bool {
	if !c.Valid() {
		return false
	}

	return int(c.Start) <= minute && minute < int(c.End)
}

// Overlaps reports whether the two open intervals share any point in time.
func (c ClassEntry) Overlaps(other ClassEntry) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}

	return c.Start < other.End && c.End > other.Start
}

// Span renders the entry's time range, e.g. "09:00-10:00".
func (c ClassEntry) Span() string {
	return c.Start.String() + "-" + c.End.String()
}
