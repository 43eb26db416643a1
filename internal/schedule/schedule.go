// Package schedule derives the "now", "next" and per-day views of the weekly
// class timetable. Every function is a pure computation over a snapshot of
// class entries and an Instant sampled from the wall clock.
package schedule

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// DefaultPreviewLimit is the number of classes shown in the tomorrow preview.
const DefaultPreviewLimit = 6

// Instant is a wall-clock moment reduced to what the schedule needs.
type Instant struct {
	// Date is local midnight of the sampled day
	Date time.Time

	// Weekday is the Monday-first index of Date
	Weekday timeutil.Weekday

	// Minute is the minute of day, 0..1439
	Minute int
}

// Sample converts a wall-clock time into an Instant.
func Sample(t time.Time) Instant {
	return Instant{
		Date:    timeutil.Midnight(t),
		Weekday: timeutil.WeekdayOf(t),
		Minute:  timeutil.MinuteOfDay(t),
	}
}

// Tomorrow returns the weekday after the instant's day.
func (i Instant) Tomorrow() timeutil.Weekday {
	return i.Weekday.Next()
}

// startKey orders invalid times after every valid one.
func startKey(c model.ClassEntry) int {
	if !c.Start.Valid() {
		return math.MaxInt
	}

	return int(c.Start)
}

func byStart(a, b model.ClassEntry) int {
	return cmp.Compare(startKey(a), startKey(b))
}

// sortedByStart returns a stable start-ordered copy of classes.
func sortedByStart(classes []model.ClassEntry) []model.ClassEntry {
	out := slices.Clone(classes)
	slices.SortStableFunc(out, byStart)

	return out
}

// ClassesForDay returns the classes held on weekday, ordered by start time.
func ClassesForDay(classes []model.ClassEntry, weekday timeutil.Weekday) []model.ClassEntry {
	var out []model.ClassEntry

	for _, c := range classes {
		if c.Weekday == weekday {
			out = append(out, c)
		}
	}

	slices.SortStableFunc(out, byStart)

	return out
}

// CurrentClass returns today's class whose [start, end) contains now.
// When several overlap, the first in start order wins.
func CurrentClass(classes []model.ClassEntry, now Instant) (model.ClassEntry, bool) {
	for _, c := range ClassesForDay(classes, now.Weekday) {
		if c.Contains(now.Minute) {
			return c, true
		}
	}

	return model.ClassEntry{}, false
}

// NextClass returns the earliest class today starting strictly after now,
// falling back to the earliest class tomorrow. It never looks further than
// one day ahead.
func NextClass(classes []model.ClassEntry, now Instant) (model.ClassEntry, bool) {
	for _, c := range ClassesForDay(classes, now.Weekday) {
		if c.Start.Valid() && int(c.Start) > now.Minute {
			return c, true
		}
	}

	for _, c := range ClassesForDay(classes, now.Tomorrow()) {
		if c.Start.Valid() {
			return c, true
		}
	}

	return model.ClassEntry{}, false
}

// Progress returns how far now is through c as a rounded percentage.
// Degenerate entries (end == start) report 0.
func Progress(c model.ClassEntry, now Instant) int {
	if !c.Valid() {
		return 0
	}

	span := c.Duration()
	if span == 0 {
		return 0
	}

	elapsed := timeutil.Clamp(now.Minute-int(c.Start), 0, span)

	return int(math.Round(float64(elapsed) / float64(span) * 100))
}

// Remaining returns the minutes left until c ends, never negative.
func Remaining(c model.ClassEntry, now Instant) int {
	if !c.Valid() {
		return 0
	}

	return max(0, int(c.End)-now.Minute)
}

// TomorrowPreview returns up to limit of tomorrow's classes in start order.
// A non-positive limit means DefaultPreviewLimit.
func TomorrowPreview(classes []model.ClassEntry, now Instant, limit int) []model.ClassEntry {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	day := ClassesForDay(classes, now.Tomorrow())
	if len(day) > limit {
		day = day[:limit]
	}

	return day
}
