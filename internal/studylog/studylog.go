// Package studylog aggregates manually logged daily study minutes into
// today, weekly and historical views.
package studylog

import (
	"math"
	"time"

	"github.com/inovacc/studyplan/internal/timeutil"
)

// MaxHistoryDays bounds a history window to roughly ten years.
const MaxHistoryDays = 3660

// Log maps a YYYY-MM-DD date key to the minutes studied that day.
// A missing key means zero.
type Log map[string]int

// Day is one element of a history window.
type Day struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Summary describes a window of days.
type Summary struct {
	Total      int     `json:"total"`
	Average    float64 `json:"average"`
	Max        int     `json:"max"`
	ActiveDays int     `json:"active_days"`
}

// MinutesOn returns the minutes logged for key, or 0.
func (l Log) MinutesOn(key string) int {
	return l[key]
}

// Set overwrites the minutes for key. The value is rounded to the nearest
// integer and clamped to a single day. It returns the stored value.
func (l Log) Set(key string, minutes float64) int {
	if math.IsNaN(minutes) {
		minutes = 0
	}

	v := int(math.Round(timeutil.Clamp(minutes, 0, timeutil.MinutesPerDay)))
	l[key] = v

	return v
}

// Clone returns an independent copy of l.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for k, v := range l {
		out[k] = v
	}

	return out
}

// Weekly returns Monday..Sunday minutes of the week containing ref.
func (l Log) Weekly(ref time.Time) [timeutil.DaysPerWeek]int {
	var week [timeutil.DaysPerWeek]int

	monday := timeutil.StartOfWeekMonday(ref)
	for i := range week {
		week[i] = l.MinutesOn(timeutil.DateKey(monday.AddDate(0, 0, i)))
	}

	return week
}

// History returns the days-long window ending at ref inclusive, oldest first.
// Windows longer than MaxHistoryDays are cut to that length.
func (l Log) History(days int, ref time.Time) []Day {
	if days <= 0 {
		return []Day{}
	}

	days = min(days, MaxHistoryDays)

	end := timeutil.Midnight(ref)
	out := make([]Day, 0, days)

	for i := days - 1; i >= 0; i-- {
		key := timeutil.DateKey(end.AddDate(0, 0, -i))
		out = append(out, Day{Date: key, Minutes: l.MinutesOn(key)})
	}

	return out
}

// Summarize computes total, average, max and active-day count of window.
func Summarize(window []Day) Summary {
	var s Summary

	for _, d := range window {
		s.Total += d.Minutes
		s.Max = max(s.Max, d.Minutes)

		if d.Minutes > 0 {
			s.ActiveDays++
		}
	}

	if len(window) > 0 {
		s.Average = float64(s.Total) / float64(len(window))
	}

	return s
}

// LongestDay returns the index of the largest value; ties resolve to the
// lowest index.
func LongestDay(week [timeutil.DaysPerWeek]int) int {
	best := 0

	for i := 1; i < len(week); i++ {
		if week[i] > week[best] {
			best = i
		}
	}

	return best
}

// GoalProgress returns minutes as a percentage of goal, clamped to [0, 100].
func GoalProgress(minutes, goal int) int {
	if goal <= 0 {
		return 0
	}

	return timeutil.Clamp(int(math.Round(float64(minutes)/float64(goal)*100)), 0, 100)
}
