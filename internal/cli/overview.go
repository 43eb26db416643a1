package cli

import (
	"time"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/schedule"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// Overview is everything the dashboard shows, derived at one instant.
type Overview struct {
	At      time.Time        `json:"at"`
	Weekday timeutil.Weekday `json:"weekday"`

	Current   *model.ClassEntry `json:"current,omitempty"`
	Progress  int               `json:"progress"`
	Remaining int               `json:"remaining"`

	Next           *model.ClassEntry `json:"next,omitempty"`
	NextIsTomorrow bool              `json:"next_is_tomorrow"`

	Today    []model.ClassEntry `json:"today"`
	Tomorrow []model.ClassEntry `json:"tomorrow"`

	StudyToday int `json:"study_today"`
	Goal       int `json:"goal"`
	GoalPct    int `json:"goal_pct"`

	Week      [timeutil.DaysPerWeek]int `json:"week"`
	WeekTotal int                       `json:"week_total"`
	Longest   int                       `json:"longest_day"`
}

// BuildOverview samples t once and derives every dashboard figure from it.
func BuildOverview(classes []model.ClassEntry, log studylog.Log, settings model.Settings, t time.Time, tomorrowLimit int) Overview {
	now := schedule.Sample(t)

	o := Overview{
		At:       t,
		Weekday:  now.Weekday,
		Today:    schedule.ClassesForDay(classes, now.Weekday),
		Tomorrow: schedule.TomorrowPreview(classes, now, tomorrowLimit),
		Goal:     settings.Goal,
	}

	if c, ok := schedule.CurrentClass(classes, now); ok {
		o.Current = &c
		o.Progress = schedule.Progress(c, now)
		o.Remaining = schedule.Remaining(c, now)
	}

	if c, ok := schedule.NextClass(classes, now); ok {
		o.Next = &c
		o.NextIsTomorrow = c.Weekday != now.Weekday
	}

	o.StudyToday = log.MinutesOn(timeutil.DateKey(t))
	o.GoalPct = studylog.GoalProgress(o.StudyToday, settings.Goal)

	o.Week = log.Weekly(t)
	for _, m := range o.Week {
		o.WeekTotal += m
	}

	o.Longest = studylog.LongestDay(o.Week)

	return o
}
