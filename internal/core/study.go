package core

import (
	"fmt"
	"time"

	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// MaxGoalMinutes bounds the daily goal to a single day.
const MaxGoalMinutes = timeutil.MinutesPerDay

// StudyMinutes returns the minutes logged on the local date of day.
func (a *App) StudyMinutes(day time.Time) int {
	return a.studyLog.MinutesOn(timeutil.DateKey(day))
}

// SetStudyMinutes overwrites the minutes for the local date of day and
// returns the stored, rounded and clamped, value.
func (a *App) SetStudyMinutes(day time.Time, minutes float64) (int, error) {
	next := a.studyLog.Clone()
	stored := next.Set(timeutil.DateKey(day), minutes)

	if err := a.persist(store.KeyStudyLog, next); err != nil {
		return 0, err
	}

	a.studyLog = next

	return stored, nil
}

// SetGoal changes the daily study goal.
func (a *App) SetGoal(minutes int) error {
	if minutes < 1 || minutes > MaxGoalMinutes {
		return &ValidationError{
			Entity: "goal",
			Fields: map[string]string{
				"goal": fmt.Sprintf("goal must be between 1 and %d minutes", MaxGoalMinutes),
			},
		}
	}

	if err := a.persist(store.KeyGoal, minutes); err != nil {
		return err
	}

	a.settings.Goal = minutes

	return nil
}

// SetDark selects the dark or light palette.
func (a *App) SetDark(dark bool) error {
	if err := a.persist(store.KeyDark, dark); err != nil {
		return err
	}

	a.settings.Dark = dark

	return nil
}
