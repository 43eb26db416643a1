package core

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/studylog"
)

// Snapshot is the portable backup document. On import a nil field means
// the key was absent and the current value is kept.
type Snapshot struct {
	Classes    *[]model.ClassEntry `json:"classes,omitempty"`
	Todos      *[]model.TodoItem   `json:"todos,omitempty"`
	StudyLog   *studylog.Log       `json:"studyLog,omitempty"`
	Goal       *int                `json:"goal,omitempty"`
	Dark       *bool               `json:"dark,omitempty"`
	ExportDate string              `json:"exportDate,omitempty"`
}

// ImportResult reports which parts of a snapshot were applied.
type ImportResult struct {
	Classes   int
	Todos     int
	StudyDays int
	Applied   []string
}

// Snapshot captures every collection as it is now.
func (a *App) Snapshot() Snapshot {
	classes := a.Classes()
	todos := a.Todos()
	log := a.StudyLog()
	goal := a.settings.Goal
	dark := a.settings.Dark

	return Snapshot{
		Classes:    &classes,
		Todos:      &todos,
		StudyLog:   &log,
		Goal:       &goal,
		Dark:       &dark,
		ExportDate: a.clock().UTC().Format(time.RFC3339),
	}
}

// Export renders the current state as indented JSON.
func (a *App) Export() ([]byte, error) {
	data, err := json.MarshalIndent(a.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}

	return append(data, '\n'), nil
}

// ParseSnapshot decodes a backup document without applying it.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("invalid backup file: %w", err)
	}

	return s, nil
}

// Import parses data and replaces each collection present in it. A
// document that fails to parse changes nothing.
func (a *App) Import(data []byte) (ImportResult, error) {
	s, err := ParseSnapshot(data)
	if err != nil {
		return ImportResult{}, err
	}

	return a.Apply(s)
}

// Apply writes the present fields of s through to the store.
func (a *App) Apply(s Snapshot) (ImportResult, error) {
	var res ImportResult

	if s.Classes != nil {
		classes := slices.Clone(*s.Classes)
		if classes == nil {
			classes = []model.ClassEntry{}
		}

		for i := range classes {
			if classes[i].ID == "" {
				classes[i].ID = uuid.New().String()
			}
		}

		if err := a.persist(store.KeyClasses, classes); err != nil {
			return res, err
		}

		a.classes = classes
		res.Classes = len(classes)
		res.Applied = append(res.Applied, store.KeyClasses)
	}

	if s.Todos != nil {
		todos := slices.Clone(*s.Todos)
		if todos == nil {
			todos = []model.TodoItem{}
		}

		for i := range todos {
			if todos[i].ID == "" {
				todos[i].ID = uuid.New().String()
			}
		}

		if err := a.persist(store.KeyTodos, todos); err != nil {
			return res, err
		}

		a.todos = todos
		res.Todos = len(todos)
		res.Applied = append(res.Applied, store.KeyTodos)
	}

	if s.StudyLog != nil {
		log := studylog.Log{}
		for k, v := range *s.StudyLog {
			log.Set(k, float64(v))
		}

		if err := a.persist(store.KeyStudyLog, log); err != nil {
			return res, err
		}

		a.studyLog = log
		res.StudyDays = len(log)
		res.Applied = append(res.Applied, store.KeyStudyLog)
	}

	if s.Goal != nil {
		if err := a.SetGoal(*s.Goal); err != nil {
			a.log.Warn().Err(err).Int("goal", *s.Goal).Msg("skipping goal from backup")
		} else {
			res.Applied = append(res.Applied, store.KeyGoal)
		}
	}

	if s.Dark != nil {
		if err := a.SetDark(*s.Dark); err != nil {
			return res, err
		}

		res.Applied = append(res.Applied, store.KeyDark)
	}

	return res, nil
}
