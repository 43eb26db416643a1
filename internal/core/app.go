package core

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/rs/zerolog"
)

// Options configures Load.
type Options struct {
	// Logger receives warnings about malformed stored data
	Logger zerolog.Logger

	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time
}

// App owns the in-memory collections and writes each one back to the
// store when a mutation succeeds.
type App struct {
	kv    store.KV
	log   zerolog.Logger
	clock func() time.Time

	classes  []model.ClassEntry
	todos    []model.TodoItem
	studyLog studylog.Log
	settings model.Settings
}

// Load reads every collection from kv once. Missing or malformed data
// falls back to the empty default; only store I/O errors are returned.
func Load(kv store.KV, opts Options) (*App, error) {
	a := &App{
		kv:    kv,
		log:   opts.Logger,
		clock: opts.Clock,
	}

	if a.clock == nil {
		a.clock = time.Now
	}

	var err error

	if a.classes, err = loadKey(a, store.KeyClasses, []model.ClassEntry{}); err != nil {
		return nil, err
	}

	if a.todos, err = loadKey(a, store.KeyTodos, []model.TodoItem{}); err != nil {
		return nil, err
	}

	if a.studyLog, err = loadKey(a, store.KeyStudyLog, studylog.Log{}); err != nil {
		return nil, err
	}

	// a stored "null" decodes to nil
	if a.classes == nil {
		a.classes = []model.ClassEntry{}
	}

	if a.todos == nil {
		a.todos = []model.TodoItem{}
	}

	if a.studyLog == nil {
		a.studyLog = studylog.Log{}
	}

	for key, minutes := range a.studyLog {
		if v := a.studyLog.Set(key, float64(minutes)); v != minutes {
			a.log.Warn().Str("date", key).Int("minutes", minutes).Int("clamped", v).Msg("clamping stored study minutes")
		}
	}

	defaults := model.DefaultSettings()

	if a.settings.Goal, err = loadKey(a, store.KeyGoal, defaults.Goal); err != nil {
		return nil, err
	}

	if a.settings.Goal <= 0 {
		a.log.Warn().Int("goal", a.settings.Goal).Msg("ignoring non-positive stored goal")
		a.settings.Goal = defaults.Goal
	}

	if a.settings.Dark, err = loadKey(a, store.KeyDark, defaults.Dark); err != nil {
		return nil, err
	}

	a.log.Debug().
		Int("classes", len(a.classes)).
		Int("todos", len(a.todos)).
		Int("study_days", len(a.studyLog)).
		Msg("state loaded")

	return a, nil
}

// loadKey decodes the JSON stored under key, returning fallback when the
// key is missing, null, or cannot be decoded as T.
func loadKey[T any](a *App, key string, fallback T) (T, error) {
	raw, err := a.kv.Get(key)
	if err != nil {
		return fallback, fmt.Errorf("reading %s: %w", key, err)
	}

	if len(raw) == 0 {
		return fallback, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		a.log.Warn().Err(err).Str("key", key).Msg("ignoring malformed stored data")
		return fallback, nil
	}

	return out, nil
}

func (a *App) persist(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := a.kv.Set(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

// Now returns the application clock's current time.
func (a *App) Now() time.Time {
	return a.clock()
}

// Classes returns a copy of every class entry in insertion order.
func (a *App) Classes() []model.ClassEntry {
	return slices.Clone(a.classes)
}

// Todos returns a copy of the to-do list.
func (a *App) Todos() []model.TodoItem {
	return slices.Clone(a.todos)
}

// StudyLog returns a copy of the study log.
func (a *App) StudyLog() studylog.Log {
	return a.studyLog.Clone()
}

func (a *App) Settings() model.Settings {
	return a.settings
}

// resolveID finds the single index whose id equals ref or starts with it.
func resolveID(ref string, n int, idAt func(int) string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("empty id: %w", ErrNotFound)
	}

	match, count := -1, 0

	for i := range n {
		id := idAt(i)
		if id == ref {
			return i, nil
		}

		if strings.HasPrefix(id, ref) {
			match = i
			count++
		}
	}

	switch count {
	case 0:
		return -1, fmt.Errorf("%s: %w", ref, ErrNotFound)
	case 1:
		return match, nil
	default:
		return -1, &AmbiguousIDError{Prefix: ref, Matches: count}
	}
}
