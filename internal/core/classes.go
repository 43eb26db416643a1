package core

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
)

// normalizeClass trims user input and fills in a palette color.
func normalizeClass(c model.ClassEntry) model.ClassEntry {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)

	if c.Color == "" {
		c.Color = model.ColorFor(c.Name)
	}

	return c
}

func (a *App) classIndex(ref string) (int, error) {
	return resolveID(ref, len(a.classes), func(i int) string { return a.classes[i].ID })
}

// Class returns the entry whose id equals ref or uniquely starts with it.
func (a *App) Class(ref string) (model.ClassEntry, error) {
	i, err := a.classIndex(ref)
	if err != nil {
		return model.ClassEntry{}, err
	}

	return a.classes[i], nil
}

// AddClass validates c, assigns it a fresh id and persists the timetable.
func (a *App) AddClass(c model.ClassEntry) (model.ClassEntry, error) {
	c = normalizeClass(c)
	c.ID = uuid.New().String()

	if err := validateStruct("class", c); err != nil {
		return model.ClassEntry{}, err
	}

	next := append(slices.Clone(a.classes), c)
	if err := a.persist(store.KeyClasses, next); err != nil {
		return model.ClassEntry{}, err
	}

	a.classes = next

	a.log.Debug().Str("id", c.ID).Str("name", c.Name).Msg("class added")

	return c, nil
}

// UpdateClass replaces the entry with c.ID. Nothing is saved when c fails
// validation.
func (a *App) UpdateClass(c model.ClassEntry) (model.ClassEntry, error) {
	i, err := a.classIndex(c.ID)
	if err != nil {
		return model.ClassEntry{}, err
	}

	c = normalizeClass(c)
	c.ID = a.classes[i].ID

	if err := validateStruct("class", c); err != nil {
		return model.ClassEntry{}, err
	}

	next := slices.Clone(a.classes)
	next[i] = c

	if err := a.persist(store.KeyClasses, next); err != nil {
		return model.ClassEntry{}, err
	}

	a.classes = next

	return c, nil
}

// RemoveClass deletes the entry matching ref and returns it.
func (a *App) RemoveClass(ref string) (model.ClassEntry, error) {
	i, err := a.classIndex(ref)
	if err != nil {
		return model.ClassEntry{}, err
	}

	removed := a.classes[i]
	next := slices.Delete(slices.Clone(a.classes), i, i+1)

	if err := a.persist(store.KeyClasses, next); err != nil {
		return model.ClassEntry{}, err
	}

	a.classes = next

	return removed, nil
}
