package core

import (
	"slices"
	"strings"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
)

func (a *App) todoIndex(ref string) (int, error) {
	return resolveID(ref, len(a.todos), func(i int) string { return a.todos[i].ID })
}

// AddTodo appends an open to-do with the trimmed text.
func (a *App) AddTodo(text string) (model.TodoItem, error) {
	item := model.NewTodoItem(strings.TrimSpace(text))

	if err := validateStruct("todo", item); err != nil {
		return model.TodoItem{}, err
	}

	next := append(slices.Clone(a.todos), item)
	if err := a.persist(store.KeyTodos, next); err != nil {
		return model.TodoItem{}, err
	}

	a.todos = next

	return item, nil
}

// SetTodoDone marks the matching to-do done or open.
func (a *App) SetTodoDone(ref string, done bool) (model.TodoItem, error) {
	i, err := a.todoIndex(ref)
	if err != nil {
		return model.TodoItem{}, err
	}

	next := slices.Clone(a.todos)
	next[i].Done = done

	if err := a.persist(store.KeyTodos, next); err != nil {
		return model.TodoItem{}, err
	}

	a.todos = next

	return next[i], nil
}

// ToggleTodo flips the done flag of the matching to-do.
func (a *App) ToggleTodo(ref string) (model.TodoItem, error) {
	i, err := a.todoIndex(ref)
	if err != nil {
		return model.TodoItem{}, err
	}

	return a.SetTodoDone(a.todos[i].ID, !a.todos[i].Done)
}

// RemoveTodo deletes the matching to-do and returns it.
func (a *App) RemoveTodo(ref string) (model.TodoItem, error) {
	i, err := a.todoIndex(ref)
	if err != nil {
		return model.TodoItem{}, err
	}

	removed := a.todos[i]
	next := slices.Delete(slices.Clone(a.todos), i, i+1)

	if err := a.persist(store.KeyTodos, next); err != nil {
		return model.TodoItem{}, err
	}

	a.todos = next

	return removed, nil
}

// ClearDone removes every completed to-do and reports how many went.
func (a *App) ClearDone() (int, error) {
	next := slices.DeleteFunc(slices.Clone(a.todos), func(t model.TodoItem) bool { return t.Done })

	removed := len(a.todos) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := a.persist(store.KeyTodos, next); err != nil {
		return 0, err
	}

	a.todos = next

	return removed, nil
}
