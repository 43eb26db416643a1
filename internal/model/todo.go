package model

import "github.com/google/uuid"

// TodoItem is a single entry of the flat to-do list
type TodoItem struct {
	// ID is an opaque identifier assigned on creation
	ID string `json:"id"`

	// Text is the task description
	Text string `json:"text" validate:"required,max=500"`

	// Done marks the task as completed
	Done bool `json:"done"`
}

// NewTodoItem returns an open to-do with a fresh random ID.
func NewTodoItem(text string) TodoItem {
	return TodoItem{
		ID:   uuid.New().String(),
		Text: text,
	}
}
