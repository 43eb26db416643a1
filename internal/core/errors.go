package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrNotFound is returned when no class or to-do matches an id.
var ErrNotFound = errors.New("not found")

// AmbiguousIDError indicates an id prefix matched more than one item
type AmbiguousIDError struct {
	Prefix  string
	Matches int
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("id prefix %q matches %d items", e.Prefix, e.Matches)
}

// ValidationError carries the rejected fields of an edit, keyed by their
// JSON name, with human-readable messages.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, e.Fields[k])
	}

	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(msgs, "; "))
}

// Field returns the message for one field, or "" when it passed.
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
