// Package model defines the data structures used throughout studyplan.
//
// These are the persisted shapes: every collection is serialized to JSON
// and written under its own key of the local store.
//
// # ClassEntry
//
// The [ClassEntry] struct is one weekly recurring class:
//
//	type ClassEntry struct {
//	    ID      string             // Opaque identifier (UUID)
//	    Name    string             // Display name
//	    Color   string             // RGB hex color, e.g. "#4F46E5"
//	    Weekday timeutil.Weekday   // Monday=0 .. Sunday=6
//	    Start   timeutil.TimeOfDay // Serialized as "HH:MM"
//	    End     timeutil.TimeOfDay // Serialized as "HH:MM"
//	}
//
// # TodoItem
//
// The [TodoItem] struct is one entry of the flat to-do list.
//
// # Settings
//
// The [Settings] struct holds the daily goal and the theme flag.
package model
