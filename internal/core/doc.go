// Package core provides the application state and business rules for
// studyplan.
//
// This package owns every mutable collection: the class timetable, the
// to-do list, the study log and the user settings. The pure derivations
// (current class, layout, aggregates) live in the schedule and studylog
// packages; core only stores and validates.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - State is loaded once by [Load] and written back per mutation
//   - A mutation that fails validation or persistence leaves the
//     in-memory state unchanged
//   - UI-specific logic belongs in the cli package, not here
//
// # Identifiers
//
// Classes and to-dos are addressed by id. Every lookup also accepts a
// unique id prefix, so the CLI can show and accept short ids:
//
//	app.RemoveClass("3f2a")
//
// # Backups
//
// [App.Export] and [App.Import] move a [Snapshot] as indented JSON.
// [Seal] and [Unseal] wrap that JSON in an AES-256-GCM envelope armored
// as STUDYPLAN:<base58>.
package core
