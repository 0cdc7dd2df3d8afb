// Package model defines the taskdeck entities: users, projects, and tasks.
//
// Entities are created either with a freshly minted ID from a Counter or
// reconstructed from their serialized Record form. ID allocation is owned
// by whoever holds the Counter (in practice the store), not by the package:
// two stores in the same process never share counter state.
//
// Field validation happens in the setters. A rejected value is reported as
// a *ValidationError; nothing else in this package returns errors.
//
// Membership lists (a user's projects, a project's tasks, a task's
// assignees) are ordered collections with set semantics: adding an ID that
// is already present is a no-op, insertion order is preserved.
package model
