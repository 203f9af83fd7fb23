// Package todo defines the task data model and the pure query logic shared
// by the store and the UI.
//
// A Task carries a display name, free-text description, due date and time
// (as formatted strings), a completion flag, and a creation timestamp. Task
// ids live in two namespaces: locally authored tasks ("todo-...") and tasks
// imported from the remote API ("api-<remote id>"); provenance is always
// recoverable from the prefix alone.
//
// Project is the read side: it applies the temporal filter, then the name
// filter, then a stable sort, and never mutates its input. FromRemote is the
// deterministic transform from a remote record and its arrival index into a
// Task; repeated imports of the same payload yield identical tasks apart
// from the wall-clock date baked into the due date.
package todo
