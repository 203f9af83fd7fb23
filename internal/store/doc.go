// Package store holds the canonical task collection and the UI selection
// state (active sort, active filters) behind a mutex-guarded store.
//
// # Write contract
//
// Add, Update, Remove, Toggle, SetSort, SetTemporalFilter, SetNameFilter and
// ClearFilter are synchronous and atomic with respect to each other. None of
// them fails: mutations addressed to an id that does not exist are silent
// no-ops, and Add accepts any draft (validation belongs to the caller).
//
// # Read contract
//
// Snapshot returns a defensive copy of the full state; Snapshot.Projection
// computes the filtered, sorted view the UI renders. Readers never observe a
// partially applied mutation.
//
// # Import
//
// Import is the only asynchronous operation. It suspends at the network
// boundary and applies its result as an ordinary synchronous transition:
// loading is raised before the fetch, and on completion either the
// deduplicated records are appended (success) or the error message is
// recorded with the task list untouched (failure). Because merging is
// idempotent, overlapping imports are harmless.
package store
