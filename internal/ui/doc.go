// Package ui provides the terminal user interface for taskdeck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all presentation state and
// a handle to the task store; every keystroke, timer tick, and import
// result arrives as a message through Update, so presentation state is
// only ever touched from the event loop.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages, commands, and Run
//   - tasks.go: paginated task list with cursor, chips, and actions
//   - home.go: overview cards computed from the raw task list
//   - form.go: add/edit modal built from bubbles text inputs
//   - sortsheet.go: sort selection sheet
//   - filter.go: search, date, and time filter prompts
//   - chrome.go: header, footer, and modal overlay placement
//   - theme.go: color themes and lipgloss style construction
//   - keys.go: key bindings
//
// # Event Flow
//
//  1. Run() builds the Model and starts the tea Program in the alt screen.
//  2. A one-second tick re-reads the store snapshot so changes made outside
//     the UI (the auto-import loop) become visible.
//  3. Mutating actions call the store directly, then refresh the snapshot
//     synchronously so the next render reflects them.
//  4. The API import runs as a tea.Cmd; its result re-enters Update as an
//     importResultMsg and is reported on the status line.
//
// # Key Bindings
//
//   - 1/2 or Tab: switch between the overview and the task list
//   - j/k, g/G, n/p: move the cursor and page through tasks
//   - a/e/x/space: add, edit, delete, toggle
//   - r: fetch todos from the API
//   - /: search, d: date filter, t: time filter, c: clear filters, s: sort
//   - T: cycle theme, h/?: help, q: quit
package ui
