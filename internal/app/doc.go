// Package app wires the taskdeck components together: configuration and
// preference loading, the todos API client, the task store, the optional
// auto-import ticker, and the terminal UI.
package app
