// Package logtail reads and pretty-prints passport's log file.
//
// # Overview
//
// passport writes zap JSON lines to a file because the TUI owns the terminal.
// This package reads the last N lines of that file and turns each JSON entry
// into a single human readable line for `passport log`.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so only the tail is held in
// memory however large the file grows. A missing file returns nil, nil. A
// non-positive maxLines returns every line.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Formatting
//
// Format decodes a zap production entry and renders
//
//	TIME LEVEL message key=value ... (caller)
//
// with fields sorted by key. Values containing spaces, quotes or '=' are
// quoted; arrays and objects are re-encoded as JSON. The stacktrace field is
// dropped. Lines that are not zap JSON (panics, partial writes) are returned
// unchanged.
//
// Colorize renders the same text with lipgloss styles:
//
//   - Timestamps: gray
//   - Levels: bold, DEBUG cyan, INFO green, WARN yellow, ERROR red
//   - Field keys: blue
//   - Caller: dim
//
// Neither function returns errors.
package logtail
