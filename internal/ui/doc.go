// Package ui provides the terminal user interface for passport.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns all picker state (filter text,
// group size input, selection, color cursor) and is only touched from the
// Bubble Tea update loop. The fetch result arrives through state.Store, which
// the model polls on a tick until the fetch settles.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View, key and mouse handling, Run
//   - inputs.go: filter and group size text inputs
//   - list.go: "Filtered Countries" pane
//   - groups.go: "Selected Items" pane in a scrollable viewport
//   - detail.go: one-line detail for the country under the cursor
//   - header.go: header, command bar, loading and error screens
//   - help.go: help overlay generated from the key map
//   - layout.go: pane geometry, mouse hit testing, titled boxes
//   - theme.go, style_helpers.go: lipgloss themes and background helpers
//
// # Screens
//
//   - Loading: spinner and "Loading..."
//   - Error: "Error: <message>" and nothing else; only quitting works
//   - Ready: inputs, the filtered list, the groups and the detail line
//
// The country list is copied into a picker.State once, on the first Ready
// snapshot. Polling stops after that.
//
// # Highlighting
//
// Every selected row in the filtered list is painted with the same color:
// the palette entry under the global color cursor. The cursor advances on
// every toggle, selecting or deselecting, so all highlights change color
// together.
//
// # Key Bindings
//
//   - Tab / Shift+Tab: cycle focus filter → group size → list
//   - Enter / Esc (in an input): jump to the list
//   - j/k, up/down: move the list cursor
//   - g/G: top/bottom of the list
//   - Space / Enter (in the list): toggle the country under the cursor
//   - Ctrl+D / Ctrl+U: scroll the groups pane
//   - Esc (in the list): back to the filter
//   - T: cycle theme (saved to prefs)
//   - h / ?: help
//   - q: quit (from the list, loading or error screen); Ctrl+C anywhere
//
// A left click on a list row toggles it; the mouse wheel scrolls the groups
// pane.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Store:     store,
//		Logger:    logger,
//		GroupSize: cfg.GroupSize,
//		ThemeName: userPrefs.Theme,
//	})
package ui
