// Package picker holds the view state behind the country picker and the pure
// derivations computed from it.
//
// State owns four inputs: the country list (copied once when the fetch
// resolves), the filter text, the raw group size and the ordered selection,
// plus a color cursor into a fixed four-color Palette. Everything the UI
// renders is derived on demand:
//
//   - Visible: countries whose name contains the filter text, ignoring case.
//     A blank filter shows nothing rather than everything.
//   - Groups: the selection cut into consecutive chunks of the group size.
//     A missing or non-positive size yields one group with the whole
//     selection.
//   - Highlight: selected countries share Palette[cursor]; the cursor moves
//     on every toggle, add or remove.
//
// The package has no I/O and no goroutines; callers own synchronisation.
package picker
