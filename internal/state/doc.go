// Package state provides thread-safe fetch state for the passport application.
//
// # Overview
//
// passport fetches the country list exactly once. The loader goroutine writes
// the outcome into a Store and the UI reads snapshots on its own tick. The
// Store is the only value shared between those goroutines.
//
//	Producer (Loader):              Consumer (UI):
//	┌──────────────────┐           ┌──────────────────┐
//	│ store.Begin()    │           │                  │
//	│ FetchCountries() │           │ store.Snapshot() │
//	│ store.Resolve()  │──────────→│ render phase     │
//	└──────────────────┘  (mutex)  └──────────────────┘
//
// # Phases
//
//	Loading ──success──→ Ready
//	   │
//	   └─────failure──→ Error
//
// Ready and Error are terminal. Resolve only has an effect while the store is
// Loading and reports whether it applied, so a late or duplicate result can
// never replace the list the UI already copied.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Begin(), Resolve(): write lock
//   - Snapshot(): read lock
//
// The lock is held only while copying; never during network I/O or rendering.
//
// # Defensive Copying
//
// Resolve stores a private copy of the country slice and Snapshot hands out
// another one, so neither the loader nor the UI can mutate what the other
// sees. Country values are treated as immutable after the fetch.
//
// # Testing Considerations
//
// The zero Store is ready to use and reports PhaseLoading:
//
//	store := &state.Store{}
package state
