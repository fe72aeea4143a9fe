// Package app provides the orchestration layer for the passport application.
//
// # Overview
//
// This package wires together configuration, logging, the countries client,
// fetch state and the UI. It is the composition root: every dependency is
// created here and handed down.
//
// # Architecture
//
//  1. Load ~/.config/passport/config.toml (optional) and apply flag overrides
//  2. Open the zap log file
//  3. Build the GraphQL client for the configured endpoint
//  4. Create the shared state.Store
//  5. Start the Loader goroutine, which fetches the countries exactly once
//  6. Run the TUI and block until the user quits or the context is cancelled
//
// # Components
//
//   - app.go: Options, setup and Run
//   - loader.go: single-fetch Loader backed by singleflight
//   - cli.go: non-interactive List, Groups and Log runners
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config, apply overrides
//	       ├─────> logging.New()        JSON log file
//	       ├─────> countries.NewClient() GraphQL client
//	       ├─────> state.Store{}        Shared fetch state
//	       ├─────> Loader.Start()       One background fetch
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Loader:
//	┌─────────────────────────────────────────┐
//	│ singleflight.Do("countries")            │
//	│  ├─> store.Begin()                      │
//	│  ├─> FetchCountries()                   │
//	│  └─> store.Resolve()                    │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Fetch Behavior
//
// There is no polling and no retry. Once the store has settled, Load returns
// the settled result without a request, and concurrent callers share the
// in-flight one. A failed fetch leaves the UI on its error screen until the
// user quits.
//
// # Error Handling
//
// Fatal (returned from Run, List, Groups):
//   - Config file present but invalid
//   - Log file cannot be opened
//   - Endpoint cannot be parsed
//
// List and Groups also return fetch errors, and Groups rejects unknown
// country codes. In the TUI a fetch error is shown on screen instead.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{GroupSize: 3}); err != nil {
//		log.Fatalf("passport failed: %v", err)
//	}
package app
