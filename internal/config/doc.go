// Package config handles loading passport's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/passport/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/passport/config.toml
//   - Endpoint: https://countries.trevorblades.com/graphql
//   - Timeout: 10s
//   - Group size: unset (the whole selection forms one group)
//   - Log file: ~/.local/state/passport/passport.log
//   - Log level: info
//
// # TOML Format
//
//	endpoint = "https://countries.trevorblades.com/graphql"
//	timeout = "10s"
//	group_size = 3
//	log_file = "~/.local/state/passport/passport.log"
//	log_level = "info"
//
// All fields are optional. Tilde expansion is performed on log_file. A
// non-positive group_size is treated as unset.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and unparsable timeout durations
//
// Missing config files are NOT an error. Command-line flags override the
// loaded values in the app package.
package config
