// Package commands defines the passport CLI.
//
// Commands
//
//   - passport          Run the interactive country picker
//   - passport list     Print the countries whose name matches a filter
//   - passport groups   Select country codes in order and print the groups
//   - passport log      Pretty-print the tail of the passport log file
//
// # Implementation
//
// Persistent flags on the root command fill an app.Options value shared by
// every subcommand. Flags override the config file; unset flags leave the
// config (or its defaults) in place.
package commands
