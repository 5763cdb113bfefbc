// Package commands defines the tacostay CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)          Launch the terminal app
//   - catalog         List sitters, optionally filtered by tier or search text
//   - catalog reseed  Wipe and reload the sqlite catalog
//   - catalog export  Write the active catalog as YAML
//   - quote           Print a booking price breakdown
//   - replay          Stream the pulse timeline to stdout
//   - config init     Write a default config file
//
// # Implementation
//
// The root command loads configuration and builds the file logger before any
// subcommand runs. Catalog-backed commands resolve the configured source
// (builtin, yaml or sqlite) on demand and close it when they return.
package commands
