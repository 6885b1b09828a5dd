// Package swiss is the single entry point a caller outside this module
// uses: given a tournament snapshot and a choice of pairing system, it
// dispatches to package dutch or package burstein and returns the
// round's pairings exactly as either orchestrator produces them.
//
// Callers needing finer control — running Burstein's acceleration step
// separately from its pairing step, for instance — import dutch or
// burstein directly; this package only wraps the common case the CLI
// surface (spec §6, `--dutch | --burstein`) exposes.
package swiss
