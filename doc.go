// Package swisspair is a Swiss-system chess tournament pairing engine:
// given a tournament snapshot, it computes the next round's pairings
// under either the FIDE Dutch or Burstein system.
//
// Everything is organized one directory per concern, each importable on
// its own:
//
//	wideint/   — fixed- and dynamic-width unsigned integers for packed edge weights
//	matching/  — Galil-Micali-Gabow maximum-weight matching solver
//	tournament/ — players, matches, and the fields derived once per round
//	pairing/   — the color rule tower, bye eligibility, and final sort order
//	dutch/     — the FIDE Dutch orchestrator
//	burstein/  — the Burstein orchestrator (acceleration, tiebreak metrics)
//	swiss/     — the top-level facade: Pair(tournament, system)
//
// A minimal round:
//
//	tt, err := tournament.NewTournament(tournament.DefaultConfig(), players)
//	pairings, err := swiss.Pair(tt, swiss.SystemDutch)
//
// See DESIGN.md for how each package's algorithms are grounded, and
// spec.md / SPEC_FULL.md for the full specification this module
// implements.
package swisspair

