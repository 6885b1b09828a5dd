// Package burstein implements the Burstein pairing system: tiebreak
// metrics (Sonneborn-Berger, Buchholz, Median Buchholz) order players
// within a scoregroup, and each scoregroup, together with the players
// the scoregroups above it left unpaired, gets its opponents from one
// packed-weight matching solve exactly as package dutch does, but over
// a much smaller weight (compatible, same-scoregroup, compatible-colors,
// plus a low-order neighbor-priority term) on a fixed-width integer
// rather than Dutch's many-field dynamic-width encoding (spec §9).
// Players a solve leaves unpaired carry down into the next scoregroup's
// solve; scoregroups are never merged and re-solved as a whole, so pairs
// fixed in an upper scoregroup are not revisited when a lower one cannot
// be completed.
package burstein
