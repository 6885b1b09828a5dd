// Package tournament holds the player/match data model (spec §3) and
// the per-round derived fields both orchestrators need before building
// a pairing: rank order, color preference/imbalance/repeated-color,
// played-game counts, and bye eligibility (spec §4.C).
//
// # Lifecycle
//
// Build with NewTournament, which validates the forbidden-pair sets
// eagerly and runs UpdateRanks/ComputePlayerData once. Callers append a
// round's results to Player.Matches and bump Config.PlayedRounds
// themselves, then call UpdateRanks/ComputePlayerData again before the
// next pairing call — there is no mutation method on Tournament beyond
// that, matching spec §3's "lifecycle" note that a graph (and by
// extension a tournament snapshot) is reused across one invocation,
// never mutated concurrently.
//
// # Errors
//
// Every boundary failure (spec §7) is one of NoValidPairingError,
// UnapplicableFeatureError, or BuildLimitExceededError, each wrapping a
// package-level sentinel so callers can branch with errors.Is.
package tournament
