package pairing

import "github.com/katalvlaran/swisspair/tournament"

// EligibleForBye reports whether player may receive the
// pairing-allocated bye this round: re-exports
// tournament.ByeEligible under the name the orchestrators' bracket
// walk documentation (spec §4.D step 1) uses.
func EligibleForBye(p *tournament.Player) bool { return tournament.ByeEligible(p) }

// LowestRankedEligible returns the id of the lowest-ranked (highest
// RankIndex) player among ids that is eligible for the bye, or -1 if
// none is. Package dutch uses it to pick the bye assignee before its
// bracket walk (spec §4.D step 1); package burstein does not, and scans
// its own tiebreak order instead.
func LowestRankedEligible(t *tournament.Tournament, ids []int) int {
	best := -1
	for _, id := range ids {
		p := t.Player(id)
		if !EligibleForBye(p) {
			continue
		}
		if best == -1 || p.RankIndex > t.Player(best).RankIndex {
			best = id
		}
	}
	return best
}
