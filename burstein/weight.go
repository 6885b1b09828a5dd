package burstein

import (
	"github.com/katalvlaran/swisspair/pairing"
	"github.com/katalvlaran/swisspair/tournament"
	"github.com/katalvlaran/swisspair/wideint"
)

// The three packed multipliers from burstein.cpp's computeEdgeWeight:
// compatible is the high-order bit (zero collapses the whole weight so
// the solver can never pick a forbidden or double-absolute-clash edge),
// sameScoreGroup rewards keeping a pair inside the bracket under
// consideration over floating one member down, and color rewards a pair
// whose due colors don't clash. A fourth, low-order term not present in
// the original's three-field formula stands in for its "neighbor
// priority" field (spec §4.E step 3): it favors the pair whose positions
// in the scoregroup's tiebreak order (computeMetricScores, best first)
// are furthest apart, reproducing the concrete "pair highest with
// lowest, middle with middle" outcome spec §8 scenario 6 names, without
// the original's sequential top-down greedy peel-off (see DESIGN.md).
// priorityWidth caps that term at 16 bits — ample for any bracket this
// package is ever asked to solve in one call.
const (
	priorityWidth            = 16
	colorMultiplier          = uint64(1) << priorityWidth
	sameScoreGroupMultiplier = colorMultiplier * 2
	compatibleMultiplier     = sameScoreGroupMultiplier * 2
)

// computeEdgeWeight scores the candidate pair (a, b): zero when
// forbidden or when both sides hold the same absolute color preference
// (an unbreakable clash); otherwise compatibleMultiplier, plus
// sameScoreGroupMultiplier when both players still belong to the
// bracket under consideration, plus colorMultiplier when, in that case,
// their due colors don't clash — then a neighbor-priority term in the
// low bits, rankA/rankB being each player's position in the tiebreak
// order (ported from burstein.cpp's computeEdgeWeight; see the const
// block above for how the low-order term departs from the original).
// computeEdgeWeight returns the candidate pair's edge weight, or a
// zero weight when the pair is incompatible: either on the configured
// forbidden-pair list, already played against each other in a
// previous round when avoidRematches is set (burstein.cpp's
// computeMatching folds prior opponents into player.forbiddenPairs
// before scoring edges), or both sides hold a clashing absolute color
// preference. The caller disables avoidRematches on a retry once a
// strict pass turns up no valid pairing (spec §8's round-trip
// property).
func computeEdgeWeight(a, b *tournament.Player, sameScoreGroup, useDueColor bool, rankA, rankB int, avoidRematches bool) wideint.Fixed64 {
	if a.Forbids(b.ID) || b.Forbids(a.ID) {
		return wideint.Fixed64{}
	}
	if avoidRematches && (a.HasPlayed(b.ID) || b.HasPlayed(a.ID)) {
		return wideint.Fixed64{}
	}
	if a.AbsoluteColorPreference() && b.AbsoluteColorPreference() && a.ColorPreference == b.ColorPreference {
		return wideint.Fixed64{}
	}

	w := compatibleMultiplier
	if sameScoreGroup {
		w += sameScoreGroupMultiplier
		if useDueColor && pairing.ColorPreferencesCompatible(a.ColorPreference, b.ColorPreference) {
			w += colorMultiplier
		}
	}
	w += neighborPriority(rankA, rankB)
	return wideint.FixedFromUint64(w)
}

// neighborPriority is the squared distance between two tiebreak-order
// positions, capped so it never spills into the multiplier bits above
// it: maximizing total squared distance across a bracket's matching is
// what makes the extremes pair with each other ahead of adjacent ranks
// pairing (see const block doc).
func neighborPriority(rankA, rankB int) uint64 {
	d := rankA - rankB
	if d < 0 {
		d = -d
	}
	sq := uint64(d) * uint64(d)
	const mask = uint64(1)<<priorityWidth - 1
	if sq > mask {
		return mask
	}
	return sq
}
