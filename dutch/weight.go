package dutch

import (
	"math/bits"

	"github.com/katalvlaran/swisspair/tournament"
	"github.com/katalvlaran/swisspair/wideint"
)

// fieldWidth returns a bit width wide enough to count up to n (spec
// §4.D: "each field is wide enough to count up to the number of
// players"), with a floor of 1 bit.
func fieldWidth(n int) uint {
	w := uint(bits.Len(uint(n)))
	if w == 0 {
		w = 1
	}
	return w
}

// colorTier scores how cleanly a's and b's color preferences combine,
// highest meaning least friction: 3 when at least one side has no
// preference or the two preferences differ outright; 2 when both
// prefer the same color but neither preference is absolute; 1 when
// exactly one side's preference is absolute; 0 when both are absolute
// and clash (spec §4.D field 8 / §4.D color-assignment tower's
// early-exit ordering).
func colorTier(a, b *tournament.Player) uint64 {
	pa, pb := a.ColorPreference, b.ColorPreference
	if pa == tournament.ColorNone || pb == tournament.ColorNone || pa != pb {
		return 3
	}
	aAbs, bAbs := a.AbsoluteColorPreference(), b.AbsoluteColorPreference()
	switch {
	case !aAbs && !bAbs:
		return 2
	case aAbs != bAbs:
		return 1
	default:
		return 0
	}
}

// weightBuilder packs a single bracket's candidate edges into a shared
// wide-integer encoding so every field's width stays fixed across the
// bracket (required for the accumulated lexicographic comparison to be
// meaningful — fields must line up the same way for every pair).
type weightBuilder struct {
	n            int // number of players in the tournament, sizes every field
	bracketWidth uint
	colorWidth   uint
	rankWidth    uint
	floatWidth   uint
}

func newWeightBuilder(n int) *weightBuilder {
	return &weightBuilder{
		n:            n,
		bracketWidth: fieldWidth(2),
		colorWidth:   fieldWidth(3),
		rankWidth:    fieldWidth(n),
		floatWidth:   fieldWidth(2 * n),
	}
}

// base computes the bracket edge weight for candidate pair (a, b),
// given inBracket(id) reporting whether id still belongs to the
// score bracket under consideration (as opposed to being a downfloater
// merely carried along). Returns (weight, false) when the pair is
// incompatible — the caller must not place this edge in the graph at
// all (a zero weight is indistinguishable from "no edge" per the
// solver's contract). Incompatible always covers the configured
// forbidden-pair list; when avoidRematches is set it also covers any
// pair that has already played a game against each other, mirroring
// dutch.cpp's resolveForbiddenPairs, which unions prior opponents
// into the forbidden set before edges are built. The caller disables
// avoidRematches on a second pass when the first, strict pass leaves
// no valid pairing (spec §8's round-trip property: a repeat is only
// ever produced when the validity pass would otherwise fail).
func (wb *weightBuilder) base(a, b *tournament.Player, inBracket func(id int) bool, avoidRematches bool) (wideint.Dynamic, bool) {
	if a.Forbids(b.ID) || b.Forbids(a.ID) {
		return wideint.Dynamic{}, false
	}
	if avoidRematches && (a.HasPlayed(b.ID) || b.HasPlayed(a.ID)) {
		return wideint.Dynamic{}, false
	}

	both := 0
	if inBracket(a.ID) {
		both++
	}
	if inBracket(b.ID) {
		both++
	}

	w := wideint.FromUint64(uint64(both))
	w = w.LshGrow(wb.colorWidth).Or(wideint.FromUint64(colorTier(a, b)))

	closeness := rankCloseness(wb.n, a.RankIndex, b.RankIndex)
	w = w.LshGrow(wb.rankWidth).Or(wideint.FromUint64(closeness))

	float := floatBias(wb.n, a.RankIndex, b.RankIndex)
	w = w.LshGrow(wb.floatWidth).Or(wideint.FromUint64(float))

	return w, true
}

// floatBias is the lowest-priority tiebreak: it favors the pair with
// the smaller rank-index sum, so that when two candidate pairings tie
// on every field above, the lower-ranked player is the one left to
// float down or take the bye rather than an arbitrarily-chosen one
// (spec §4.D's "reserved fields used ... for ordering homogeneous
// remainders", approximated here by one monotone term — see
// DESIGN.md).
func floatBias(n, ra, rb int) uint64 {
	return uint64(2*n - ra - rb)
}

// rankCloseness is n - |rankIndexA - rankIndexB|, so adjacent ranks
// score highest (spec §4.D's remainder-minimization fields, approximated
// here by a single monotone closeness term rather than a separate
// BSN-difference pass — see DESIGN.md).
func rankCloseness(n, ra, rb int) uint64 {
	d := ra - rb
	if d < 0 {
		d = -d
	}
	c := n - d
	if c < 0 {
		c = 0
	}
	return uint64(c)
}
