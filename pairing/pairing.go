// Package pairing holds the pieces both orchestrators share: the
// output Pairing type, the final sort order (spec §4.F), and the
// color-assignment rule tower (spec §4.D) that applies identically to
// a finalized Dutch pair and a finalized Burstein pair — only the
// surrounding bracket logic differs between the two systems, not how a
// pair's colors get decided once its members are fixed.
package pairing

import "github.com/katalvlaran/swisspair/tournament"

// Pairing is one pair in a round's output. White == Black denotes a
// bye (spec §3).
type Pairing struct {
	White int
	Black int
}

// IsBye reports whether this pairing is a bye.
func (p Pairing) IsBye() bool { return p.White == p.Black }

// AssignColors decides the colors for a newly finalized pair (a, b),
// applying spec §4.D's rule tower in order:
//
//  1. compatible preferences (different non-None preferences, or at
//     least one of them None): the player with a preference gets it; if
//     neither has one, the higher-ranked player's rank-index parity
//     against the tournament's initial color decides;
//  2. otherwise preferences clash (same non-None preference on both
//     sides) — absolute preference beats non-absolute, weighted by
//     whichever imbalance is larger;
//  3. strong preference beats weak;
//  4. the most recent round in which the two players' colors
//     historically differed decides — a takes the inverse of the color
//     b had in that round;
//  5. otherwise the higher-ranked player's rank-index parity against
//     the tournament's initial color decides, same as step 1's
//     no-preference case.
//
// Returns the color for a; b always gets the inverse.
func AssignColors(t *tournament.Tournament, a, b *tournament.Player) tournament.Color {
	if compatiblePreferences(a.ColorPreference, b.ColorPreference) {
		switch {
		case a.ColorPreference != tournament.ColorNone:
			return a.ColorPreference
		case b.ColorPreference != tournament.ColorNone:
			return b.ColorPreference.Invert()
		default:
			return rankParityFallback(t, a, b)
		}
	}
	if c, ok := absoluteBeatsNonAbsolute(a, b); ok {
		return c
	}
	if c, ok := strongBeatsWeak(a, b); ok {
		return c
	}
	if c, ok := lastDifferingRound(a, b); ok {
		return c
	}
	return rankParityFallback(t, a, b)
}

// compatiblePreferences reports whether two stated preferences don't
// clash: different (including one or both None), never the same
// non-None value on both sides.
func compatiblePreferences(p, q tournament.Color) bool {
	return p != q || p == tournament.ColorNone || q == tournament.ColorNone
}

// ColorPreferencesCompatible exports compatiblePreferences for the
// Burstein orchestrator's edge-weight builder, which needs the same
// notion of "does pairing these due colors cost anything" that this
// package's own rule tower uses (common.cpp's colorPreferencesAreCompatible
// backs both).
func ColorPreferencesCompatible(p, q tournament.Color) bool {
	return compatiblePreferences(p, q)
}

// absoluteBeatsNonAbsolute favors whichever player has an absolute
// preference and either the larger color imbalance or an opponent with
// no absolute preference of their own.
func absoluteBeatsNonAbsolute(a, b *tournament.Player) (tournament.Color, bool) {
	aAbs, bAbs := a.AbsoluteColorPreference(), b.AbsoluteColorPreference()
	switch {
	case aAbs && (a.ColorImbalance > b.ColorImbalance || !bAbs):
		return a.ColorPreference, true
	case bAbs && (b.ColorImbalance > a.ColorImbalance || !aAbs):
		return b.ColorPreference.Invert(), true
	default:
		return tournament.ColorNone, false
	}
}

func strongBeatsWeak(a, b *tournament.Player) (tournament.Color, bool) {
	switch {
	case a.StrongColorPreference && !b.StrongColorPreference:
		return a.ColorPreference, true
	case b.StrongColorPreference && !a.StrongColorPreference:
		return b.ColorPreference.Invert(), true
	default:
		return tournament.ColorNone, false
	}
}

// lastDifferingRound walks both players' played games backward
// independently (skipping any game that wasn't actually played,
// byes included), comparing them game-for-game — a's most recent played
// game against b's most recent played game, then each player's
// second-most-recent, and so on — until the colors differ or either
// history runs out. a's color for THIS round is fixed as the inverse of
// whatever b held at that point (b's color, by the caller's convention,
// is always the inverse of a's).
func lastDifferingRound(a, b *tournament.Player) (tournament.Color, bool) {
	i, j := lastPlayedIndex(a, len(a.Matches)), lastPlayedIndex(b, len(b.Matches))
	for i >= 0 && j >= 0 && a.Matches[i].Color == b.Matches[j].Color {
		i = lastPlayedIndex(a, i)
		j = lastPlayedIndex(b, j)
	}
	if i < 0 || j < 0 {
		return tournament.ColorNone, false
	}
	return b.Matches[j].Color.Invert(), true
}

// lastPlayedIndex returns the index of the most recent played game at
// or before before (exclusive), or -1 if there is none.
func lastPlayedIndex(p *tournament.Player, before int) int {
	for i := before - 1; i >= 0; i-- {
		if p.Matches[i].GameWasPlayed {
			return i
		}
	}
	return -1
}

// rankParityFallback is the rule of last resort: the higher-ranked
// (lower RankIndex) player's parity against the tournament's initial
// color decides.
func rankParityFallback(t *tournament.Tournament, a, b *tournament.Player) tournament.Color {
	initial := t.InferInitialColor()
	if initial == tournament.ColorNone {
		initial = tournament.ColorWhite
	}
	higher := a
	if b.RankIndex < a.RankIndex {
		higher = b
	}
	var higherColor tournament.Color
	if higher.RankIndex%2 == 0 {
		higherColor = initial
	} else {
		higherColor = initial.Invert()
	}
	if higher == a {
		return higherColor
	}
	return higherColor.Invert()
}
