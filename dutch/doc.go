// Package dutch implements the FIDE Dutch pairing system: a top-down
// bracket walk over players grouped by score, where each bracket's
// candidate pairs are scored by a single lexicographically-encoded edge
// weight and handed to package matching for a maximum-weight solve.
//
// The edge weight (weight.go) packs, from most to least significant:
// compatibility (a forbidden pair, and with rematch avoidance on a pair
// that has already played, gets no edge at all, so the solver can never
// choose it; two players with the same absolute color preference are
// not excluded, their edge only gets the lowest color tier), how many of the
// pair's two endpoints still belong to the bracket under
// consideration (rewards keeping pairs inside their own bracket over
// floating players down), a color-preference compatibility tier, and a
// rank-closeness term that prefers pairing adjacent-ranked players when
// several legal completions exist. See DESIGN.md for how this collapses
// spec §4.D's twelve-field, multi-re-solve perturbation protocol into
// one encoded weight per bracket.
package dutch
