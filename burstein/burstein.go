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

import (
	"errors"

	"github.com/katalvlaran/swisspair/matching"
	"github.com/katalvlaran/swisspair/pairing"
	"github.com/katalvlaran/swisspair/tournament"
	"github.com/katalvlaran/swisspair/wideint"
)

// ApplyAcceleration sets the round-about-to-be-paired acceleration bonus
// on every valid player: for the first two rounds, the better-ranked
// half of the field gets a full win's worth of bonus points and the rest
// get none; from round three on, no new bonus is added (ported from
// burstein.cpp's BursteinInfo::updateAccelerations). Callers run this
// after UpdateRanks so RankIndex reflects the round about to be paired.
func ApplyAcceleration(t *tournament.Tournament) {
	if t.Config.PlayedRounds >= 2 {
		return
	}
	rankBound := 0
	for _, p := range t.Players {
		if p.IsValid {
			rankBound++
		}
	}
	for _, p := range t.Players {
		if !p.IsValid {
			continue
		}
		var bonus tournament.Points
		if p.RankIndex < rankBound>>1 {
			bonus = t.Config.PointsForWin
		}
		p.Accelerations = append(p.Accelerations, bonus)
	}
}

// Pair runs the Burstein bracket walk over t and returns the round's
// pairings, sorted per spec §4.F. It first runs with rematch
// avoidance on; if that leaves no valid pairing, it retries with
// rematch avoidance off, falling back to only the configured
// forbidden-pair list (spec §8: a repeat of a prior opponent is only
// ever produced when the validity pass would otherwise fail).
func Pair(t *tournament.Tournament) ([]pairing.Pairing, error) {
	result, err := pair(t, true)
	if err != nil && errors.Is(err, tournament.ErrNoValidPairing) {
		result, err = pair(t, false)
	}
	return result, err
}

func pair(t *tournament.Tournament, avoidRematches bool) ([]pairing.Pairing, error) {
	metrics := computeMetricScores(t)
	ranked := rankedIDs(t, metrics)

	var bye int
	haveBye := false
	if len(ranked)%2 == 1 {
		id, ok := lowestEligibleForBye(t, ranked)
		if !ok {
			return nil, tournament.NewNoValidPairing("no player is eligible for the pairing-allocated bye")
		}
		bye, haveBye = id, true
		ranked = removeID(ranked, id)
	}

	brackets := scoreBrackets(ranked, metrics)

	metricRank := make(map[int]int, len(ranked))
	for i, id := range ranked {
		metricRank[id] = i
	}

	var carry []int
	var result []pairing.Pairing
	for i, bracket := range brackets {
		pool := append(append([]int{}, carry...), bracket...)
		carry = nil
		native := make(map[int]bool, len(bracket))
		for _, id := range bracket {
			native[id] = true
		}
		last := i == len(brackets)-1

		matched, unmatched, err := solveBracket(t, pool, native, metricRank, avoidRematches)
		if err != nil {
			return nil, err
		}
		result = append(result, matched...)

		switch {
		case len(unmatched) == 0:
		case len(unmatched) == 1:
			if last {
				return nil, tournament.NewNoValidPairing("final bracket leaves a player unpaired")
			}
			carry = unmatched
		default:
			if last {
				return nil, tournament.NewNoValidPairing("final bracket leaves more than one player unpaired")
			}
			carry = unmatched
		}
	}
	if len(carry) > 0 {
		return nil, tournament.NewNoValidPairing("players remain unpaired after the last bracket")
	}

	if haveBye {
		result = append(result, pairing.Pairing{White: bye, Black: bye})
	}

	pairing.SortPairings(result, t)
	return result, nil
}

// lowestEligibleForBye walks ranked from its weakest end looking for the
// first player who may still receive the pairing-allocated bye (ported
// from burstein.cpp's backward scan over sortedPlayers).
func lowestEligibleForBye(t *tournament.Tournament, ranked []int) (int, bool) {
	for i := len(ranked) - 1; i >= 0; i-- {
		id := ranked[i]
		if pairing.EligibleForBye(t.Player(id)) {
			return id, true
		}
	}
	return 0, false
}

func removeID(ids []int, target int) []int {
	out := make([]int, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func solveBracket(t *tournament.Tournament, pool []int, native map[int]bool, metricRank map[int]int, avoidRematches bool) ([]pairing.Pairing, []int, error) {
	if len(pool) == 0 {
		return nil, nil, nil
	}

	g := matching.NewGraph[wideint.Fixed64]()
	index := make(map[int]int, len(pool))
	for _, id := range pool {
		index[id] = g.AddVertex()
	}

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			a, b := t.Player(pool[i]), t.Player(pool[j])
			sameScoreGroup := native[pool[i]] && native[pool[j]]
			w := computeEdgeWeight(a, b, sameScoreGroup, sameScoreGroup, metricRank[pool[i]], metricRank[pool[j]], avoidRematches)
			if w.IsZero() {
				continue
			}
			if err := g.SetEdgeWeight(index[pool[i]], index[pool[j]], w); err != nil {
				return nil, nil, err
			}
		}
	}

	g.ComputeMatching()
	m := g.GetMatching()

	var pairs []pairing.Pairing
	var unmatched []int
	done := make(map[int]bool, len(pool))
	for _, id := range pool {
		if done[id] {
			continue
		}
		vi := index[id]
		partner := m[vi]
		if partner == vi {
			unmatched = append(unmatched, id)
			continue
		}
		var otherID int
		for _, candidate := range pool {
			if index[candidate] == partner {
				otherID = candidate
				break
			}
		}
		done[id], done[otherID] = true, true
		a, b := t.Player(id), t.Player(otherID)
		white := pairing.AssignColors(t, a, b)
		if white == tournament.ColorBlack {
			pairs = append(pairs, pairing.Pairing{White: otherID, Black: id})
		} else {
			pairs = append(pairs, pairing.Pairing{White: id, Black: otherID})
		}
	}
	return pairs, unmatched, nil
}
