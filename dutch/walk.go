package dutch

import (
	"errors"

	"github.com/katalvlaran/swisspair/matching"
	"github.com/katalvlaran/swisspair/pairing"
	"github.com/katalvlaran/swisspair/tournament"
	"github.com/katalvlaran/swisspair/wideint"
)

// Pair runs the Dutch bracket walk over t and returns the round's
// pairings, sorted per spec §4.F. It first runs with rematch avoidance
// on; if that leaves no valid pairing, it retries with rematch
// avoidance off, falling back to only the configured forbidden-pair
// list (spec §8: a repeat of a prior opponent is only ever produced
// when the validity pass would otherwise fail — e.g. a two-player
// tournament past round one, which has no other opponent to offer).
func Pair(t *tournament.Tournament) ([]pairing.Pairing, error) {
	result, err := pair(t, true)
	if err != nil && errors.Is(err, tournament.ErrNoValidPairing) {
		result, err = pair(t, false)
	}
	return result, err
}

func pair(t *tournament.Tournament, avoidRematches bool) ([]pairing.Pairing, error) {
	ids := append([]int{}, t.PlayersByRank...)

	var bye int
	haveBye := false
	if len(ids)%2 == 1 {
		bye = pairing.LowestRankedEligible(t, ids)
		if bye == -1 {
			return nil, tournament.NewNoValidPairing("no player is eligible for the pairing-allocated bye")
		}
		haveBye = true
		ids = removeID(ids, bye)
	}

	brackets := scoreBrackets(t, ids)
	wb := newWeightBuilder(len(t.Players))

	var carry []int
	var result []pairing.Pairing

	for i, bracket := range brackets {
		pool := append(append([]int{}, carry...), bracket...)
		carry = nil
		native := make(map[int]bool, len(bracket))
		for _, id := range bracket {
			native[id] = true
		}
		inBracket := func(id int) bool { return native[id] }

		last := i == len(brackets)-1

		matchedPairs, unmatched, err := solveBracket(t, wb, pool, inBracket, avoidRematches)
		if err != nil {
			return nil, err
		}
		result = append(result, matchedPairs...)

		switch {
		case len(unmatched) == 0:
			// nothing to carry
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

// removeID returns ids with every occurrence of target removed.
func removeID(ids []int, target int) []int {
	out := make([]int, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// solveBracket builds the weighted graph for pool (a score bracket plus
// any downfloaters carried into it), solves for a maximum-weight
// matching, and returns the finalized pairs (colors already assigned)
// and the ids left unmatched.
func solveBracket(t *tournament.Tournament, wb *weightBuilder, pool []int, inBracket func(id int) bool, avoidRematches bool) ([]pairing.Pairing, []int, error) {
	if len(pool) == 0 {
		return nil, nil, nil
	}

	g := matching.NewGraph[wideint.Dynamic]()
	index := make(map[int]int, len(pool))
	for _, id := range pool {
		index[id] = g.AddVertex()
	}

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			pi, pj := t.Player(pool[i]), t.Player(pool[j])
			w, ok := wb.base(pi, pj, inBracket, avoidRematches)
			if !ok {
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
		done[id] = true
		done[otherID] = true
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
