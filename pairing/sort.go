package pairing

import (
	"sort"

	"github.com/katalvlaran/swisspair/tournament"
)

// SortPairings orders a round's output per spec §4.F: byes last;
// otherwise by the higher-scoring player's score (desc), then the
// other player's score (desc), then the higher player's rank_index
// (asc).
func SortPairings(pairings []Pairing, t *tournament.Tournament) {
	sort.SliceStable(pairings, func(i, j int) bool {
		return pairingLess(pairings[i], pairings[j], t)
	})
}

func pairingLess(p, q Pairing, t *tournament.Tournament) bool {
	if p.IsBye() != q.IsBye() {
		return !p.IsBye() // non-byes sort before byes
	}
	if p.IsBye() && q.IsBye() {
		return false
	}

	pHi, pHiScore, pOtherScore := higherScoring(p, t)
	qHi, qHiScore, qOtherScore := higherScoring(q, t)

	if pHiScore != qHiScore {
		return pHiScore > qHiScore
	}
	if pOtherScore != qOtherScore {
		return pOtherScore > qOtherScore
	}
	return t.Player(pHi).RankIndex < t.Player(qHi).RankIndex
}

// higherScoring returns the id of the higher-scoring player in the
// pair, that player's score, and the other player's score — all on the
// same score-with-acceleration basis the bracket walk itself sorts by.
func higherScoring(p Pairing, t *tournament.Tournament) (id int, hi, other tournament.Points) {
	ws := t.ScoreWithAcceleration(t.Player(p.White), 0)
	bs := t.ScoreWithAcceleration(t.Player(p.Black), 0)
	if ws >= bs {
		return p.White, ws, bs
	}
	return p.Black, bs, ws
}
