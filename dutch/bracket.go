package dutch

import "github.com/katalvlaran/swisspair/tournament"

// scoreBrackets groups ids into brackets by descending
// score_with_acceleration, each bracket a contiguous run. ids is
// expected in the order PlayersByRank gives (score-desc, rank_index-asc
// by UpdateRanks — spec §4.D "Players are sorted by descending
// score_with_acceleration, ties by rank_index"), with the
// pairing-allocated bye recipient, if any, already removed by the
// caller.
func scoreBrackets(t *tournament.Tournament, ids []int) [][]int {
	var brackets [][]int
	var current []int
	var currentScore tournament.Points
	haveCurrent := false

	for _, id := range ids {
		p := t.Player(id)
		score := t.ScoreWithAcceleration(p, 0)
		if !haveCurrent || score != currentScore {
			if haveCurrent {
				brackets = append(brackets, current)
			}
			current = nil
			currentScore = score
			haveCurrent = true
		}
		current = append(current, id)
	}
	if haveCurrent {
		brackets = append(brackets, current)
	}
	return brackets
}
