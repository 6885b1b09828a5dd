package burstein

import (
	"sort"

	"github.com/katalvlaran/swisspair/tournament"
)

// rankedIDs returns every valid player's id ordered the way
// burstein.cpp's sortedPlayers list is built: descending score, ties
// broken by descending tiebreak profile (computeMetricScores' own
// ordering, higher first).
func rankedIDs(t *tournament.Tournament, metrics []MetricScores) []int {
	var ids []int
	for _, p := range t.Players {
		if p.IsValid {
			ids = append(ids, p.ID)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		sa, sb := metrics[a].PlayerScore, metrics[b].PlayerScore
		if sa != sb {
			return sa > sb
		}
		return metrics[b].Less(metrics[a])
	})
	return ids
}

// scoreBrackets splits a ranked id list (already sorted best-first) into
// consecutive runs sharing one score, the unit each bracket solve
// starts from (ported from burstein.cpp's scoregroup
// construction, simplified to the same single-pass grouping package
// dutch uses — see DESIGN.md).
func scoreBrackets(ids []int, metrics []MetricScores) [][]int {
	var brackets [][]int
	var current []int
	var currentScore tournament.Points
	have := false
	for _, id := range ids {
		score := metrics[id].PlayerScore
		if !have || score != currentScore {
			if have {
				brackets = append(brackets, current)
			}
			current = nil
			currentScore = score
			have = true
		}
		current = append(current, id)
	}
	if have {
		brackets = append(brackets, current)
	}
	return brackets
}
