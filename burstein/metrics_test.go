package burstein

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricScoresLessEqualScoresComparesSonnebornBergerFirst(t *testing.T) {
	lower := MetricScores{PlayerScore: 10, SonnebornBerger: 50}
	higher := MetricScores{PlayerScore: 10, SonnebornBerger: 60}

	assert.True(t, lower.Less(higher))
	assert.False(t, higher.Less(lower))
}

func TestMetricScoresLessEqualScoresFallsThroughToBuchholzThenMedian(t *testing.T) {
	base := MetricScores{PlayerScore: 10, SonnebornBerger: 50, Buchholz: 20, Median: 8}
	higherBuchholz := MetricScores{PlayerScore: 10, SonnebornBerger: 50, Buchholz: 30, Median: 8}
	higherMedian := MetricScores{PlayerScore: 10, SonnebornBerger: 50, Buchholz: 20, Median: 9}

	assert.True(t, base.Less(higherBuchholz))
	assert.True(t, base.Less(higherMedian))
}

// TestMetricScoresLessEqualScoresRankTiebreakFavorsLowerIndex checks the
// deliberately asymmetric final tiebreak: with every tiebreak term equal,
// the profile carrying the higher (weaker) rank index is the Less one.
func TestMetricScoresLessEqualScoresRankTiebreakFavorsLowerIndex(t *testing.T) {
	weaker := MetricScores{PlayerScore: 10, RankIndex: 5}
	stronger := MetricScores{PlayerScore: 10, RankIndex: 2}

	assert.True(t, weaker.Less(stronger))
	assert.False(t, stronger.Less(weaker))
}

// TestMetricScoresLessUnequalScoresScalesBuchholzByOwnScore checks the
// unequal-score branch: Sonneborn-Berger still compares directly, but
// Buchholz is scaled by each side's own PlayerScore before comparing, so
// a floater from a different scoregroup stays commensurate with the
// bracket it's being measured against.
func TestMetricScoresLessUnequalScoresScalesBuchholzByOwnScore(t *testing.T) {
	lowScoreHighBuchholz := MetricScores{PlayerScore: 10, SonnebornBerger: 0, Buchholz: 10}  // buchholzScore = 100
	highScoreLowBuchholz := MetricScores{PlayerScore: 20, SonnebornBerger: 0, Buchholz: 3}   // buchholzScore = 60

	assert.False(t, lowScoreHighBuchholz.Less(highScoreLowBuchholz)) // 100 < 60 is false
	assert.True(t, highScoreLowBuchholz.Less(lowScoreHighBuchholz))  // 60 < 100 is true
}

func TestMetricScoresLessUnequalScoresSonnebornBergerComparedDirectly(t *testing.T) {
	lower := MetricScores{PlayerScore: 10, SonnebornBerger: 5}
	higher := MetricScores{PlayerScore: 20, SonnebornBerger: 50}

	assert.True(t, lower.Less(higher))
	assert.False(t, higher.Less(lower))
}
