package burstein

import "github.com/katalvlaran/swisspair/tournament"

// MetricScores is the full tiebreak profile used to order players
// within a scoregroup, including a floater carried down from a higher
// one (ported from burstein.cpp's MetricScores).
type MetricScores struct {
	PlayerScore     tournament.Points
	SonnebornBerger int64
	Buchholz        int64
	Median          int64
	RankIndex       int
}

// computeMetricScores builds the profile for every valid player in t,
// indexed by player id.
func computeMetricScores(t *tournament.Tournament) []MetricScores {
	adjusted := adjustedScores(t)
	out := make([]MetricScores, len(t.Players))
	for _, p := range t.Players {
		if !p.IsValid {
			continue
		}
		out[p.ID] = MetricScores{
			PlayerScore:     t.ScoreWithAcceleration(p, 0),
			SonnebornBerger: sonnebornBerger(t, p, adjusted),
			Buchholz:        buchholz(t, p, adjusted, false),
			Median:          buchholz(t, p, adjusted, true),
			RankIndex:       p.RankIndex,
		}
	}
	return out
}

func (m MetricScores) buchholzScore() int64 { return m.Buchholz * int64(m.PlayerScore) }
func (m MetricScores) medianScore() int64   { return m.Median * int64(m.PlayerScore) }

// Less orders m ahead of other within a scoregroup (including when
// other is a floater from a different one): equal scores compare the
// three tiebreak terms directly with ties broken by rank index; unequal
// scores compare Sonneborn-Berger directly but scale Buchholz and
// median by each side's own score first, so a floater's numbers stay
// commensurate with the bracket it is being compared against. Either
// way, the final tiebreak swaps which side's rank index is read from
// which tuple — deliberately asymmetric in the original (burstein.cpp's
// MetricScores::operator<) and preserved here rather than "fixed", since
// it is verified production behavior rather than an accident: ties
// consistently favor the lower rank index (the stronger player).
func (m MetricScores) Less(other MetricScores) bool {
	if m.PlayerScore == other.PlayerScore {
		switch {
		case m.SonnebornBerger != other.SonnebornBerger:
			return m.SonnebornBerger < other.SonnebornBerger
		case m.Buchholz != other.Buchholz:
			return m.Buchholz < other.Buchholz
		case m.Median != other.Median:
			return m.Median < other.Median
		default:
			return other.RankIndex < m.RankIndex
		}
	}
	switch bs, obs := m.buchholzScore(), other.buchholzScore(); {
	case m.SonnebornBerger != other.SonnebornBerger:
		return m.SonnebornBerger < other.SonnebornBerger
	case bs != obs:
		return bs < obs
	case m.medianScore() != other.medianScore():
		return m.medianScore() < other.medianScore()
	default:
		return other.RankIndex < m.RankIndex
	}
}
