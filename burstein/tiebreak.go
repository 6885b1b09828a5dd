package burstein

import "github.com/katalvlaran/swisspair/tournament"

// adjustedScores returns, for every player id, the sum over their whole
// history of each game's points with unplayed games (byes, forfeits)
// counted as a draw instead of their real value — the common input every
// tiebreak formula below reads opponents' strength from (ported from
// burstein.cpp's getAdjustedPoints, applied over a player's full match
// list rather than call-by-call).
func adjustedScores(t *tournament.Tournament) []tournament.Points {
	out := make([]tournament.Points, len(t.Players))
	for _, p := range t.Players {
		if !p.IsValid {
			continue
		}
		var sum tournament.Points
		for _, m := range p.Matches {
			if m.GameWasPlayed {
				sum += t.PointsForScore(m.Score)
			} else {
				sum += t.Config.PointsForDraw
			}
		}
		out[p.ID] = sum
	}
	return out
}

// sonnebornBerger is the sum, over every played game, of the opponent's
// adjusted score weighted by the player's own result in that game (a win
// counts the opponent's full strength, a draw counts half, a loss
// counts none); an unplayed game (bye, forfeit) substitutes the
// player's own running score in place of a real opponent (ported from
// burstein.cpp's calculateSonnebornBerger).
//
// The original additionally discounts each term by a "future virtual
// points" factor that shrinks as rounds not yet played are walked,
// because its match slice carries a placeholder entry for every round up
// to the event's expected total. This package's Match slices only ever
// hold rounds actually recorded, so that term is always zero here and is
// dropped rather than carried as dead arithmetic (see DESIGN.md).
func sonnebornBerger(t *tournament.Tournament, p *tournament.Player, adjusted []tournament.Points) int64 {
	if !p.IsValid {
		return 0
	}
	scoreSoFar := t.Acceleration(p)
	var result int64
	for _, m := range p.Matches {
		if m.GameWasPlayed {
			result += int64(adjusted[m.Opponent]) * int64(t.PointsForScore(m.Score))
		} else {
			result += int64(t.PointsForScore(m.Score)) * int64(scoreSoFar+t.PointsForScore(m.Score.Invert()))
		}
		scoreSoFar += t.PointsForScore(m.Score)
	}
	return result
}

// buchholz is the sum of the adjusted scores of every opponent the
// player has faced (an unplayed game substitutes the player's own
// running score plus the points of the inverted result, same
// substitution sonnebornBerger uses); median additionally drops the
// single lowest and single highest term, and is defined as zero until
// the third round (ported from burstein.cpp's calculateBuchholzTiebreak,
// with the same future-virtual-points simplification noted on
// sonnebornBerger).
func buchholz(t *tournament.Tournament, p *tournament.Player, adjusted []tournament.Points, median bool) int64 {
	if !p.IsValid || (median && t.Config.PlayedRounds <= 2) {
		return 0
	}
	scoreSoFar := t.Acceleration(p)
	var result int64
	var min, max int64
	haveMin := false
	for _, m := range p.Matches {
		var adjustment int64
		if m.GameWasPlayed {
			adjustment = int64(adjusted[m.Opponent])
		} else {
			adjustment = int64(scoreSoFar) + int64(t.PointsForScore(m.Score.Invert()))
		}
		result += adjustment
		if !haveMin || adjustment < min {
			min, haveMin = adjustment, true
		}
		if adjustment > max {
			max = adjustment
		}
		scoreSoFar += t.PointsForScore(m.Score)
	}
	if median {
		result -= min
		result -= max
	}
	return result
}
