package tournament

import "sort"

// UpdateRanks recomputes PlayersByRank and every player's RankIndex:
// valid (non-withdrawn) players ordered by descending score-with-
// acceleration, ties broken by ascending id — the order the original
// engine calls "the effective pairing number" (spec §4.C).
func (t *Tournament) UpdateRanks() {
	ids := make([]int, 0, len(t.Players))
	for _, p := range t.Players {
		if p.IsValid {
			ids = append(ids, p.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := t.Players[ids[i]], t.Players[ids[j]]
		si, sj := t.ScoreWithAcceleration(pi, 0), t.ScoreWithAcceleration(pj, 0)
		if si != sj {
			return si > sj
		}
		return pi.ID < pj.ID
	})
	t.PlayersByRank = ids
	for rank, id := range ids {
		t.Players[id].RankIndex = rank
	}
}

// ComputePlayerData recomputes, for every valid player, the per-round
// fields spec §4.C derives from match history: color counts and
// imbalance, color/repeated-color preference, strong-preference flag,
// and played-game count.
func (t *Tournament) ComputePlayerData() {
	for _, p := range t.Players {
		if !p.IsValid {
			continue
		}
		t.computeOnePlayer(p)
	}
}

func (t *Tournament) computeOnePlayer(p *Player) {
	var white, black, played int
	var lastColor, secondLastColor Color = ColorNone, ColorNone
	for _, m := range p.Matches {
		if !m.ParticipatedInPairing || m.Color == ColorNone {
			continue
		}
		played++
		switch m.Color {
		case ColorWhite:
			white++
		case ColorBlack:
			black++
		}
		secondLastColor = lastColor
		lastColor = m.Color
	}
	p.PlayedGames = played

	imbalance := white - black
	if imbalance < 0 {
		imbalance = -imbalance
	}
	p.ColorImbalance = imbalance

	repeated := ColorNone
	if lastColor != ColorNone && lastColor == secondLastColor {
		repeated = lastColor
	}
	p.RepeatedColor = repeated

	p.ColorPreference = colorPreference(white, black, imbalance, repeated, lastColor)
	p.StrongColorPreference = imbalance == 1 && repeated == ColorNone
}

// colorPreference implements spec §4.C's rule exactly in priority
// order: an absolute imbalance wins outright; otherwise two
// consecutive identical colors force the opposite; otherwise any
// nonzero imbalance is reduced; otherwise, per FIDE C.04.1, a player
// who has played at least one game still alternates from whatever
// color they played last; only a player with no games at all has no
// preference.
func colorPreference(white, black, imbalance int, repeated, lastColor Color) Color {
	if imbalance >= 2 {
		if white > black {
			return ColorBlack
		}
		return ColorWhite
	}
	if repeated != ColorNone {
		return repeated.Invert()
	}
	if imbalance != 0 {
		if white > black {
			return ColorBlack
		}
		return ColorWhite
	}
	if lastColor != ColorNone {
		return lastColor.Invert()
	}
	return ColorNone
}

// ScoreWithAcceleration returns player's score, on the Points scale,
// roundsBack rounds before the current one, including whatever
// acceleration bonus applied on that round (spec §4.C / original
// engine's Player::scoreWithAcceleration).
func (t *Tournament) ScoreWithAcceleration(p *Player, roundsBack int) Points {
	score := p.Score
	round := t.Config.PlayedRounds
	for roundsBack > 0 {
		round--
		score -= t.GetPoints(p, p.Matches[round])
		roundsBack--
	}
	var bonus Points
	if round < len(p.Accelerations) {
		bonus = p.Accelerations[round]
	}
	return score + bonus
}

// Acceleration returns the bonus applying to player on the round about
// to be paired (round index Config.PlayedRounds).
func (t *Tournament) Acceleration(p *Player) Points {
	if t.Config.PlayedRounds >= len(p.Accelerations) {
		return 0
	}
	return p.Accelerations[t.Config.PlayedRounds]
}

// ByeEligible reports whether player may receive the pairing-allocated
// bye: none of their previous byes may have been a full-point bye
// (spec §4.C).
func ByeEligible(p *Player) bool {
	for _, m := range p.Matches {
		if m.Opponent == p.ID && m.Score == ScoreWin {
			return false
		}
	}
	return true
}

// InferInitialColor deduces Config.InitialColor (when unset) from the
// first played round in which any two players were assigned colors:
// the top-by-rank participant of that round fixes the convention,
// inverted if their effective pairing number that round was odd
// (spec §4.C).
func (t *Tournament) InferInitialColor() Color {
	if t.Config.InitialColor != ColorNone {
		return t.Config.InitialColor
	}
	for round := 0; round < t.Config.PlayedRounds; round++ {
		if color, ok := t.firstColorAtRound(round); ok {
			return color
		}
	}
	return ColorNone
}

func (t *Tournament) firstColorAtRound(round int) (Color, bool) {
	for _, id := range t.PlayersByRank {
		p := t.Players[id]
		if round >= len(p.Matches) {
			continue
		}
		m := p.Matches[round]
		if m.Color == ColorNone {
			continue
		}
		// The player's 0-based RankIndex (rank 0 being the top rank)
		// serves as the effective pairing number: an even one means the
		// player held the initial color that round.
		if p.RankIndex%2 == 0 {
			return m.Color, true
		}
		return m.Color.Invert(), true
	}
	return ColorNone, false
}
