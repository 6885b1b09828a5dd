package tournament_test

import (
	"testing"

	"github.com/katalvlaran/swisspair/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColorPreferenceAbsoluteImbalance: a player with 3 whites and 1
// black (imbalance 2) must prefer black regardless of recent history.
func TestColorPreferenceAbsoluteImbalance(t *testing.T) {
	p := &tournament.Player{
		ID:      0,
		IsValid: true,
		Matches: []tournament.Match{
			{Opponent: 1, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 2, Color: tournament.ColorWhite, Score: tournament.ScoreLoss, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 3, Color: tournament.ColorBlack, Score: tournament.ScoreDraw, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 4, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
		},
	}
	other := &tournament.Player{ID: 1, IsValid: true}
	tr := &tournament.Tournament{Players: []*tournament.Player{p, other}, Config: tournament.DefaultConfig()}
	tr.Config.PlayedRounds = 4
	tr.ComputePlayerData()

	assert.Equal(t, 2, p.ColorImbalance)
	assert.True(t, p.AbsoluteColorImbalance())
	assert.Equal(t, tournament.ColorBlack, p.ColorPreference)
}

// TestColorPreferenceTwoConsecutiveRepeats: two same-color games in a
// row with imbalance still below the absolute threshold forces the
// opposite color next.
func TestColorPreferenceTwoConsecutiveRepeats(t *testing.T) {
	p := &tournament.Player{
		ID:      0,
		IsValid: true,
		Matches: []tournament.Match{
			{Opponent: 1, Color: tournament.ColorBlack, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 2, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 3, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
		},
	}
	tr := &tournament.Tournament{Players: []*tournament.Player{p}, Config: tournament.DefaultConfig()}
	tr.Config.PlayedRounds = 3
	tr.ComputePlayerData()

	assert.Equal(t, tournament.ColorWhite, p.RepeatedColor)
	assert.True(t, p.AbsoluteColorPreference())
	assert.Equal(t, tournament.ColorBlack, p.ColorPreference)
}

// TestColorPreferenceNoHistory: a player with no games has no
// preference and no strong preference.
func TestColorPreferenceNoHistory(t *testing.T) {
	p := &tournament.Player{ID: 0, IsValid: true}
	tr := &tournament.Tournament{Players: []*tournament.Player{p}, Config: tournament.DefaultConfig()}
	tr.ComputePlayerData()

	assert.Equal(t, tournament.ColorNone, p.ColorPreference)
	assert.False(t, p.StrongColorPreference)
	assert.False(t, p.AbsoluteColorPreference())
}

// TestColorPreferenceAlternatesWhenBalanced: a player with White,Black
// history (imbalance 0, no two-game repeat) should still alternate
// from the last color played per FIDE C.04.1, preferring White next —
// not fall through to no preference.
func TestColorPreferenceAlternatesWhenBalanced(t *testing.T) {
	p := &tournament.Player{
		ID:      0,
		IsValid: true,
		Matches: []tournament.Match{
			{Opponent: 1, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
			{Opponent: 2, Color: tournament.ColorBlack, Score: tournament.ScoreLoss, GameWasPlayed: true, ParticipatedInPairing: true},
		},
	}
	tr := &tournament.Tournament{Players: []*tournament.Player{p}, Config: tournament.DefaultConfig()}
	tr.Config.PlayedRounds = 2
	tr.ComputePlayerData()

	assert.Equal(t, 0, p.ColorImbalance)
	assert.Equal(t, tournament.ColorNone, p.RepeatedColor)
	assert.Equal(t, tournament.ColorWhite, p.ColorPreference)
}

// TestByeEligibleExcludesPriorFullPointBye: a player who already took
// a full-point (win-scored) bye is ineligible for another.
func TestByeEligibleExcludesPriorFullPointBye(t *testing.T) {
	eligible := &tournament.Player{ID: 0, Matches: []tournament.Match{
		{Opponent: 0, Score: tournament.ScoreDraw, ParticipatedInPairing: true},
	}}
	ineligible := &tournament.Player{ID: 1, Matches: []tournament.Match{
		{Opponent: 1, Score: tournament.ScoreWin, ParticipatedInPairing: true},
	}}
	assert.True(t, tournament.ByeEligible(eligible))
	assert.False(t, tournament.ByeEligible(ineligible))
}

// TestUpdateRanksOrdersByScoreThenID checks descending-score,
// ascending-id tie-break and that withdrawn players are excluded.
func TestUpdateRanksOrdersByScoreThenID(t *testing.T) {
	a := &tournament.Player{ID: 0, Score: 10, IsValid: true}
	b := &tournament.Player{ID: 1, Score: 15, IsValid: true}
	c := &tournament.Player{ID: 2, Score: 10, IsValid: true}
	withdrawn := &tournament.Player{ID: 3, Score: 100, IsValid: false}
	tr := &tournament.Tournament{Players: []*tournament.Player{a, b, c, withdrawn}, Config: tournament.DefaultConfig()}

	tr.UpdateRanks()

	require.Equal(t, []int{1, 0, 2}, tr.PlayersByRank)
	assert.Equal(t, 0, b.RankIndex)
	assert.Equal(t, 1, a.RankIndex)
	assert.Equal(t, 2, c.RankIndex)
}

// TestNewTournamentRejectsAsymmetricForbiddenPair validates the eager
// construction-time check.
func TestNewTournamentRejectsAsymmetricForbiddenPair(t *testing.T) {
	a := &tournament.Player{ID: 0, IsValid: true, Forbidden: map[int]struct{}{1: {}}}
	b := &tournament.Player{ID: 1, IsValid: true, Forbidden: map[int]struct{}{}}

	_, err := tournament.NewTournament(tournament.DefaultConfig(), []*tournament.Player{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, tournament.ErrForbiddenPairAsymmetric)
}

// TestNewTournamentRejectsSelfForbid validates the other eager check.
func TestNewTournamentRejectsSelfForbid(t *testing.T) {
	a := &tournament.Player{ID: 0, IsValid: true, Forbidden: map[int]struct{}{0: {}}}

	_, err := tournament.NewTournament(tournament.DefaultConfig(), []*tournament.Player{a})
	require.Error(t, err)
	assert.ErrorIs(t, err, tournament.ErrSelfForbidden)
}

// TestNewTournamentAcceptsSymmetricForbiddenPair is the accompanying
// positive case.
func TestNewTournamentAcceptsSymmetricForbiddenPair(t *testing.T) {
	a := &tournament.Player{ID: 0, IsValid: true, Forbidden: map[int]struct{}{1: {}}}
	b := &tournament.Player{ID: 1, IsValid: true, Forbidden: map[int]struct{}{0: {}}}

	tr, err := tournament.NewTournament(tournament.DefaultConfig(), []*tournament.Player{a, b})
	require.NoError(t, err)
	assert.Len(t, tr.PlayersByRank, 2)
}
