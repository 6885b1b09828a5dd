package dutch_test

import (
	"testing"

	"github.com/katalvlaran/swisspair/dutch"
	"github.com/katalvlaran/swisspair/pairing"
	"github.com/katalvlaran/swisspair/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayers(n int) []*tournament.Player {
	ps := make([]*tournament.Player, n)
	for i := range ps {
		ps[i] = &tournament.Player{ID: i, IsValid: true}
	}
	return ps
}

// TestDutchTwoRoundsPlayedTwoPlayers exercises spec §8 scenario 3: A
// won round 1 as white, B lost as black; round 2 should pair them
// again with colors inverted.
func TestDutchTwoRoundsPlayedTwoPlayers(t *testing.T) {
	players := newPlayers(2)
	a, b := players[0], players[1]
	a.Matches = []tournament.Match{{Opponent: b.ID, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true}}
	b.Matches = []tournament.Match{{Opponent: a.ID, Color: tournament.ColorBlack, Score: tournament.ScoreLoss, GameWasPlayed: true, ParticipatedInPairing: true}}
	a.Score, b.Score = 10, 0

	cfg := tournament.DefaultConfig()
	cfg.PlayedRounds = 1
	cfg.ExpectedRounds = 2
	tt, err := tournament.NewTournament(cfg, players)
	require.NoError(t, err)

	result, err := dutch.Pair(tt)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, b.ID, result[0].White)
	assert.Equal(t, a.ID, result[0].Black)
}

// TestDutchOddCountSingleDownfloater exercises spec §8 scenario 4:
// three players at score 0.0, initial_color white; A and B should
// pair (A white), C floats to the bye.
func TestDutchOddCountSingleDownfloater(t *testing.T) {
	players := newPlayers(3)
	a, b, c := players[0], players[1], players[2]

	cfg := tournament.DefaultConfig()
	cfg.InitialColor = tournament.ColorWhite
	tt, err := tournament.NewTournament(cfg, players)
	require.NoError(t, err)

	result, err := dutch.Pair(tt)
	require.NoError(t, err)
	require.Len(t, result, 2)

	var bye, real *pairing.Pairing
	for i := range result {
		r := result[i]
		if r.IsBye() {
			bye = &r
		} else {
			real = &r
		}
	}
	require.NotNil(t, bye)
	require.NotNil(t, real)
	assert.Equal(t, c.ID, bye.White)
	assert.Equal(t, a.ID, real.White)
	assert.Equal(t, b.ID, real.Black)
}

// TestDutchForbiddenPairAvoided exercises spec §8 scenario 5: with A
// and B forbidden from meeting and two feasible alternatives, the
// matching never pairs A directly with B.
func TestDutchForbiddenPairAvoided(t *testing.T) {
	players := newPlayers(4)
	a, b := players[0], players[1]
	a.Forbidden = map[int]struct{}{b.ID: {}}
	b.Forbidden = map[int]struct{}{a.ID: {}}

	tt, err := tournament.NewTournament(tournament.DefaultConfig(), players)
	require.NoError(t, err)

	result, err := dutch.Pair(tt)
	require.NoError(t, err)
	require.Len(t, result, 2)

	for _, r := range result {
		together := (r.White == a.ID && r.Black == b.ID) || (r.White == b.ID && r.Black == a.ID)
		assert.False(t, together, "A and B must not be paired directly")
	}
}
