package tournament_test

import (
	"fmt"

	"github.com/katalvlaran/swisspair/tournament"
)

// ExampleNewTournament builds a two-player, one-round-played snapshot
// and prints the resulting rank order and bye eligibility.
func ExampleNewTournament() {
	a := &tournament.Player{
		ID: 0, IsValid: true, Score: 10,
		Matches: []tournament.Match{
			{Opponent: 1, Color: tournament.ColorWhite, Score: tournament.ScoreWin, GameWasPlayed: true, ParticipatedInPairing: true},
		},
	}
	b := &tournament.Player{
		ID: 1, IsValid: true, Score: 0,
		Matches: []tournament.Match{
			{Opponent: 0, Color: tournament.ColorBlack, Score: tournament.ScoreLoss, GameWasPlayed: true, ParticipatedInPairing: true},
		},
	}

	cfg := tournament.DefaultConfig()
	cfg.PlayedRounds = 1
	tr, err := tournament.NewTournament(cfg, []*tournament.Player{a, b})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(tr.PlayersByRank)
	fmt.Println(tournament.ByeEligible(a), tournament.ByeEligible(b))
	// Output:
	// [0 1]
	// true true
}
