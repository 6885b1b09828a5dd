package tournament

import "fmt"

// NewTournament validates players and config and returns a ready-to-use
// Tournament. Validation is eager (spec's supplemented feature,
// SPEC_FULL §3, grounded on the original engine's checker.cpp
// philosophy: checks run before pairing, not discovered mid-bracket-walk):
// every forbidden pair must be declared symmetrically on both sides and
// no player may forbid themself.
func NewTournament(config Config, players []*Player) (*Tournament, error) {
	for _, p := range players {
		if !p.IsValid {
			continue
		}
		for opp := range p.Forbidden {
			if opp == p.ID {
				return nil, fmt.Errorf("player %d: %w", p.ID, ErrSelfForbidden)
			}
			if opp < 0 || opp >= len(players) {
				return nil, NewBuildLimitExceeded(fmt.Sprintf("player %d forbids unknown id %d", p.ID, opp))
			}
			if !players[opp].Forbids(p.ID) {
				return nil, fmt.Errorf("players %d and %d: %w", p.ID, opp, ErrForbiddenPairAsymmetric)
			}
		}
	}

	t := &Tournament{Players: players, Config: config}
	t.UpdateRanks()
	t.ComputePlayerData()
	return t, nil
}
