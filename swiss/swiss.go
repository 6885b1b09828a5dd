package swiss

import (
	"github.com/katalvlaran/swisspair/burstein"
	"github.com/katalvlaran/swisspair/dutch"
	"github.com/katalvlaran/swisspair/pairing"
	"github.com/katalvlaran/swisspair/tournament"
)

// System selects which pairing rule set Pair runs.
type System int

const (
	SystemDutch System = iota
	SystemBurstein
)

// String renders the system the way the CLI surface names it
// (spec §6's `--dutch | --burstein` flags).
func (s System) String() string {
	switch s {
	case SystemDutch:
		return "dutch"
	case SystemBurstein:
		return "burstein"
	default:
		return "unknown"
	}
}

// Pair computes the next round's pairings for t under system. For
// Burstein it first applies the round's acceleration bonus
// (burstein.ApplyAcceleration) before running the bracket walk, since
// that bonus must be in place before tiebreak metrics or score brackets
// are computed; Dutch has no acceleration step of its own to run.
//
// Burstein's acceleration bonus is hardcoded to the configured win
// value (spec §4.E); a caller that has disabled DefaultAcceleration —
// signalling accelerations were computed by some other, non-default
// rule before the snapshot reached this engine — gets UnapplicableFeature
// rather than a silently wrong bonus (spec §6's own example of this
// error family).
func Pair(t *tournament.Tournament, system System) ([]pairing.Pairing, error) {
	switch system {
	case SystemDutch:
		return dutch.Pair(t)
	case SystemBurstein:
		if !t.Config.DefaultAcceleration {
			return nil, tournament.NewUnapplicableFeature("burstein: acceleration bonus requires DefaultAcceleration; snapshot supplies non-default accelerations")
		}
		burstein.ApplyAcceleration(t)
		return burstein.Pair(t)
	default:
		return nil, tournament.NewUnapplicableFeature("unknown pairing system requested")
	}
}
