package tournament

import (
	"errors"
	"fmt"
)

// The three boundary error families spec §7 requires: each wraps a
// package-level sentinel so callers can branch with errors.Is while
// still getting a human-readable reason string attached, the way
// builder and tsp attach instance detail ahead of a sentinel
// (fmt.Errorf("...: %w", Err...)).
var (
	ErrNoValidPairing    = errors.New("tournament: no valid pairing")
	ErrUnapplicable      = errors.New("tournament: rule set cannot accommodate this configuration")
	ErrBuildLimitExceeded = errors.New("tournament: a counter exceeded its configured maximum")

	// ErrForbiddenPairAsymmetric and ErrSelfForbidden are raised eagerly
	// by NewTournament's validation pass (spec's supplemented feature,
	// SPEC_FULL §3), before any pairing attempt. They are standalone
	// sentinels, not wrappers of ErrBuildLimitExceeded: a malformed
	// forbidden-pair set is a configuration defect, not a pairing-time
	// infeasibility, and errors.Is matches these two only by themselves.
	ErrForbiddenPairAsymmetric = errors.New("tournament: forbidden pair is not symmetric")
	ErrSelfForbidden           = errors.New("tournament: a player cannot forbid themself")
)

// NoValidPairingError reports that the current round has no pairing
// satisfying the absolute criteria (spec §7).
type NoValidPairingError struct{ Reason string }

func (e *NoValidPairingError) Error() string { return fmt.Sprintf("no valid pairing: %s", e.Reason) }
func (e *NoValidPairingError) Unwrap() error { return ErrNoValidPairing }

// NewNoValidPairing constructs a NoValidPairingError with reason.
func NewNoValidPairing(reason string) error { return &NoValidPairingError{Reason: reason} }

// UnapplicableFeatureError reports that a configured option cannot be
// honored by the selected rule set (spec §7).
type UnapplicableFeatureError struct{ Reason string }

func (e *UnapplicableFeatureError) Error() string {
	return fmt.Sprintf("unapplicable feature: %s", e.Reason)
}
func (e *UnapplicableFeatureError) Unwrap() error { return ErrUnapplicable }

// NewUnapplicableFeature constructs an UnapplicableFeatureError with reason.
func NewUnapplicableFeature(reason string) error { return &UnapplicableFeatureError{Reason: reason} }

// BuildLimitExceededError reports that a counter would overflow a
// configured maximum: player count, round count, or point cap (spec §7).
type BuildLimitExceededError struct{ Reason string }

func (e *BuildLimitExceededError) Error() string {
	return fmt.Sprintf("build limit exceeded: %s", e.Reason)
}
func (e *BuildLimitExceededError) Unwrap() error { return ErrBuildLimitExceeded }

// NewBuildLimitExceeded constructs a BuildLimitExceededError with reason.
func NewBuildLimitExceeded(reason string) error { return &BuildLimitExceededError{Reason: reason} }
