// Package wideint provides fixed- and dynamic-width unsigned integer types
// used as lexicographic edge weights by the pairing orchestrators.
//
// Dutch packs many ordered criteria (compatibility, bye eligibility,
// bracket completion, color preference tiers, float history, ...) into a
// single integer by left-shifting an accumulated value and OR-ing in each
// new field (see package dutch). The packed width routinely exceeds any
// built-in unsigned type, hence Dynamic: a growable bit vector with the
// handful of operations the bracket walk actually needs (construction,
// comparison, AND/OR, shifts, addition, increment) and nothing else —
// no multiplication or division, because the orchestrator never needs
// them on the dynamic type (see Fixed64 for the one variant that has them).
//
// Fixed64 is the fixed-width companion used by the Burstein orchestrator,
// whose packed weight is small enough (a handful of small fields) to live
// in a machine word. Fixed64 also offers Mul/Div; the Burstein weight
// builder does not call them, it composes its "multiplier·flag" terms
// (spec §4.E) in uint64 before wrapping the total.
//
// All operations are on non-negative values; Sub has wrap-on-underflow
// semantics and callers (the orchestrators) are responsible for never
// relying on an underflowing subtraction, exactly as spec §4.A specifies.
package wideint
