package wideint

// Fixed64 is a fixed-width (64-bit) unsigned integer satisfying the same
// arithmetic surface as Dynamic, plus Mul/Div. The Burstein orchestrator
// packs its whole edge weight (spec §4.E: compatible/sameScoreGroup/
// compatibleColors/neighbor-priority fields) into a single machine word;
// it sums its per-field multipliers in plain uint64 and wraps the total
// with FixedFromUint64, so it does not call Mul or Div.
type Fixed64 struct {
	v uint64
}

// FixedFromUint64 constructs a Fixed64 equal to v.
func FixedFromUint64(v uint64) Fixed64 { return Fixed64{v: v} }

// IsZero reports whether f is zero.
func (f Fixed64) IsZero() bool { return f.v == 0 }

// Cmp returns -1, 0, or +1 as f is less than, equal to, or greater than o.
func (f Fixed64) Cmp(o Fixed64) int {
	switch {
	case f.v < o.v:
		return -1
	case f.v > o.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether f < o.
func (f Fixed64) Less(o Fixed64) bool { return f.v < o.v }

// Equal reports whether f == o.
func (f Fixed64) Equal(o Fixed64) bool { return f.v == o.v }

// Add returns f + o. Overflow wraps, as for any fixed-width unsigned type;
// callers size fields so the packed total stays within 64 bits (spec
// §4.E's weight has four small fields, nowhere near the word width).
func (f Fixed64) Add(o Fixed64) Fixed64 { return Fixed64{v: f.v + o.v} }

// Sub returns f - o with wrap-on-underflow semantics.
func (f Fixed64) Sub(o Fixed64) Fixed64 { return Fixed64{v: f.v - o.v} }

// Inc returns f + 1.
func (f Fixed64) Inc() Fixed64 { return Fixed64{v: f.v + 1} }

// And returns the bitwise AND of f and o.
func (f Fixed64) And(o Fixed64) Fixed64 { return Fixed64{v: f.v & o.v} }

// Or returns the bitwise OR of f and o.
func (f Fixed64) Or(o Fixed64) Fixed64 { return Fixed64{v: f.v | o.v} }

// Lsh returns f left-shifted by n bits, truncated to 64 bits.
func (f Fixed64) Lsh(n uint) Fixed64 {
	if n >= 64 {
		return Fixed64{}
	}
	return Fixed64{v: f.v << n}
}

// Rsh returns f right-shifted by n bits.
func (f Fixed64) Rsh(n uint) Fixed64 {
	if n >= 64 {
		return Fixed64{}
	}
	return Fixed64{v: f.v >> n}
}

// Mul returns f * o.
func (f Fixed64) Mul(o Fixed64) Fixed64 { return Fixed64{v: f.v * o.v} }

// Div returns f / o. Callers must not pass a zero divisor.
func (f Fixed64) Div(o Fixed64) Fixed64 { return Fixed64{v: f.v / o.v} }

// Uint64 returns the underlying value.
func (f Fixed64) Uint64() uint64 { return f.v }
