package wideint

import "math/bits"

const wordBits = 64

// Dynamic is an arbitrary-width unsigned integer backed by a little-endian
// slice of 64-bit limbs: words[0] holds the least-significant bits. The
// zero value (a nil slice) represents zero, so a plain `var z Dynamic` or
// a zeroed struct field is ready to use without an explicit constructor —
// mirroring how the teacher's Dense matrix and Graph zero values behave
// predictably (see matrix.Dense, core.Graph).
//
// The slice is always kept "trimmed": no high-order all-zero limb, except
// that a logically-zero value may be represented by a nil or empty slice.
// Equal and Less therefore never need to skip leading zero limbs in the
// longer operand — word-count alone is not significant, only trimmed
// word-count is, and every constructor/mutator below trims before
// returning.
type Dynamic struct {
	words []uint64
}

// FromUint64 constructs a Dynamic equal to v.
func FromUint64(v uint64) Dynamic {
	if v == 0 {
		return Dynamic{}
	}
	return Dynamic{words: []uint64{v}}
}

// Zero is the additive identity, equal to the zero value of Dynamic.
var Zero = Dynamic{}

func trim(w []uint64) []uint64 {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

// IsZero reports whether d is the numeric value zero.
func (d Dynamic) IsZero() bool {
	return len(trim(d.words)) == 0
}

// BitLen returns the number of bits required to represent d, 0 for zero.
func (d Dynamic) BitLen() int {
	w := trim(d.words)
	if len(w) == 0 {
		return 0
	}
	return (len(w)-1)*wordBits + bits.Len64(w[len(w)-1])
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than o.
func (d Dynamic) Cmp(o Dynamic) int {
	a, b := trim(d.words), trim(o.words)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether d < o.
func (d Dynamic) Less(o Dynamic) bool { return d.Cmp(o) < 0 }

// Equal reports whether d == o.
func (d Dynamic) Equal(o Dynamic) bool { return d.Cmp(o) == 0 }

// Add returns d + o.
func (d Dynamic) Add(o Dynamic) Dynamic {
	a, b := d.words, o.words
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a)+1)
	var carry uint64
	for i := range a {
		var bi uint64
		if i < len(b) {
			bi = b[i]
		}
		sum, c := bits.Add64(a[i], bi, carry)
		out[i] = sum
		carry = c
	}
	out[len(a)] = carry
	return Dynamic{words: trim(out)}
}

// Sub returns d - o with wrap-on-underflow semantics (two's-complement
// truncated to the result's natural width); the orchestrator guarantees
// this path is never exercised when it would underflow, per spec §4.A.
func (d Dynamic) Sub(o Dynamic) Dynamic {
	n := len(d.words)
	if len(o.words) > n {
		n = len(o.words)
	}
	out := make([]uint64, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(d.words) {
			ai = d.words[i]
		}
		if i < len(o.words) {
			bi = o.words[i]
		}
		diff, bo := bits.Sub64(ai, bi, borrow)
		out[i] = diff
		borrow = bo
	}
	return Dynamic{words: trim(out)}
}

// Inc returns d + 1.
func (d Dynamic) Inc() Dynamic { return d.Add(FromUint64(1)) }

// And returns the bitwise AND of d and o.
func (d Dynamic) And(o Dynamic) Dynamic {
	n := len(d.words)
	if len(o.words) < n {
		n = len(o.words)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = d.words[i] & o.words[i]
	}
	return Dynamic{words: trim(out)}
}

// Or returns the bitwise OR of d and o.
func (d Dynamic) Or(o Dynamic) Dynamic {
	a, b := d.words, o.words
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a))
	copy(out, a)
	for i := range b {
		out[i] |= b[i]
	}
	return Dynamic{words: trim(out)}
}

// Rsh returns d right-shifted by n bits; bits shifted past position 0 are
// discarded and shifting beyond the current width zeroes the value.
func (d Dynamic) Rsh(n uint) Dynamic {
	w := trim(d.words)
	if len(w) == 0 || int(n) >= len(w)*wordBits {
		return Dynamic{}
	}
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)
	out := make([]uint64, len(w)-wordShift)
	for i := range out {
		lo := w[i+wordShift] >> bitShift
		var hi uint64
		if bitShift != 0 && i+wordShift+1 < len(w) {
			hi = w[i+wordShift+1] << (wordBits - bitShift)
		}
		out[i] = lo | hi
	}
	return Dynamic{words: trim(out)}
}

// Lsh returns d left-shifted by n bits within d's CURRENT word width: bits
// shifted past the top of the existing representation are dropped. Use
// LshGrow to widen the representation instead of truncating.
func (d Dynamic) Lsh(n uint) Dynamic {
	width := len(trim(d.words)) * wordBits
	grown := d.LshGrow(n)
	return grown.truncateToBits(width)
}

// LshGrow returns d left-shifted by n bits, widening the limb slice as
// needed so no high-order bits are dropped. This is the form the Dutch
// edge-weight builder uses: each packed field grows the accumulated
// weight rather than overflowing it away.
func (d Dynamic) LshGrow(n uint) Dynamic {
	w := trim(d.words)
	if len(w) == 0 || n == 0 {
		if n == 0 {
			return Dynamic{words: w}
		}
		return Dynamic{}
	}
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)
	out := make([]uint64, len(w)+wordShift+1)
	for i, word := range w {
		lo := word << bitShift
		out[i+wordShift] |= lo
		if bitShift != 0 {
			hi := word >> (wordBits - bitShift)
			out[i+wordShift+1] |= hi
		}
	}
	return Dynamic{words: trim(out)}
}

func (d Dynamic) truncateToBits(width int) Dynamic {
	if width <= 0 {
		return Dynamic{}
	}
	fullWords := width / wordBits
	rem := uint(width % wordBits)
	w := d.words
	if fullWords >= len(w) {
		return Dynamic{words: trim(w)}
	}
	out := make([]uint64, fullWords+1)
	copy(out, w[:fullWords])
	if rem != 0 && fullWords < len(w) {
		mask := (uint64(1) << rem) - 1
		out[fullWords] = w[fullWords] & mask
	}
	return Dynamic{words: trim(out)}
}

// Uint64 returns the low 64 bits of d, for tests and diagnostics.
func (d Dynamic) Uint64() uint64 {
	if len(d.words) == 0 {
		return 0
	}
	return d.words[0]
}
