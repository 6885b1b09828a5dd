package wideint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynamicZeroValue(t *testing.T) {
	var z Dynamic
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.BitLen())
	assert.True(t, z.Equal(Zero))
}

func TestDynamicAddSub(t *testing.T) {
	a := FromUint64(1 << 63)
	b := FromUint64(1 << 63)
	sum := a.Add(b)
	assert.False(t, sum.IsZero())
	assert.Equal(t, 65, sum.BitLen())

	back := sum.Sub(b)
	assert.True(t, back.Equal(a))
}

func TestDynamicOrdering(t *testing.T) {
	small := FromUint64(5)
	big := FromUint64(1000)
	assert.True(t, small.Less(big))
	assert.False(t, big.Less(small))
	assert.Equal(t, 1, big.Cmp(small))
}

func TestDynamicLshGrowNeverDropsBits(t *testing.T) {
	v := FromUint64(1)
	grown := v.LshGrow(70)
	assert.Equal(t, 71, grown.BitLen())
	assert.False(t, grown.IsZero())

	back := grown.Rsh(70)
	assert.True(t, back.Equal(v))
}

func TestDynamicLshTruncatesToCurrentWidth(t *testing.T) {
	v := FromUint64(1)
	// Within a single 64-bit word, Lsh truncates at the current width (64
	// bits) rather than growing — shifting the top bit out zeroes it.
	shifted := v.Lsh(64)
	assert.True(t, shifted.IsZero())
}

func TestDynamicBitwiseFieldPacking(t *testing.T) {
	// Mirrors how the Dutch edge-weight builder composes fields: shift
	// left by the field width, then OR in the new field.
	acc := FromUint64(0)
	acc = acc.LshGrow(4).Or(FromUint64(0b1010))
	acc = acc.LshGrow(3).Or(FromUint64(0b101))
	assert.Equal(t, uint64(0b1010_101), acc.Uint64())
}

func TestDynamicIncrement(t *testing.T) {
	v := FromUint64(0xFFFFFFFFFFFFFFFF)
	inc := v.Inc()
	assert.Equal(t, 65, inc.BitLen())
}

func TestDynamicRshBeyondWidthZeroes(t *testing.T) {
	v := FromUint64(1234)
	assert.True(t, v.Rsh(200).IsZero())
}
