package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBit8051(t *testing.T) {
	assert.True(t, TestBit(0b0000_0001, 0))
	assert.False(t, TestBit(0b0000_0001, 1))
	assert.True(t, TestBit(0b1000_0000, 7))

	assert.Equal(t, byte(0b0000_0001), SetBit(0, 0))
	assert.Equal(t, byte(0b1000_0000), SetBit(0, 7))
	assert.Equal(t, byte(0), ClearBit(0b0000_0001, 0))

	assert.Equal(t, byte(0b0000_0001), PutBit(0, 0, true))
	assert.Equal(t, byte(0), PutBit(0b0000_0001, 0, false))
}

func TestSwapNibbles(t *testing.T) {
	assert.Equal(t, byte(0xBA), SwapNibbles(0xAB))
	assert.Equal(t, byte(0xAB), SwapNibbles(SwapNibbles(0xAB)))
	assert.Equal(t, byte(0x00), SwapNibbles(0x00))
}

func TestNibbles(t *testing.T) {
	assert.Equal(t, byte(0x0A), LoNibble(0xBA))
	assert.Equal(t, byte(0x0B), HiNibble(0xBA))
}
