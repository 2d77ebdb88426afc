package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFlagsHalfCarryOverflow(t *testing.T) {
	sum, flags := addFlags(0x7F, 0x01, 0)
	assert.Equal(t, byte(0x80), sum)
	assert.Equal(t, byte(0), flags&PSW_C)
	assert.Equal(t, PSW_AC, flags&PSW_AC)
	assert.Equal(t, PSW_OV, flags&PSW_OV)
}

func TestAddFlagsCarryOut(t *testing.T) {
	sum, flags := addFlags(0xFF, 0x01, 0)
	assert.Equal(t, byte(0x00), sum)
	assert.Equal(t, PSW_C, flags&PSW_C)
	assert.Equal(t, PSW_AC, flags&PSW_AC)
	assert.Equal(t, byte(0), flags&PSW_OV)
}

func TestSubFlagsBorrow(t *testing.T) {
	diff, flags := subFlags(0x00, 0x01, 0)
	assert.Equal(t, byte(0xFF), diff)
	assert.Equal(t, PSW_C, flags&PSW_C, "borrow out sets C")
}

func TestSubFlagsNoBorrow(t *testing.T) {
	diff, flags := subFlags(0x05, 0x03, 0)
	assert.Equal(t, byte(0x02), diff)
	assert.Equal(t, byte(0), flags&PSW_C)
}

func TestReplaceCAOPreservesOtherBits(t *testing.T) {
	psw := byte(PSW_F0 | PSW_RS0)
	got := replaceCAO(psw, PSW_C|PSW_AC)
	assert.Equal(t, PSW_F0|PSW_RS0|PSW_C|PSW_AC, got)
}

func TestDAAAfterAddLowNibbleAdjust(t *testing.T) {
	// 0x09 + 0x01 = 0x0A: no half-carry, but low nibble > 9, so DA A adds 0x06.
	_, flags := addFlags(0x09, 0x01, 0)
	acc, _ := daa(0x0A, flags)
	assert.Equal(t, byte(0x10), acc)
}

func TestDAAStickyCarry(t *testing.T) {
	// Entering DA A with C already set must leave C set even if the
	// high-nibble correction alone wouldn't have set it.
	acc, psw := daa(0x05, PSW_C)
	assert.Equal(t, PSW_C, psw&PSW_C)
	assert.Equal(t, byte(0x65), acc)
}

func TestDAABothNibblesAdjusted(t *testing.T) {
	acc, psw := daa(0x9B, 0)
	assert.Equal(t, byte(0x01), acc)
	assert.Equal(t, PSW_C, psw&PSW_C)
}
