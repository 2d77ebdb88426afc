package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchTableSizes(t *testing.T) {
	cases := map[byte]int{
		0x00: 1, // NOP
		0x02: 3, // LJMP
		0x24: 2, // ADD A,#imm
		0x85: 3, // MOV direct,direct
		0x90: 3, // MOV DPTR,#imm16
		0xE8: 1, // MOV A,R0
		0xB4: 3, // CJNE A,#imm,rel
	}
	for op, size := range cases {
		assert.Equal(t, size, dispatchTable[op].size, "opcode %#x", op)
		assert.NotNil(t, dispatchTable[op].exec, "opcode %#x", op)
	}
}

func TestDispatchTableAJMPACALLPages(t *testing.T) {
	for page := byte(0); page < 8; page++ {
		ajmp := page<<5 | 0x01
		acall := page<<5 | 0x11
		assert.NotNil(t, dispatchTable[ajmp].exec, "ajmp page %d", page)
		assert.NotNil(t, dispatchTable[acall].exec, "acall page %d", page)
		assert.Equal(t, 2, dispatchTable[ajmp].size)
		assert.Equal(t, 2, dispatchTable[acall].size)
	}
}

func TestDispatchTableRnGroupsAllEightRegisters(t *testing.T) {
	for n := byte(0); n < 8; n++ {
		assert.NotNil(t, dispatchTable[0x28+n].exec, "ADD A,R%d", n)
		assert.NotNil(t, dispatchTable[0xF8+n].exec, "MOV R%d,A", n)
	}
}

func TestDispatchTableReservedOpcodeIsIllegal(t *testing.T) {
	assert.Equal(t, "reserved", dispatchTable[0xA5].name)
}
