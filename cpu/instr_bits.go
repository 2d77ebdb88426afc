package cpu

// Bit-addressable family: the single-bit boolean processor instructions
// (spec.md §4.D). All operate through readBit/writeBit so bit addresses
// >= 0x80 route through the owning SFR's direct-address hooks, per the
// output-latch requirement in SPEC_FULL.md §9.

func (c *CPU) carryFlag() bool { return c.GetPSW()&PSW_C != 0 }

func (c *CPU) setCarry(v bool) {
	flags := byte(0)
	if v {
		flags = PSW_C
	}
	psw := c.GetPSW()
	c.SetPSW((psw &^ PSW_C) | flags)
}

func execMOVCBit(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(c.readBit(op1))
	return 1
}

func execMOVBitC(c *CPU, opcode, op1, op2 byte) int {
	c.writeBit(op1, c.carryFlag())
	return 1
}

func execANLCBit(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(c.carryFlag() && c.readBit(op1))
	return 1
}

func execANLCNotBit(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(c.carryFlag() && !c.readBit(op1))
	return 1
}

func execORLCBit(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(c.carryFlag() || c.readBit(op1))
	return 1
}

func execORLCNotBit(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(c.carryFlag() || !c.readBit(op1))
	return 1
}

func execCPLBit(c *CPU, opcode, op1, op2 byte) int {
	c.writeBit(op1, !c.readBit(op1))
	return 0
}

func execCPLC(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(!c.carryFlag())
	return 0
}

func execCLRBit(c *CPU, opcode, op1, op2 byte) int {
	c.writeBit(op1, false)
	return 0
}

func execCLRC(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(false)
	return 0
}

func execSETBBit(c *CPU, opcode, op1, op2 byte) int {
	c.writeBit(op1, true)
	return 0
}

func execSETBC(c *CPU, opcode, op1, op2 byte) int {
	c.setCarry(true)
	return 0
}
