package cpu

// Control-transfer family: ACALL/AJMP/LCALL/LJMP/SJMP, the conditional
// branches, CJNE/DJNZ, and RET/RETI (spec.md §4.D).

func execNOP(c *CPU, opcode, op1, op2 byte) int { return 0 }

// execIllegal handles the single unassigned opcode (0xA5): raise an
// advisory exception and otherwise behave as NOP (spec.md §7: illegal
// opcodes never halt execution).
func execIllegal(c *CPU, opcode, op1, op2 byte) int {
	c.raise(ExcIllegalOpcode)
	return 0
}

func execAJMP(c *CPU, opcode, op1, op2 byte) int {
	page := uint16(opcode&0xE0) << 3
	c.State.PC = (c.State.PC &^ 0x07FF) | page | uint16(op1)
	return 1
}

func execACALL(c *CPU, opcode, op1, op2 byte) int {
	ret := c.State.PC
	c.pushStack(byte(ret))
	c.pushStack(byte(ret >> 8))
	page := uint16(opcode&0xE0) << 3
	c.State.PC = (ret &^ 0x07FF) | page | uint16(op1)
	return 1
}

func execLJMP(c *CPU, opcode, op1, op2 byte) int {
	c.State.PC = uint16(op1)<<8 | uint16(op2)
	return 1
}

func execLCALL(c *CPU, opcode, op1, op2 byte) int {
	ret := c.State.PC
	c.pushStack(byte(ret))
	c.pushStack(byte(ret >> 8))
	c.State.PC = uint16(op1)<<8 | uint16(op2)
	return 1
}

func execSJMP(c *CPU, opcode, op1, op2 byte) int {
	c.State.PC = uint16(int32(c.State.PC) + int32(int8(op1)))
	return 1
}

func execRET(c *CPU, opcode, op1, op2 byte) int {
	hi := c.popStack()
	lo := c.popStack()
	c.State.PC = uint16(hi)<<8 | uint16(lo)
	return 1
}

func execRETI(c *CPU, opcode, op1, op2 byte) int {
	hi := c.popStack()
	lo := c.popStack()
	c.State.PC = uint16(hi)<<8 | uint16(lo)
	c.checkRETI()
	return 1
}

func execJMPIndirect(c *CPU, opcode, op1, op2 byte) int {
	c.State.PC = c.GetDPTR() + uint16(c.GetACC())
	return 1
}

func relBranch(c *CPU, taken bool, rel byte) int {
	if taken {
		c.State.PC = uint16(int32(c.State.PC) + int32(int8(rel)))
	}
	return 1
}

func execJC(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, c.GetPSW()&PSW_C != 0, op1)
}

func execJNC(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, c.GetPSW()&PSW_C == 0, op1)
}

func execJZ(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, c.GetACC() == 0, op1)
}

func execJNZ(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, c.GetACC() != 0, op1)
}

func execJB(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, c.readBit(op1), op2)
}

func execJNB(c *CPU, opcode, op1, op2 byte) int {
	return relBranch(c, !c.readBit(op1), op2)
}

// execJBC tests and branches on a bit, clearing it when set (spec.md §4.D:
// "JBC clears the bit only on the taken path").
func execJBC(c *CPU, opcode, op1, op2 byte) int {
	if c.readBit(op1) {
		c.writeBit(op1, false)
		return relBranch(c, true, op2)
	}
	return relBranch(c, false, op2)
}

// execDJNZDirect is DJNZ direct,rel (0xD5): decrement-then-test, operating
// on a direct RAM/SFR byte.
func execDJNZDirect(c *CPU, opcode, op1, op2 byte) int {
	v := c.ReadDirect(op1) - 1
	c.WriteDirect(op1, v)
	return relBranch(c, v != 0, op2)
}

// execDJNZReg is DJNZ Rn,rel (0xD8-0xDF); the register index is the low 3
// bits of the opcode, decoded here rather than in the dispatch table
// (spec.md §9 design note).
func execDJNZReg(c *CPU, opcode, op1, op2 byte) int {
	n := opcode & 0x07
	v := c.State.Reg(n) - 1
	c.State.SetReg(n, v)
	c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, true)
	return relBranch(c, v != 0, op1)
}

func execCJNEImm(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	c.replacePSWFlags(borrowOnly(a, op1))
	return relBranch(c, a != op1, op2)
}

func execCJNEDirect(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	d := c.ReadDirect(op1)
	c.replacePSWFlags(borrowOnly(a, d))
	return relBranch(c, a != d, op2)
}

func cjneIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.GetACC()
		m := c.ReadIndirect(c.State.Reg(ri))
		c.replacePSWFlags(borrowOnly(a, m))
		return relBranch(c, a != m, op2)
	}
}

func cjneReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		rv := c.State.Reg(n)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), rv, false)
		c.replacePSWFlags(borrowOnly(rv, op1))
		return relBranch(c, rv != op1, op2)
	}
}

// borrowOnly reports the C flag CJNE sets: set if a < b unsigned, cleared
// otherwise (spec.md §4.D: "CJNE sets C exactly as SUBB would, without
// storing the difference").
func borrowOnly(a, b byte) byte {
	_, flags := subFlags(a, b, 0)
	return flags & PSW_C
}
