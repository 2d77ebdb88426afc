package cpu

import "emu8051/mask"

// Data-movement family: MOV/MOVX/MOVC, PUSH/POP, XCH/XCHD (spec.md §4.D).

func execMOVAImm(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(op1)
	c.setP()
	return 0
}
// execMOVADirect is MOV A,direct (0xE5). Addressing the accumulator itself
// this way (direct operand 0xE0) is a hazard the original flags rather than
// rejects: mov_a_mem raises it only here, not on every direct access to
// 0xE0 (opcodes.c), since PUSH ACC/POP ACC/ADD A,ACC and friends route
// through the accumulator legitimately.
func execMOVADirect(c *CPU, opcode, op1, op2 byte) int {
	if op1 == sfrACC {
		c.raise(ExcAccToA)
	}
	c.SetACC(c.ReadDirect(op1))
	c.setP()
	return 0
}
func movAIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.ReadIndirect(c.State.Reg(ri)))
		c.setP()
		return 0
	}
}
func movAReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(regOperand(c, n))
		c.setP()
		return 0
	}
}

func execMOVDirectImm(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, op2)
	return 1
}

// execMOVDirectDirect is MOV direct,direct (0x85). The operand bytes are
// encoded (src, dest) — the well-known 8051 quirk where the source address
// is fetched first even though the mnemonic order is dest,src (spec.md
// §4.D.1 supplemental notes).
func execMOVDirectDirect(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op2, c.ReadDirect(op1))
	return 1
}

func movDirectIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteDirect(op1, c.ReadIndirect(c.State.Reg(ri)))
		return 1
	}
}

func execMOVDirectReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteDirect(op1, regOperand(c, n))
		return 1
	}
}

func movIndirectDirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteIndirect(c.State.Reg(ri), c.ReadDirect(op1))
		return 1
	}
}

func movIndirectImm(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteIndirect(c.State.Reg(ri), op1)
		return 0
	}
}

func movIndirectA(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteIndirect(c.State.Reg(ri), c.GetACC())
		return 0
	}
}

func movRegDirect(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		v := c.ReadDirect(op1)
		c.State.SetReg(n, v)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, true)
		return 1
	}
}

func movRegImm(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.State.SetReg(n, op1)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), op1, true)
		return 0
	}
}

func movRegA(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		v := c.GetACC()
		c.State.SetReg(n, v)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, true)
		return 0
	}
}

func execMOVDirectA(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.GetACC())
	return 1
}

func execMOVDPTRImm(c *CPU, opcode, op1, op2 byte) int {
	c.SetDPTR(uint16(op1)<<8 | uint16(op2))
	return 1
}

func execMOVCIndirectPC(c *CPU, opcode, op1, op2 byte) int {
	addr := c.State.PC + uint16(c.GetACC())
	c.SetACC(c.State.Code.Read(addr))
	c.setP()
	return 1
}

func execMOVCIndirectDPTR(c *CPU, opcode, op1, op2 byte) int {
	addr := c.GetDPTR() + uint16(c.GetACC())
	c.SetACC(c.State.Code.Read(addr))
	c.setP()
	return 1
}

func execMOVXADPTR(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.ReadXData(c.GetDPTR()))
	c.setP()
	return 1
}

func movXAIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.ReadXData(uint16(c.State.Reg(ri))))
		c.setP()
		return 1
	}
}

func execMOVXDPTRA(c *CPU, opcode, op1, op2 byte) int {
	c.WriteXData(c.GetDPTR(), c.GetACC())
	return 1
}

func movXIndirectA(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.WriteXData(uint16(c.State.Reg(ri)), c.GetACC())
		return 1
	}
}

func execPUSH(c *CPU, opcode, op1, op2 byte) int {
	c.pushStack(c.ReadDirect(op1))
	return 1
}

func execPOP(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.popStack())
	return 1
}

func execXCHDirect(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	d := c.ReadDirect(op1)
	c.SetACC(d)
	c.WriteDirect(op1, a)
	c.setP()
	return 0
}

func xchIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.GetACC()
		addr := c.State.Reg(ri)
		m := c.ReadIndirect(addr)
		c.SetACC(m)
		c.WriteIndirect(addr, a)
		c.setP()
		return 0
	}
}

func xchReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.GetACC()
		r := c.State.Reg(n)
		c.SetACC(r)
		c.State.SetReg(n, a)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), a, true)
		c.setP()
		return 0
	}
}

// xchdIndirect is XCHD A,@Ri: swaps only the low nibbles of ACC and the
// indirectly-addressed byte, leaving each high nibble untouched (spec.md
// §4.D).
func xchdIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.GetACC()
		addr := c.State.Reg(ri)
		m := c.ReadIndirect(addr)
		newA := mask.HiNibble(a)<<4 | mask.LoNibble(m)
		newM := mask.HiNibble(m)<<4 | mask.LoNibble(a)
		c.SetACC(newA)
		c.WriteIndirect(addr, newM)
		c.setP()
		return 0
	}
}
