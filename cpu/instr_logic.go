package cpu

import "emu8051/mask"

// Logic family: byte-wide ANL/ORL/XRL and the A-only rotate/swap/complement
// group (spec.md §4.D).

func execANLDirectA(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)&c.GetACC())
	return 0
}
func execANLDirectImm(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)&op2)
	return 1
}
func execANLAImm(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() & op1)
	c.setP()
	return 0
}
func execANLADirect(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() & c.ReadDirect(op1))
	c.setP()
	return 0
}
func anlAIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() & c.ReadIndirect(c.State.Reg(ri)))
		c.setP()
		return 0
	}
}
func anlAReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() & regOperand(c, n))
		c.setP()
		return 0
	}
}

func execORLDirectA(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)|c.GetACC())
	return 0
}
func execORLDirectImm(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)|op2)
	return 1
}
func execORLAImm(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() | op1)
	c.setP()
	return 0
}
func execORLADirect(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() | c.ReadDirect(op1))
	c.setP()
	return 0
}
func orlAIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() | c.ReadIndirect(c.State.Reg(ri)))
		c.setP()
		return 0
	}
}
func orlAReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() | regOperand(c, n))
		c.setP()
		return 0
	}
}

func execXRLDirectA(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)^c.GetACC())
	return 0
}
func execXRLDirectImm(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)^op2)
	return 1
}
func execXRLAImm(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() ^ op1)
	c.setP()
	return 0
}
func execXRLADirect(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() ^ c.ReadDirect(op1))
	c.setP()
	return 0
}
func xrlAIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() ^ c.ReadIndirect(c.State.Reg(ri)))
		c.setP()
		return 0
	}
}
func xrlAReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		c.SetACC(c.GetACC() ^ regOperand(c, n))
		c.setP()
		return 0
	}
}

// execRR rotates ACC right with no flag effect (spec.md §4.D: a pure
// bit-shuffle, unlike RRC).
func execRR(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	c.SetACC(a>>1 | a<<7)
	return 0
}

func execRL(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	c.SetACC(a<<1 | a>>7)
	return 0
}

// execRRC rotates ACC right through the carry flag.
func execRRC(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	psw := c.GetPSW()
	carryOut := a & 1
	var cin byte
	if psw&PSW_C != 0 {
		cin = 1
	}
	c.SetACC(a>>1 | cin<<7)
	flags := byte(0)
	if carryOut != 0 {
		flags |= PSW_C
	}
	c.replacePSWFlags(flags)
	c.setP()
	return 0
}

func execRLC(c *CPU, opcode, op1, op2 byte) int {
	a := c.GetACC()
	psw := c.GetPSW()
	carryOut := a >> 7
	var cin byte
	if psw&PSW_C != 0 {
		cin = 1
	}
	c.SetACC(a<<1 | cin)
	flags := byte(0)
	if carryOut != 0 {
		flags |= PSW_C
	}
	c.replacePSWFlags(flags)
	c.setP()
	return 0
}

func execSWAP(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(mask.SwapNibbles(c.GetACC()))
	return 0
}

func execCPLA(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(^c.GetACC())
	return 0
}

func execCLRA(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(0)
	c.setP()
	return 0
}
