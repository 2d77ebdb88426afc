package cpu

// Arithmetic family: ADD/ADDC/SUBB/INC/DEC/MUL/DIV/DA A (spec.md §4.C,
// §4.D).

func execADDImm(c *CPU, opcode, op1, op2 byte) int {
	return doAdd(c, op1, 0)
}
func execADDDirect(c *CPU, opcode, op1, op2 byte) int {
	return doAdd(c, c.ReadDirect(op1), 0)
}
func addIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int { return doAdd(c, c.ReadIndirect(c.State.Reg(ri)), 0) }
}
func addReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int { return doAdd(c, regOperand(c, n), 0) }
}

func execADDCImm(c *CPU, opcode, op1, op2 byte) int {
	return doAdd(c, op1, carryIn(c))
}
func execADDCDirect(c *CPU, opcode, op1, op2 byte) int {
	return doAdd(c, c.ReadDirect(op1), carryIn(c))
}
func addcIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		return doAdd(c, c.ReadIndirect(c.State.Reg(ri)), carryIn(c))
	}
}
func addcReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int { return doAdd(c, regOperand(c, n), carryIn(c)) }
}

func execSUBBImm(c *CPU, opcode, op1, op2 byte) int {
	return doSub(c, op1, carryIn(c))
}
func execSUBBDirect(c *CPU, opcode, op1, op2 byte) int {
	return doSub(c, c.ReadDirect(op1), carryIn(c))
}
func subbIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		return doSub(c, c.ReadIndirect(c.State.Reg(ri)), carryIn(c))
	}
}
func subbReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int { return doSub(c, regOperand(c, n), carryIn(c)) }
}

func carryIn(c *CPU) byte {
	if c.GetPSW()&PSW_C != 0 {
		return 1
	}
	return 0
}

// regOperand reads Rn for use as an ALU operand, tracing its RAM address
// (register-direct operands are memory cells, not named registers — only
// ACC/B/SP/PSW/DPTR are symbolic, per spec.md §4.B).
func regOperand(c *CPU, n byte) byte {
	v := c.State.Reg(n)
	c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, false)
	return v
}

func doAdd(c *CPU, operand, carry byte) int {
	a := c.GetACC()
	sum, flags := addFlags(a, operand, carry)
	c.SetACC(sum)
	c.replacePSWFlags(flags)
	c.setP()
	return 0
}

func doSub(c *CPU, operand, carry byte) int {
	a := c.GetACC()
	diff, flags := subFlags(a, operand, carry)
	c.SetACC(diff)
	c.replacePSWFlags(flags)
	c.setP()
	return 0
}

func execINCA(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() + 1)
	c.setP()
	return 0
}

func execINCDirect(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)+1)
	return 0
}

func incIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.State.Reg(ri)
		c.WriteIndirect(a, c.ReadIndirect(a)+1)
		return 0
	}
}

func incReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		v := c.State.Reg(n) + 1
		c.State.SetReg(n, v)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, true)
		return 0
	}
}

func execINCDPTR(c *CPU, opcode, op1, op2 byte) int {
	c.SetDPTR(c.GetDPTR() + 1)
	return 1
}

func execDECA(c *CPU, opcode, op1, op2 byte) int {
	c.SetACC(c.GetACC() - 1)
	c.setP()
	return 0
}

func execDECDirect(c *CPU, opcode, op1, op2 byte) int {
	c.WriteDirect(op1, c.ReadDirect(op1)-1)
	return 0
}

func decIndirect(ri byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		a := c.State.Reg(ri)
		c.WriteIndirect(a, c.ReadIndirect(a)-1)
		return 0
	}
}

func decReg(n byte) func(c *CPU, opcode, op1, op2 byte) int {
	return func(c *CPU, opcode, op1, op2 byte) int {
		v := c.State.Reg(n) - 1
		c.State.SetReg(n, v)
		c.Trace.MemPush(uint16(c.State.RegAddr(n)), v, true)
		return 0
	}
}

// execMUL implements MUL AB: the 16-bit product of ACC*B, low byte back
// into ACC, high byte into B; C is always cleared, OV set iff the product
// exceeds 0xFF (spec.md §4.D).
func execMUL(c *CPU, opcode, op1, op2 byte) int {
	a, b := c.GetACC(), c.GetB()
	product := uint16(a) * uint16(b)
	c.SetACC(byte(product))
	c.SetB(byte(product >> 8))
	flags := byte(0)
	if product > 0xFF {
		flags |= PSW_OV
	}
	c.replacePSWFlags(flags)
	c.setP()
	return 3
}

// execDIV implements DIV AB: ACC/B quotient into ACC, remainder into B; C
// is always cleared, OV set iff B was zero (division undefined, ACC/B left
// unchanged, per spec.md §4.D).
func execDIV(c *CPU, opcode, op1, op2 byte) int {
	a, b := c.GetACC(), c.GetB()
	flags := byte(0)
	if b == 0 {
		flags |= PSW_OV
	} else {
		q, r := a/b, a%b
		c.SetACC(q)
		c.SetB(r)
	}
	c.replacePSWFlags(flags)
	c.setP()
	return 3
}

func execDAA(c *CPU, opcode, op1, op2 byte) int {
	acc, psw := daa(c.GetACC(), c.GetPSW())
	c.SetACC(acc)
	c.SetPSW(psw)
	c.setP()
	return 0
}
