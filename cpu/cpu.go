package cpu

import (
	"emu8051/trace"
)

// CPU ties programmer-visible State to the optional host hooks and the
// trace accumulator/writer pair. State and Trace must be set (NewCPU sets
// both); the hooks, OnException and the writer are optional. With no writer
// open, each frame is dropped after a logged warning
// (trace.Accumulator.Push's documented no-writer behavior).
type CPU struct {
	State *State

	SFRRead  [128]SFRReadHook
	SFRWrite [128]SFRWriteHook
	XRead    XReadHook
	XWrite   XWriteHook

	OnException ExceptionHook
	Logger      Logger

	Trace  *trace.Accumulator
	writer trace.Writer
}

// NewCPU builds a CPU with freshly-allocated code ROM and XDATA of the given
// sizes (see mem.NewCodeROM/mem.NewBus for the power-of-two rounding) and a
// ready trace accumulator.
func NewCPU(codeSize, xdataSize int) *CPU {
	return &CPU{
		State:  NewState(codeSize, xdataSize),
		Logger: DefaultLogger{},
		Trace:  trace.NewAccumulator(),
	}
}

// TraceOpen opens w and routes this CPU's frames to it.
func (c *CPU) TraceOpen(w trace.Writer, path string, meta trace.Meta) error {
	if err := w.Open(path, meta); err != nil {
		return err
	}
	c.writer = w
	return nil
}

// TraceClose finalizes the active trace writer, if any.
func (c *CPU) TraceClose() error {
	if c.writer == nil {
		return nil
	}
	err := c.writer.Finish()
	c.writer = nil
	return err
}

var dispatchTable [256]opEntry

type opEntry struct {
	size int
	name string
	exec func(c *CPU, opcode, op1, op2 byte) int
}

// Step fetches, decodes and executes one instruction, pushes the resulting
// trace frame (if a writer is open) and returns the consumed machine cycles
// (spec.md §4.E: "the entry's exec function returns extra cycles (0, 1, or
// 3) added to a base of 1").
func (c *CPU) Step() (cycles int, err error) {
	prePC := c.State.PC
	opcode := c.State.Code.Read(prePC)
	entry := dispatchTable[opcode]
	if entry.exec == nil {
		entry = dispatchTable[0x00] // unassigned opcode behaves as NOP
	}

	raw := make([]byte, entry.size)
	raw[0] = opcode
	var op1, op2 byte
	if entry.size >= 2 {
		op1 = c.State.Code.Read(prePC + 1)
		raw[1] = op1
	}
	if entry.size >= 3 {
		op2 = c.State.Code.Read(prePC + 2)
		raw[2] = op2
	}

	c.Trace.SetOp(raw)
	c.Trace.RegisterPush("PC", prePC, 16, false)

	c.State.PC = prePC + uint16(entry.size)
	extra := entry.exec(c, opcode, op1, op2)

	c.Trace.RegisterPush("PC", c.State.PC, 16, true)
	if err := c.Trace.Push(c.writer); err != nil {
		return 0, err
	}
	return 1 + extra, nil
}

// --- named-SFR accessors: every read/write pushes the SFR's symbolic name
// into the trace accumulator instead of its address (spec.md §4.B).

func (c *CPU) GetACC() byte {
	v := c.State.ACC()
	c.Trace.RegisterPush("ACC", uint16(v), 8, false)
	return v
}

func (c *CPU) SetACC(v byte) {
	c.State.SetACC(v)
	c.Trace.RegisterPush("ACC", uint16(v), 8, true)
}

func (c *CPU) GetB() byte {
	v := c.State.B()
	c.Trace.RegisterPush("B", uint16(v), 8, false)
	return v
}

func (c *CPU) SetB(v byte) {
	c.State.SetB(v)
	c.Trace.RegisterPush("B", uint16(v), 8, true)
}

func (c *CPU) GetPSW() byte {
	v := c.State.PSW()
	c.Trace.RegisterPush("PSW", uint16(v), 8, false)
	return v
}

func (c *CPU) SetPSW(v byte) {
	c.State.SetPSW(v)
	c.Trace.RegisterPush("PSW", uint16(v), 8, true)
}

func (c *CPU) GetSP() byte {
	v := c.State.SP()
	c.Trace.RegisterPush("SP", uint16(v), 8, false)
	return v
}

func (c *CPU) SetSP(v byte) {
	c.State.SetSP(v)
	c.Trace.RegisterPush("SP", uint16(v), 8, true)
}

func (c *CPU) GetDPL() byte {
	v := c.State.SFR[sfrDPL-0x80]
	c.Trace.RegisterPush("DPL", uint16(v), 8, false)
	return v
}

func (c *CPU) GetDPH() byte {
	v := c.State.SFR[sfrDPH-0x80]
	c.Trace.RegisterPush("DPH", uint16(v), 8, false)
	return v
}

// GetDPTR reads DPH:DPL as one 16-bit named operand, used by instructions
// that treat the data pointer as a unit (MOVC/MOVX @DPTR, JMP @A+DPTR, INC
// DPTR) rather than as two addressable SFR bytes.
func (c *CPU) GetDPTR() uint16 {
	v := c.State.DPTR()
	c.Trace.RegisterPush("DPTR", v, 16, false)
	return v
}

// SetDPTR writes DPH:DPL as one 16-bit named operand (MOV DPTR,#imm16).
func (c *CPU) SetDPTR(v uint16) {
	c.State.SetDPTR(v)
	c.Trace.RegisterPush("DPTR", v, 16, true)
}

// replacePSWFlags overwrites C/AC/OV in PSW from the same bits of flags
// (flags use the PSW_C/PSW_AC/PSW_OV bit positions), leaving F0/RS1/RS0/P
// untouched, and pushes the named PSW write.
func (c *CPU) replacePSWFlags(flags byte) {
	c.SetPSW(replaceCAO(c.State.PSW(), flags))
}

// setP recomputes the parity bit from ACC, as real hardware does after
// every instruction that can change ACC (spec.md §4.C, "P mirrors the
// accumulator's bit parity after every ACC-affecting instruction").
func (c *CPU) setP() {
	acc := c.State.ACC()
	var ones int
	for i := 0; i < 8; i++ {
		if acc&(1<<i) != 0 {
			ones++
		}
	}
	psw := c.State.PSW() &^ PSW_P
	if ones%2 != 0 {
		psw |= PSW_P
	}
	c.SetPSW(psw)
}

// pushStack writes v at SP+1 and advances SP, raising ExcStackOverflow (but
// still wrapping, per spec.md §3) when SP wraps past 0xFF.
func (c *CPU) pushStack(v byte) {
	sp := c.State.SP()
	newSP := sp + 1
	if newSP == 0 {
		c.raise(ExcStackOverflow)
	}
	c.SetSP(newSP)
	c.WriteIndirect(newSP, v)
}

// popStack reads the byte at SP and decrements SP, raising
// ExcStackUnderflow (but still wrapping) when SP wraps past 0x00.
func (c *CPU) popStack() byte {
	sp := c.State.SP()
	v := c.ReadIndirect(sp)
	newSP := sp - 1
	if sp == 0 {
		c.raise(ExcStackUnderflow)
	}
	c.SetSP(newSP)
	return v
}
