// Package cpu implements the Intel MCS-51 (8051) instruction set: internal
// RAM with register-bank aliasing, the bit-addressable area, the SFR page,
// the 256-slot opcode dispatch table, and a per-instruction trace hook fed
// to an external accumulator.
package cpu

import (
	"emu8051/mask"
	"emu8051/mem"
)

// Direct addresses of named SFRs (spec.md §3).
const (
	sfrSP   = 0x81
	sfrDPL  = 0x82
	sfrDPH  = 0x83
	sfrPCON = 0x87
	sfrTCON = 0x88
	sfrTMOD = 0x89
	sfrTL0  = 0x8A
	sfrTL1  = 0x8B
	sfrTH0  = 0x8C
	sfrTH1  = 0x8D
	sfrP0   = 0x80
	sfrP1   = 0x90
	sfrP2   = 0xA0
	sfrP3   = 0xB0
	sfrSCON = 0x98
	sfrSBUF = 0x99
	sfrIE   = 0xA8
	sfrIP   = 0xB8
	sfrPSW  = 0xD0
	sfrACC  = 0xE0
	sfrB    = 0xF0
)

// PSW bit masks (spec.md §3, invariant).
const (
	PSW_P   byte = 1 << 0
	PSW_OV  byte = 1 << 2
	PSW_RS0 byte = 1 << 3
	PSW_RS1 byte = 1 << 4
	PSW_F0  byte = 1 << 5
	PSW_AC  byte = 1 << 6
	PSW_C   byte = 1 << 7
)

// InterruptShadow is the 2-entry save area captured at interrupt entry and
// checked at RETI (spec.md §3, §4.D "Interrupts (skeleton)").
type InterruptShadow struct {
	ACC, SP, PSW [2]byte // index 0 = low priority, index 1 = high priority
	Active       byte    // bit0 = low active, bit1 = high active
}

// State is the complete 8051 programmer-visible state: the SFR page, the
// lower 128 bytes of internal RAM (with the bottom 32 aliased as four
// register banks and 0x20-0x2F bit-addressable), an optional upper 128
// bytes reachable only by indirect addressing, the program counter, code
// ROM, external data memory, and the interrupt shadow.
type State struct {
	PC uint16

	SFR   [128]byte // direct addresses 0x80-0xFF
	Lower [128]byte // direct addresses 0x00-0x7F
	Upper *[128]byte // indirect-only addresses 0x80-0xFF; nil if unconfigured

	Code  *mem.CodeROM
	XData *mem.Bus

	Interrupt InterruptShadow
}

// NewState builds a State with the given code ROM size and XDATA size (both
// rounded up to a power of two by mem.NewCodeROM/mem.NewBus), and no upper
// RAM configured. Call EnableUpperRAM to add it.
func NewState(codeSize, xdataSize int) *State {
	return &State{
		Code:  mem.NewCodeROM(codeSize),
		XData: mem.NewBus(xdataSize),
	}
}

// EnableUpperRAM installs the optional upper 128 bytes of internal RAM.
func (s *State) EnableUpperRAM() {
	s.Upper = &[128]byte{}
}

// Bank returns the active register bank selected by PSW's RS1:RS0 field.
// PSW is laid out MSB-first as C AC F0 RS1 RS0 OV _ P, so RS1:RS0 occupies
// mask's 1-indexed positions 4-5, which mask.Range extracts (spec.md §3
// PSW layout).
func (s *State) Bank() byte {
	return mask.Range(s.SFR[sfrPSW-0x80], mask.I4, mask.I5)
}

// RegAddr returns the direct address backing Rn in the active bank.
func (s *State) RegAddr(n byte) byte {
	return (n & 7) + s.Bank()<<3
}

// Reg reads Rn through the active bank.
func (s *State) Reg(n byte) byte {
	return s.Lower[s.RegAddr(n)]
}

// SetReg writes Rn through the active bank.
func (s *State) SetReg(n, v byte) {
	s.Lower[s.RegAddr(n)] = v
}

// DPTR returns the 16-bit data pointer, always the live concatenation of DPH
// and DPL (spec.md invariant #4 — there is no separate DPTR field).
func (s *State) DPTR() uint16 {
	return uint16(s.SFR[sfrDPH-0x80])<<8 | uint16(s.SFR[sfrDPL-0x80])
}

// SetDPTR writes DPH and DPL from a 16-bit value.
func (s *State) SetDPTR(v uint16) {
	s.SFR[sfrDPH-0x80] = byte(v >> 8)
	s.SFR[sfrDPL-0x80] = byte(v)
}

// ACC returns the accumulator.
func (s *State) ACC() byte { return s.SFR[sfrACC-0x80] }

// SetACC writes the accumulator.
func (s *State) SetACC(v byte) { s.SFR[sfrACC-0x80] = v }

// B returns the B register.
func (s *State) B() byte { return s.SFR[sfrB-0x80] }

// SetB writes the B register.
func (s *State) SetB(v byte) { s.SFR[sfrB-0x80] = v }

// PSW returns the program status word.
func (s *State) PSW() byte { return s.SFR[sfrPSW-0x80] }

// SetPSW writes the program status word.
func (s *State) SetPSW(v byte) { s.SFR[sfrPSW-0x80] = v }

// SP returns the stack pointer.
func (s *State) SP() byte { return s.SFR[sfrSP-0x80] }

// SetSP writes the stack pointer.
func (s *State) SetSP(v byte) { s.SFR[sfrSP-0x80] = v }
