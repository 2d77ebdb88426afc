package cpu

import (
	"emu8051/mask"
	"emu8051/mem"
)

// ReadDirect reads one byte by direct address: addresses below 0x80 come
// from lower internal RAM, addresses 0x80 and above come from the SFR page
// (routed through a host hook when one is installed for that slot). Every
// access pushes the canonical address into the trace accumulator (spec.md
// §4.A: "direct addresses trace under their own value").
func (c *CPU) ReadDirect(addr byte) byte {
	if addr < 0x80 {
		v := c.State.Lower[addr]
		c.Trace.MemPush(uint16(addr), v, false)
		return v
	}
	idx := addr - 0x80
	var v byte
	if c.SFRRead[idx] != nil {
		v = c.SFRRead[idx](addr)
	} else {
		v = c.State.SFR[idx]
	}
	c.Trace.MemPush(uint16(addr), v, false)
	return v
}

// WriteDirect writes one byte by direct address. For SFR addresses the raw
// byte is stored first and the write hook is invoked afterward, seeing the
// new value already in place (spec.md §4.A).
func (c *CPU) WriteDirect(addr, v byte) {
	if addr < 0x80 {
		c.State.Lower[addr] = v
		c.Trace.MemPush(uint16(addr), v, true)
		return
	}
	idx := addr - 0x80
	c.State.SFR[idx] = v
	c.Trace.MemPush(uint16(addr), v, true)
	if addr == sfrACC {
		c.setP()
	}
	if c.SFRWrite[idx] != nil {
		c.SFRWrite[idx](addr)
	}
}

// ReadIndirect reads one byte by @Ri-style indirect address. Addresses
// below 0x80 alias direct lower RAM (same canonical trace address as
// ReadDirect); addresses 0x80 and above reach the optional upper 128 bytes,
// tracing at addr+0x100 to disambiguate from the SFR page (spec.md §4.A
// canonical addressing table). With no upper RAM configured, reads return
// mem.Sentinel.
func (c *CPU) ReadIndirect(addr byte) byte {
	if addr < 0x80 {
		v := c.State.Lower[addr]
		c.Trace.MemPush(uint16(addr), v, false)
		return v
	}
	if c.State.Upper != nil {
		v := c.State.Upper[addr-0x80]
		c.Trace.MemPush(uint16(addr)+0x100, v, false)
		return v
	}
	c.Trace.MemPush(uint16(addr)+0x100, mem.Sentinel, false)
	return mem.Sentinel
}

// WriteIndirect writes one byte by @Ri-style indirect address. With no
// upper RAM configured, writes to addr >= 0x80 have no backing storage and
// are dropped (nothing changed, so nothing is traced).
func (c *CPU) WriteIndirect(addr, v byte) {
	if addr < 0x80 {
		c.State.Lower[addr] = v
		c.Trace.MemPush(uint16(addr), v, true)
		return
	}
	if c.State.Upper != nil {
		c.State.Upper[addr-0x80] = v
		c.Trace.MemPush(uint16(addr)+0x100, v, true)
	}
}

// ReadXData reads one byte of external data memory, routed through the
// host XRead hook when installed, tracing at addr+0x200 (spec.md §4.A).
func (c *CPU) ReadXData(addr uint16) byte {
	var v byte
	if c.XRead != nil {
		v = c.XRead(addr)
	} else {
		v = c.State.XData.Read(addr)
	}
	c.Trace.MemPush(addr+0x200, v, false)
	return v
}

// WriteXData writes one byte of external data memory.
func (c *CPU) WriteXData(addr uint16, v byte) {
	if c.XWrite != nil {
		c.XWrite(addr, v)
	} else {
		c.State.XData.Write(addr, v)
	}
	c.Trace.MemPush(addr+0x200, v, true)
}

// readBit reads a single bit by its 8051 bit address. Bits 0x00-0x7F live
// in the bit-addressable region 0x20-0x2F (bit/8 + 0x20, bit%8); bits
// 0x80-0xFF alias the SFR byte at (bit & 0xF8), bit position bit&7, and so
// always route through the direct-addressing (and therefore SFR hook)
// path, per the requirement that a bit-addressable SFR output latch, not
// its input pin, is what gets read (spec.md §4.D.1 supplemental notes).
func (c *CPU) readBit(bitAddr byte) bool {
	byteAddr, pos := bitLocation(bitAddr)
	return mask.TestBit(c.ReadDirect(byteAddr), mask.Bit8051(pos))
}

// writeBit writes a single bit by its 8051 bit address, read-modify-writing
// the containing byte through the direct-addressing path.
func (c *CPU) writeBit(bitAddr byte, v bool) {
	byteAddr, pos := bitLocation(bitAddr)
	cur := c.ReadDirect(byteAddr)
	c.WriteDirect(byteAddr, mask.PutBit(cur, mask.Bit8051(pos), v))
}

func bitLocation(bitAddr byte) (byteAddr, pos byte) {
	if bitAddr < 0x80 {
		return 0x20 + bitAddr/8, bitAddr % 8
	}
	return bitAddr &^ 0x07, bitAddr & 0x07
}
