package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCPU() *CPU {
	c := NewCPU(4096, 256)
	c.State.EnableUpperRAM()
	return c
}

func TestReadWriteDirectLowerRAM(t *testing.T) {
	c := newTestCPU()
	c.WriteDirect(0x30, 0x42)
	assert.Equal(t, byte(0x42), c.ReadDirect(0x30))
}

func TestReadWriteDirectSFRHook(t *testing.T) {
	c := newTestCPU()
	var seen byte
	c.SFRRead[0x90-0x80] = func(addr byte) byte { return 0xAA }
	c.SFRWrite[0x90-0x80] = func(addr byte) { seen = c.State.SFR[0x90-0x80] }
	assert.Equal(t, byte(0xAA), c.ReadDirect(0x90))
	c.WriteDirect(0x90, 0x55)
	assert.Equal(t, byte(0x55), seen, "write hook observes the new value already stored")
}

func TestIndirectUpperRAMRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.WriteIndirect(0x90, 0x11)
	assert.Equal(t, byte(0x11), c.ReadIndirect(0x90))
	assert.Equal(t, byte(0x11), c.State.Upper[0x10])
}

func TestIndirectNoUpperRAMSentinel(t *testing.T) {
	c := NewCPU(4096, 256)
	assert.Equal(t, byte(0x77), c.ReadIndirect(0x90))
	c.WriteIndirect(0x90, 0x01) // dropped, nothing to write to
	assert.Equal(t, byte(0x77), c.ReadIndirect(0x90))
}

func TestXDataRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.WriteXData(0x0010, 0x99)
	assert.Equal(t, byte(0x99), c.ReadXData(0x0010))
}

func TestXDataHookOverride(t *testing.T) {
	c := newTestCPU()
	var written uint16
	var writtenVal byte
	c.XWrite = func(addr uint16, v byte) { written, writtenVal = addr, v }
	c.XRead = func(addr uint16) byte { return 0x42 }
	c.WriteXData(0x0020, 0x07)
	assert.Equal(t, uint16(0x0020), written)
	assert.Equal(t, byte(0x07), writtenVal)
	assert.Equal(t, byte(0x42), c.ReadXData(0x0020))
}

func TestBitAddressingLowRegion(t *testing.T) {
	c := newTestCPU()
	// bit 0x00 -> byte 0x20, position 0.
	c.writeBit(0x00, true)
	assert.Equal(t, byte(0x01), c.ReadDirect(0x20))
	assert.True(t, c.readBit(0x00))
}

func TestBitAddressingSFRRegion(t *testing.T) {
	c := newTestCPU()
	// bit 0xD2 -> SFR byte 0xD2 &^ 0x07 = 0xD0 (PSW), bit position 2 (OV).
	c.writeBit(0xD2, true)
	assert.Equal(t, PSW_OV, c.State.PSW()&PSW_OV)
	assert.True(t, c.readBit(0xD2))
}

func TestRegAddrFollowsBank(t *testing.T) {
	c := newTestCPU()
	c.State.SetPSW(PSW_RS0) // bank 1
	c.State.SetReg(0, 0x77)
	assert.Equal(t, byte(0x77), c.State.Lower[0x08])
	assert.Equal(t, byte(0), c.State.Lower[0x00])
}
