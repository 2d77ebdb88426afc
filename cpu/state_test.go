package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankFromPSW(t *testing.T) {
	s := NewState(256, 256)
	cases := []struct {
		psw  byte
		bank byte
	}{
		{0x00, 0},
		{PSW_RS0, 1},
		{PSW_RS1, 2},
		{PSW_RS1 | PSW_RS0, 3},
	}
	for _, tc := range cases {
		s.SFR[sfrPSW-0x80] = tc.psw
		assert.Equal(t, tc.bank, s.Bank(), "psw=%#x", tc.psw)
	}
}

func TestRegAddrAndRegRoundTrip(t *testing.T) {
	s := NewState(256, 256)
	s.SFR[sfrPSW-0x80] = PSW_RS0 // bank 1 -> R0-R7 at 0x08-0x0F
	s.SetReg(3, 0x5A)
	assert.Equal(t, byte(0x0B), s.RegAddr(3))
	assert.Equal(t, byte(0x5A), s.Reg(3))
	assert.Equal(t, byte(0x5A), s.Lower[0x0B])
}

func TestDPTRConcatenation(t *testing.T) {
	s := NewState(256, 256)
	s.SetDPTR(0xBEEF)
	assert.Equal(t, byte(0xBE), s.SFR[sfrDPH-0x80])
	assert.Equal(t, byte(0xEF), s.SFR[sfrDPL-0x80])
	assert.Equal(t, uint16(0xBEEF), s.DPTR())
}
