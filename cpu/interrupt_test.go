package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRETIMatchesCleanInterrupt(t *testing.T) {
	c := NewCPU(4096, 256)
	c.SetACC(0x11)
	c.State.SetSP(0x20)
	c.SetPSW(0x00)

	c.EnterInterrupt(0)
	var got []ExceptionKind
	c.OnException = func(kind ExceptionKind) { got = append(got, kind) }
	c.checkRETI()

	assert.Empty(t, got, "no mismatch when state is unchanged at RETI")
	assert.Equal(t, byte(0), c.State.Interrupt.Active, "slot cleared after check")
}

func TestRETIDetectsACCMismatch(t *testing.T) {
	c := NewCPU(4096, 256)
	c.SetACC(0x11)
	c.EnterInterrupt(0)
	c.SetACC(0x99) // handler failed to restore ACC

	var got ExceptionKind
	c.OnException = func(kind ExceptionKind) { got = kind }
	c.checkRETI()

	assert.Equal(t, ExcRETIAccMismatch, got)
}

func TestRETIChecksHighBeforeLow(t *testing.T) {
	c := NewCPU(4096, 256)
	c.EnterInterrupt(0)
	c.EnterInterrupt(1)
	c.SetACC(0xFF) // mismatches whichever slot is checked first

	var got []ExceptionKind
	c.OnException = func(kind ExceptionKind) { got = append(got, kind) }
	c.checkRETI()
	assert.Equal(t, byte(0x01), c.State.Interrupt.Active, "high-priority slot cleared first")

	c.checkRETI()
	assert.Equal(t, byte(0x00), c.State.Interrupt.Active)
}

// TestRETIIgnoresParityBit confirms the PSW comparison masks to the five
// flag bits (C, AC, RS1, RS0, OV) and ignores P and the reserved bit, since
// P is recomputed from ACC's contents rather than restored by a handler.
func TestRETIIgnoresParityBit(t *testing.T) {
	c := NewCPU(4096, 256)
	c.SetPSW(0x00)
	c.EnterInterrupt(0)
	c.SetPSW(PSW_P) // only parity differs

	var got []ExceptionKind
	c.OnException = func(kind ExceptionKind) { got = append(got, kind) }
	c.checkRETI()

	assert.Empty(t, got)
}

// TestRETIDetectsCarryMismatch confirms the carry flag, left out of the
// previous low-5-bits mask, now participates in the RETI consistency check.
func TestRETIDetectsCarryMismatch(t *testing.T) {
	c := NewCPU(4096, 256)
	c.SetPSW(0x00)
	c.EnterInterrupt(0)
	c.SetPSW(PSW_C) // handler failed to restore the carry flag

	var got ExceptionKind
	c.OnException = func(kind ExceptionKind) { got = kind }
	c.checkRETI()

	assert.Equal(t, ExcRETIPSWMismatch, got)
}
