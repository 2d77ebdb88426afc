package cpu

// EnterInterrupt snapshots ACC/SP/PSW into the shadow slot for level and
// marks it active (spec.md §4.D "Interrupts (skeleton)": "entry captures a
// snapshot of ACC, SP and PSW; a low-priority interrupt may itself be
// interrupted by a high-priority one, hence two slots"). level is 0 for the
// low-priority slot, 1 for high-priority. The caller is responsible for any
// actual vectoring; this only maintains the shadow and lets instruction
// execution continue at whatever PC the caller sets.
func (c *CPU) EnterInterrupt(level int) {
	c.State.Interrupt.ACC[level] = c.State.ACC()
	c.State.Interrupt.SP[level] = c.State.SP()
	c.State.Interrupt.PSW[level] = c.State.PSW()
	c.State.Interrupt.Active |= 1 << uint(level)
}

// checkRETI compares the live ACC/SP/PSW against the high-priority shadow
// slot if it is active, else the low-priority one, raising the matching
// advisory exception on any
// mismatch, then clears that slot. High priority is checked and cleared
// before low (spec.md §4.D: "RETI clears high before low").
func (c *CPU) checkRETI() {
	active := c.State.Interrupt.Active
	var level int
	switch {
	case active&0x02 != 0:
		level = 1
	case active&0x01 != 0:
		level = 0
	default:
		return
	}

	if c.State.ACC() != c.State.Interrupt.ACC[level] {
		c.raise(ExcRETIAccMismatch)
	}
	if c.State.SP() != c.State.Interrupt.SP[level] {
		c.raise(ExcRETISPMismatch)
	}
	const pswCheckMask = PSW_C | PSW_AC | PSW_RS1 | PSW_RS0 | PSW_OV
	if c.State.PSW()&pswCheckMask != c.State.Interrupt.PSW[level]&pswCheckMask {
		c.raise(ExcRETIPSWMismatch)
	}
	c.State.Interrupt.Active &^= 1 << uint(level)
}
