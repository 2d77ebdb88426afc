// Package trace implements the per-instruction trace recorder: an
// accumulator that collects every register and memory access the engine
// performs while executing one instruction, a frame encoder that turns the
// accumulated access list into an ordered pre/post operand record, and a
// Writer interface to an external trace container.
package trace

import (
	"log/slog"
)

// Logger is the minimal logging surface the trace package needs. No repo in
// the reference pack imports a third-party structured logger (the teacher
// reports errors as returned values and dumps state with go-spew;
// master-g-childhood rolls its own one-method Logger interface instead of
// importing one) — see SPEC_FULL.md §7. DefaultLogger adapts log/slog's
// stderr text handler to this interface.
type Logger interface {
	Warn(msg string, args ...any)
}

// DefaultLogger logs through the standard library's structured logger.
type DefaultLogger struct{}

// Warn logs at warn level via log/slog's default handler.
func (DefaultLogger) Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

type regVal struct {
	value uint16
	bits  int
}

type memOp struct {
	addr uint16
	val  byte
}

// Accumulator collects the reads and writes of one in-flight instruction.
// It is owned by a single engine (cpu.CPU embeds one); it is not a
// process-wide singleton (spec.md §9 design note: thread a reference
// through, or carry it in the engine struct, rather than replicate a
// file-scope global).
type Accumulator struct {
	Logger Logger

	opBytes []byte

	preOrder []string
	pre      map[string]regVal

	postOrder []string
	post      map[string]regVal

	preMem  []memOp
	postMem []memOp
}

// NewAccumulator returns a ready-to-use Accumulator with the default logger.
func NewAccumulator() *Accumulator {
	a := &Accumulator{Logger: DefaultLogger{}}
	a.reset()
	return a
}

func (a *Accumulator) reset() {
	a.opBytes = nil
	a.preOrder = nil
	a.pre = make(map[string]regVal)
	a.postOrder = nil
	a.post = make(map[string]regVal)
	a.preMem = nil
	a.postMem = nil
}

// SetOp records the raw 1-3 instruction bytes for the in-flight frame.
func (a *Accumulator) SetOp(raw []byte) {
	a.opBytes = append(a.opBytes[:0], raw...)
}

// RegisterPush records an access to a named register operand (spec.md
// §4.F). Reads populate the pre-map; only the first read of a given name is
// kept. Writes populate the post-map; the latest write wins, but a name
// keeps the list position of its first write so ordering is stable for a
// read-modify-write instruction.
func (a *Accumulator) RegisterPush(name string, value uint16, bits int, written bool) {
	if !written {
		if _, ok := a.pre[name]; !ok {
			a.preOrder = append(a.preOrder, name)
			a.pre[name] = regVal{value: value, bits: bits}
		}
		return
	}
	if _, ok := a.post[name]; !ok {
		a.postOrder = append(a.postOrder, name)
	}
	a.post[name] = regVal{value: value, bits: bits}
}

// MemPush records an access to a memory cell at a canonical trace address
// (spec.md §4.A: direct internal accesses use the address as-is, indirect
// upper-RAM accesses add 0x100, XDATA adds 0x200 — the caller, cpu's
// address facade, is responsible for that translation). Every memory write
// is recorded, even one that writes back the value already there (spec.md
// §3: "Memory writes are always emitted").
func (a *Accumulator) MemPush(address uint16, value byte, written bool) {
	op := memOp{addr: address, val: value}
	if written {
		a.postMem = append(a.postMem, op)
	} else {
		a.preMem = append(a.preMem, op)
	}
}

// Push finalizes the in-flight frame and hands it to w, then clears the
// accumulator for the next instruction. If w is nil, the frame is dropped
// silently after a logged warning (spec.md §4.F, §7).
func (a *Accumulator) Push(w Writer) error {
	if w == nil {
		a.Logger.Warn("trace_push called with no writer open")
		a.reset()
		return nil
	}
	frame := a.buildFrame()
	err := w.Add(frame)
	a.reset()
	return err
}
