package trace

// OperandKind distinguishes a named-register operand from an addressed
// memory cell (spec.md §3).
type OperandKind int

const (
	RegOperand OperandKind = iota
	MemOperand
)

// Operand is one entry of a frame's pre- or post-operand list.
type Operand struct {
	Kind    OperandKind
	Name    string // set when Kind == RegOperand
	Address uint16 // set when Kind == MemOperand
	Bits    int    // 8 or 16
	Read    bool
	Written bool
	Value   uint16
}

// Frame is the standard per-instruction trace record (spec.md §4.G, §6).
type Frame struct {
	Address   uint64 // pre-PC
	ThreadID  uint64 // always 0
	RawBytes  []byte // 1-3 instruction bytes
	Pre, Post []Operand
}

// buildFrame encodes the accumulator's current access lists into a Frame:
// the pre-list in first-access order (registers, then memory reads), the
// post-list differential for registers (an operand whose value and width
// didn't change is omitted, per spec.md §3) and complete for memory writes.
func (a *Accumulator) buildFrame() Frame {
	pre := make([]Operand, 0, len(a.preOrder)+len(a.preMem))
	for _, name := range a.preOrder {
		rv := a.pre[name]
		pre = append(pre, Operand{Kind: RegOperand, Name: name, Bits: rv.bits, Read: true, Value: rv.value})
	}
	for _, m := range a.preMem {
		pre = append(pre, Operand{Kind: MemOperand, Address: m.addr, Bits: 8, Read: true, Value: uint16(m.val)})
	}

	post := make([]Operand, 0, len(a.postOrder)+len(a.postMem))
	for _, name := range a.postOrder {
		rv := a.post[name]
		if pv, ok := a.pre[name]; ok && pv.value == rv.value && pv.bits == rv.bits {
			continue
		}
		post = append(post, Operand{Kind: RegOperand, Name: name, Bits: rv.bits, Written: true, Value: rv.value})
	}
	for _, m := range a.postMem {
		post = append(post, Operand{Kind: MemOperand, Address: m.addr, Bits: 8, Written: true, Value: uint16(m.val)})
	}

	var addr uint64
	if pc, ok := a.pre["PC"]; ok {
		addr = uint64(pc.value)
	}

	return Frame{
		Address:  addr,
		ThreadID: 0,
		RawBytes: append([]byte(nil), a.opBytes...),
		Pre:      pre,
		Post:     post,
	}
}
