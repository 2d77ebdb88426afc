package trace

import (
	"bufio"
	"errors"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire field numbers for this package's trace schema. The schema mirrors
// the field list in spec.md §6 (address, thread_id, rawbytes,
// operand_pre_list, operand_post_list, and each operand's
// specific/bit_length/operand_usage/taint_info/value) but is this
// repository's own varint/length-delimited encoding, not a byte-for-byte
// clone of BAP's piqi-generated layout (see SPEC_FULL.md Non-goals).
const (
	fieldMetaTracerName    = 1
	fieldMetaTracerVersion = 2
	fieldMetaTargetPath    = 3
	fieldMetaTargetMD5     = 4
	fieldMetaUser          = 5
	fieldMetaHost          = 6
	fieldMetaArch          = 7

	fieldFrameAddress  = 1
	fieldFrameThreadID = 2
	fieldFrameRawbytes = 3
	fieldFramePreList  = 4
	fieldFramePostList = 5

	fieldOperandSpecific = 1
	fieldOperandBits     = 2
	fieldOperandUsage    = 3
	fieldOperandTaint    = 4
	fieldOperandValue    = 5

	fieldSpecificReg    = 1
	fieldSpecificMem    = 2
	fieldRegName        = 1
	fieldMemAddress     = 1
	fieldUsageRead      = 1
	fieldUsageWritten   = 2
	fieldUsageIndex     = 3
	fieldUsageBase      = 4

	fieldListElem = 1
)

// archTag8051 is the target architecture tag written once at Open (spec.md
// §6: "The container is opened with a target architecture tag equal to
// 8051").
const archTag8051 = 8051

// ContainerWriter is a concrete trace.Writer that serializes each Frame as
// a length-prefixed protobuf-wire record (spec.md §1: "a length-prefixed
// envelope wrapping a wire-format record"), built directly with
// google.golang.org/protobuf/encoding/protowire rather than
// generated-from-.proto types — protowire is the hand-rollable half of the
// protobuf ecosystem and lets this repository exercise the same dependency
// the original's trace.cpp used (a protobuf-generated TraceContainerWriter)
// without shipping generated code.
type ContainerWriter struct {
	f   *os.File
	w   *bufio.Writer
	fin bool
}

// Open creates path and writes the one-time meta header. Calling Open on an
// already-open writer returns an error without touching the existing file
// (spec.md §5: "Opening a trace writer while one is already open is a
// no-op returning failure").
func (c *ContainerWriter) Open(path string, meta Meta) error {
	if c.f != nil {
		return errors.New("trace: writer already open")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	c.f = f
	c.w = bufio.NewWriter(f)
	c.fin = false

	var b []byte
	b = protowire.AppendTag(b, fieldMetaTracerName, protowire.BytesType)
	b = protowire.AppendString(b, meta.TracerName)
	b = protowire.AppendTag(b, fieldMetaTracerVersion, protowire.BytesType)
	b = protowire.AppendString(b, meta.TracerVersion)
	b = protowire.AppendTag(b, fieldMetaTargetPath, protowire.BytesType)
	b = protowire.AppendString(b, meta.TargetPath)
	b = protowire.AppendTag(b, fieldMetaTargetMD5, protowire.BytesType)
	b = protowire.AppendString(b, meta.TargetMD5)
	b = protowire.AppendTag(b, fieldMetaUser, protowire.BytesType)
	b = protowire.AppendString(b, meta.User)
	b = protowire.AppendTag(b, fieldMetaHost, protowire.BytesType)
	b = protowire.AppendString(b, meta.Host)
	b = protowire.AppendTag(b, fieldMetaArch, protowire.VarintType)
	b = protowire.AppendVarint(b, archTag8051)

	return c.writeRecord(b)
}

// Add appends one frame as a length-prefixed wire record.
func (c *ContainerWriter) Add(fr Frame) error {
	if c.f == nil {
		return errors.New("trace: writer not open")
	}
	return c.writeRecord(encodeFrame(fr))
}

// Finish flushes the buffered writer, writes a zero-length footer record
// (the container's end-of-stream marker), and closes the file.
func (c *ContainerWriter) Finish() error {
	if c.f == nil {
		return errors.New("trace: writer not open")
	}
	if err := c.writeRecord(nil); err != nil {
		return err
	}
	if err := c.w.Flush(); err != nil {
		return err
	}
	err := c.f.Close()
	c.f = nil
	c.w = nil
	c.fin = true
	return err
}

func (c *ContainerWriter) writeRecord(b []byte) error {
	var lp []byte
	lp = protowire.AppendVarint(lp, uint64(len(b)))
	if _, err := c.w.Write(lp); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	_, err := c.w.Write(b)
	return err
}

func encodeFrame(fr Frame) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldFrameAddress, protowire.VarintType)
	b = protowire.AppendVarint(b, fr.Address)
	b = protowire.AppendTag(b, fieldFrameThreadID, protowire.VarintType)
	b = protowire.AppendVarint(b, fr.ThreadID)
	b = protowire.AppendTag(b, fieldFrameRawbytes, protowire.BytesType)
	b = protowire.AppendBytes(b, fr.RawBytes)
	b = protowire.AppendTag(b, fieldFramePreList, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeOperandList(fr.Pre))
	b = protowire.AppendTag(b, fieldFramePostList, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeOperandList(fr.Post))
	return b
}

func encodeOperandList(ops []Operand) []byte {
	var b []byte
	for _, op := range ops {
		b = protowire.AppendTag(b, fieldListElem, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeOperand(op))
	}
	return b
}

func encodeOperand(op Operand) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldOperandSpecific, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeSpecific(op))
	b = protowire.AppendTag(b, fieldOperandBits, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(op.Bits))
	b = protowire.AppendTag(b, fieldOperandUsage, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeUsage(op))
	b = protowire.AppendTag(b, fieldOperandTaint, protowire.BytesType)
	b = protowire.AppendBytes(b, nil) // taint_info is always empty (spec.md §6)
	b = protowire.AppendTag(b, fieldOperandValue, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeValue(op))
	return b
}

func encodeSpecific(op Operand) []byte {
	var b []byte
	switch op.Kind {
	case RegOperand:
		var inner []byte
		inner = protowire.AppendTag(inner, fieldRegName, protowire.BytesType)
		inner = protowire.AppendString(inner, op.Name)
		b = protowire.AppendTag(b, fieldSpecificReg, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	case MemOperand:
		var inner []byte
		inner = protowire.AppendTag(inner, fieldMemAddress, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(op.Address))
		b = protowire.AppendTag(b, fieldSpecificMem, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	return b
}

func encodeUsage(op Operand) []byte {
	var b []byte
	if op.Read {
		b = protowire.AppendTag(b, fieldUsageRead, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if op.Written {
		b = protowire.AppendTag(b, fieldUsageWritten, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	// index/base are always false in this engine; omitted (protobuf3
	// default-value fields need not be written).
	return b
}

// encodeValue packs the operand value little-endian into bit_length/8
// bytes: registers use op.Bits, memory cells are always one byte (spec.md
// §6: "memory values always one byte").
func encodeValue(op Operand) []byte {
	n := op.Bits / 8
	if op.Kind == MemOperand {
		n = 1
	}
	v := make([]byte, n)
	for i := 0; i < n; i++ {
		v[i] = byte(op.Value >> (8 * i))
	}
	return v
}
