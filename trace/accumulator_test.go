package trace

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	opened bool
	frames []Frame
}

func (f *fakeWriter) Open(path string, meta Meta) error {
	if f.opened {
		return assert.AnError
	}
	f.opened = true
	return nil
}
func (f *fakeWriter) Add(fr Frame) error { f.frames = append(f.frames, fr); return nil }
func (f *fakeWriter) Finish() error      { f.opened = false; return nil }

func TestAccumulatorDifferentialPost(t *testing.T) {
	a := NewAccumulator()
	a.SetOp([]byte{0x24, 0x3A})
	a.RegisterPush("PC", 0x0100, 16, false)
	a.RegisterPush("ACC", 0xC6, 8, false)
	a.RegisterPush("ACC", 0x00, 8, true) // changed: kept
	a.RegisterPush("PC", 0x0100, 16, true) // unchanged: omitted

	w := &fakeWriter{}
	_ = w.Open("x", Meta{})
	err := a.Push(w)
	assert.NoError(t, err)
	assert.Len(t, w.frames, 1)

	fr := w.frames[0]
	assert.Equal(t, uint64(0x0100), fr.Address)
	assert.Len(t, fr.Pre, 2)
	assert.Len(t, fr.Post, 1)
	assert.Equal(t, "ACC", fr.Post[0].Name)
	assert.Equal(t, uint16(0x00), fr.Post[0].Value)
}

func TestAccumulatorMemAlwaysEmitted(t *testing.T) {
	a := NewAccumulator()
	a.RegisterPush("PC", 0, 16, false)
	a.MemPush(0x30, 0xAB, true)
	a.MemPush(0x30, 0xAB, true) // write-back of same value, still emitted twice

	w := &fakeWriter{}
	_ = w.Open("x", Meta{})
	_ = a.Push(w)
	assert.Len(t, w.frames[0].Post, 2)
}

func TestAccumulatorDropsSilentlyWithNoWriter(t *testing.T) {
	a := NewAccumulator()
	a.RegisterPush("PC", 0, 16, false)
	err := a.Push(nil)
	assert.NoError(t, err)
}

func TestAccumulatorResetsAfterPush(t *testing.T) {
	a := NewAccumulator()
	a.RegisterPush("PC", 1, 16, false)
	w := &fakeWriter{}
	_ = w.Open("x", Meta{})
	_ = a.Push(w)
	assert.Empty(t, a.preOrder)
	assert.Empty(t, a.pre)
}

func TestContainerWriterRoundTrip(t *testing.T) {
	path := t.TempDir() + "/trace.bin"
	cw := &ContainerWriter{}
	assert.NoError(t, cw.Open(path, Meta{TracerName: "emu8051"}))
	assert.Error(t, cw.Open(path, Meta{})) // already open

	a := NewAccumulator()
	a.SetOp([]byte{0x00})
	a.RegisterPush("PC", 0x1000, 16, false)
	a.RegisterPush("PC", 0x1001, 16, true)
	assert.NoError(t, a.Push(cw))

	assert.NoError(t, cw.Finish())

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
