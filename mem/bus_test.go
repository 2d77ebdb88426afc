package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeROM(t *testing.T) {
	rom := NewCodeROM(16)
	assert.Equal(t, 16, rom.Size())
	rom.Load(0, []byte{0x74, 0xC6, 0x24, 0x3A})
	assert.Equal(t, byte(0x74), rom.Read(0))
	assert.Equal(t, byte(0x3A), rom.Read(3))
	// mirrors past the power-of-two boundary
	assert.Equal(t, byte(0x74), rom.Read(16))
}

func TestCodeROMRoundsUpToPowerOfTwo(t *testing.T) {
	rom := NewCodeROM(17)
	assert.Equal(t, 32, rom.Size())
}

func TestBusNilSentinel(t *testing.T) {
	var b *Bus
	assert.Equal(t, Sentinel, b.Read(0x1234))
	b.Write(0x1234, 0x55) // must not panic
	assert.Nil(t, NewBus(0))
}

func TestBusReadWrite(t *testing.T) {
	b := NewBus(256)
	b.Write(0x10, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x10))
	assert.Equal(t, 256, b.Size())
}

func TestBusWraps(t *testing.T) {
	b := NewBus(100) // rounds up to 128
	assert.Equal(t, 128, b.Size())
	b.Write(0x00, 0x9)
	assert.Equal(t, byte(0x9), b.Read(0x80)) // 0x80 & 0x7f == 0
}
