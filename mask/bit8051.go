package mask

// Bit8051 indexes a single bit using 8051 convention: 0 is the least
// significant bit, 7 the most significant. This is the mirror image of the
// package's existing 1-indexed, MSB-first byteIndex convention, kept
// separate rather than retrofitted onto Last/First/Range/Set/Unset/Flip,
// since those are exercised by existing callers expecting MSB-first
// semantics.
type Bit8051 byte

// TestBit reports whether bit n (0 = LSB) is set in b.
func TestBit(b byte, n Bit8051) bool {
	return b&(1<<n) != 0
}

// SetBit returns b with bit n (0 = LSB) forced to 1.
func SetBit(b byte, n Bit8051) byte {
	return b | (1 << n)
}

// ClearBit returns b with bit n (0 = LSB) forced to 0.
func ClearBit(b byte, n Bit8051) byte {
	return b &^ (1 << n)
}

// PutBit returns b with bit n (0 = LSB) set to v.
func PutBit(b byte, n Bit8051, v bool) byte {
	if v {
		return SetBit(b, n)
	}
	return ClearBit(b, n)
}

// SwapNibbles exchanges the high and low nibble of b (used by SWAP A).
func SwapNibbles(b byte) byte {
	return (b << 4) | (b >> 4)
}

// LoNibble returns the low 4 bits of b.
func LoNibble(b byte) byte {
	return b & 0x0F
}

// HiNibble returns the high 4 bits of b, shifted down.
func HiNibble(b byte) byte {
	return (b >> 4) & 0x0F
}
