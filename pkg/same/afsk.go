// ABOUTME: AFSK bit modulation for SAME headers
// ABOUTME: Maps bytes to LSB-first mark/space tone segments of 1.92ms each
package same

const (
	// BitDuration is the fixed SAME bit period in seconds (520.83 baud)
	BitDuration = 0.00192

	// MarkCycles is the number of carrier cycles in a mark (1) bit
	MarkCycles = 4
	// SpaceCycles is the number of carrier cycles in a space (0) bit
	SpaceCycles = 3

	// MarkHz is the mark carrier frequency (~2083.3 Hz)
	MarkHz = MarkCycles / BitDuration
	// SpaceHz is the space carrier frequency (1562.5 Hz)
	SpaceHz = SpaceCycles / BitDuration
)

// Bit is a single AFSK symbol
type Bit uint8

const (
	Space Bit = iota
	Mark
)

// Cycles returns the number of carrier cycles in one bit period
func (b Bit) Cycles() float64 {
	if b == Mark {
		return MarkCycles
	}
	return SpaceCycles
}

func (b Bit) String() string {
	if b == Mark {
		return "mark"
	}
	return "space"
}

// Byte holds the eight AFSK bits of one data byte, least significant first
type Byte [8]Bit

// NewByte decomposes v into its bits, LSB first
func NewByte(v byte) Byte {
	var b Byte
	for k := range b {
		if v&(1<<k) != 0 {
			b[k] = Mark
		} else {
			b[k] = Space
		}
	}
	return b
}

// Bytes converts a byte string to AFSK bytes
func Bytes(data []byte) []Byte {
	out := make([]Byte, len(data))
	for i, v := range data {
		out[i] = NewByte(v)
	}
	return out
}

// ModulateBit renders one bit as a BitDuration tone segment
func ModulateBit(b Bit, sampleRate int) []float32 {
	return Sine(BitDuration, sampleRate, b.Cycles())
}

// ModulateByte renders the eight bits of b in order
func ModulateByte(b Byte, sampleRate int) []float32 {
	mark := ModulateBit(Mark, sampleRate)
	space := ModulateBit(Space, sampleRate)

	out := make([]float32, 0, len(mark)*len(b))
	for _, bit := range b {
		if bit == Mark {
			out = append(out, mark...)
		} else {
			out = append(out, space...)
		}
	}
	return out
}

// Modulate renders every bit of every byte, flattened in order
func Modulate(data []Byte, sampleRate int) []float32 {
	mark := ModulateBit(Mark, sampleRate)
	space := ModulateBit(Space, sampleRate)

	out := make([]float32, 0, len(data)*8*len(mark))
	for _, b := range data {
		for _, bit := range b {
			if bit == Mark {
				out = append(out, mark...)
			} else {
				out = append(out, space...)
			}
		}
	}
	return out
}
