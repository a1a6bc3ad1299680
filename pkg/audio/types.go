// ABOUTME: Audio type definitions
// ABOUTME: Defines formats, float sample buffers and PCM conversions
package audio

import "math"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes a PCM stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer holds float samples in [-1, 1], interleaved when Channels > 1
type Buffer struct {
	Samples []float32
	Format  Format
}

// Duration returns the buffer length in seconds
func (b Buffer) Duration() float64 {
	if b.Format.SampleRate == 0 || b.Format.Channels == 0 {
		return 0
	}
	return float64(len(b.Samples)/b.Format.Channels) / float64(b.Format.SampleRate)
}

// Mono downmixes interleaved channels by averaging them
func (b Buffer) Mono() Buffer {
	ch := b.Format.Channels
	if ch <= 1 {
		return b
	}

	frames := len(b.Samples) / ch
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < ch; c++ {
			sum += b.Samples[i*ch+c]
		}
		out[i] = sum / float32(ch)
	}

	format := b.Format
	format.Channels = 1
	return Buffer{Samples: out, Format: format}
}

// Clamp limits a sample to [-1, 1]
func Clamp(sample float32) float32 {
	if sample > 1 {
		return 1
	}
	if sample < -1 {
		return -1
	}
	return sample
}

// FloatToInt16 converts a float sample to 16-bit PCM with clipping
func FloatToInt16(sample float32) int16 {
	return int16(math.Round(float64(Clamp(sample)) * math.MaxInt16))
}

// FloatFromInt16 converts a 16-bit PCM sample to a float
func FloatFromInt16(sample int16) float32 {
	return float32(sample) / 32768
}

// FloatTo24Bit converts a float sample to an int32 in 24-bit range with clipping
func FloatTo24Bit(sample float32) int32 {
	return int32(math.Round(float64(Clamp(sample)) * Max24Bit))
}

// FloatFrom24Bit converts a 24-bit range int32 to a float
func FloatFrom24Bit(sample int32) float32 {
	return float32(sample) / -Min24Bit
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	// Take lower 24 bits, pack little-endian
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF // Set upper 8 bits to 1 for negative values
	}
	return val
}
