// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit, 24-bit and 32-bit float PCM audio to float samples
package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

// PCMDecoder decodes raw little-endian PCM
type PCMDecoder struct {
	bitDepth int
	float    bool
}

// NewPCM creates a new integer PCM decoder
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMDecoder{
		bitDepth: format.BitDepth,
	}, nil
}

// NewFloatPCM creates a decoder for IEEE 32-bit float PCM
func NewFloatPCM() *PCMDecoder {
	return &PCMDecoder{bitDepth: 32, float: true}
}

// DecodeBytes converts PCM bytes to float samples. Trailing partial samples are dropped.
func (d *PCMDecoder) DecodeBytes(data []byte) []float32 {
	switch {
	case d.float:
		numSamples := len(data) / 4
		samples := make([]float32, numSamples)
		for i := 0; i < numSamples; i++ {
			samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		}
		return samples
	case d.bitDepth == 24:
		// 24-bit PCM: 3 bytes per sample
		numSamples := len(data) / 3
		samples := make([]float32, numSamples)
		for i := 0; i < numSamples; i++ {
			b := [3]byte{data[i*3], data[i*3+1], data[i*3+2]}
			samples[i] = audio.FloatFrom24Bit(audio.SampleFrom24Bit(b))
		}
		return samples
	default:
		// 16-bit PCM: 2 bytes per sample
		numSamples := len(data) / 2
		samples := make([]float32, numSamples)
		for i := 0; i < numSamples; i++ {
			samples[i] = audio.FloatFromInt16(int16(binary.LittleEndian.Uint16(data[i*2:])))
		}
		return samples
	}
}
