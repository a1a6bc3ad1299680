// ABOUTME: WAV container writer
// ABOUTME: Wraps PCM-encoded samples in a RIFF/WAVE header
package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

const wavHeaderSize = 44

// WAV encodes samples as a complete WAV file. format.Channels defaults to 1.
func WAV(samples []float32, format audio.Format) ([]byte, error) {
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", format.SampleRate)
	}
	if format.Channels <= 0 {
		format.Channels = 1
	}

	enc, err := NewPCM(format)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	data, err := enc.Encode(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode PCM: %w", err)
	}

	dataSize := uint32(len(data))
	bytesPerSample := enc.BytesPerSample()

	wav := make([]byte, wavHeaderSize+len(data))

	// RIFF header
	copy(wav[0:4], "RIFF")
	binary.LittleEndian.PutUint32(wav[4:8], 36+dataSize)
	copy(wav[8:12], "WAVE")

	// fmt subchunk
	copy(wav[12:16], "fmt ")
	binary.LittleEndian.PutUint32(wav[16:20], 16) // Subchunk1Size (16 for PCM)
	binary.LittleEndian.PutUint16(wav[20:22], 1)  // AudioFormat (1 = PCM)
	binary.LittleEndian.PutUint16(wav[22:24], uint16(format.Channels))
	binary.LittleEndian.PutUint32(wav[24:28], uint32(format.SampleRate))

	blockAlign := format.Channels * bytesPerSample
	binary.LittleEndian.PutUint32(wav[28:32], uint32(format.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(wav[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(wav[34:36], uint16(format.BitDepth))

	// data subchunk
	copy(wav[36:40], "data")
	binary.LittleEndian.PutUint32(wav[40:44], dataSize)
	copy(wav[wavHeaderSize:], data)

	return wav, nil
}

// WriteWAV encodes samples as WAV and writes them to w
func WriteWAV(w io.Writer, samples []float32, format audio.Format) error {
	wav, err := WAV(samples, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(wav); err != nil {
		return fmt.Errorf("failed to write WAV: %w", err)
	}
	return nil
}
