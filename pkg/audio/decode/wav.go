// ABOUTME: WAV file decoder
// ABOUTME: Parses RIFF chunks and decodes integer or float PCM data
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// ErrNotWAV is returned when the stream has no RIFF/WAVE signature
var ErrNotWAV = errors.New("not a RIFF/WAVE stream")

// DecodeWAV reads a WAV file
func DecodeWAV(r io.Reader) (audio.Buffer, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to read RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return audio.Buffer{}, ErrNotWAV
	}

	var (
		format    audio.Format
		tag       uint16
		haveFmt   bool
		chunkHead [8]byte
	)

	for {
		if _, err := io.ReadFull(r, chunkHead[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return audio.Buffer{}, fmt.Errorf("no data chunk found")
			}
			return audio.Buffer{}, fmt.Errorf("failed to read chunk header: %w", err)
		}
		id := string(chunkHead[0:4])
		size := int64(binary.LittleEndian.Uint32(chunkHead[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return audio.Buffer{}, fmt.Errorf("fmt chunk too short: %d", size)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to read fmt chunk: %w", err)
			}
			tag = binary.LittleEndian.Uint16(body[0:2])
			format.Channels = int(binary.LittleEndian.Uint16(body[2:4]))
			format.SampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			format.BitDepth = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return audio.Buffer{}, fmt.Errorf("data chunk before fmt chunk")
			}
			dec, err := wavPCMDecoder(tag, format)
			if err != nil {
				return audio.Buffer{}, err
			}
			data, err := io.ReadAll(io.LimitReader(r, size))
			if err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to read data chunk: %w", err)
			}
			return audio.Buffer{Samples: dec.DecodeBytes(data), Format: format}, nil

		default:
			// chunks are word aligned
			if _, err := io.CopyN(io.Discard, r, size+size%2); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to skip %q chunk: %w", id, err)
			}
		}
	}
}

func wavPCMDecoder(tag uint16, format audio.Format) (*PCMDecoder, error) {
	if format.Channels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid WAV format: %d channels at %d Hz", format.Channels, format.SampleRate)
	}
	switch tag {
	case wavFormatPCM:
		return NewPCM(format)
	case wavFormatFloat:
		if format.BitDepth != 32 {
			return nil, fmt.Errorf("unsupported float bit depth: %d", format.BitDepth)
		}
		return NewFloatPCM(), nil
	}
	return nil, fmt.Errorf("unsupported WAV format tag: %d", tag)
}
