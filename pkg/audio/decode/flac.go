// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC streams frame by frame to float samples
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
	"github.com/mewkiz/flac"
)

// DecodeFLAC reads a FLAC stream, interleaving its channels
func DecodeFLAC(r io.Reader) (audio.Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	format := audio.Format{
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
		BitDepth:   int(info.BitsPerSample),
	}
	if format.BitDepth < 4 || format.BitDepth > 32 {
		return audio.Buffer{}, fmt.Errorf("unsupported FLAC bit depth: %d", format.BitDepth)
	}
	scale := float32(int64(1) << (format.BitDepth - 1))

	samples := make([]float32, 0, int(info.NSamples)*format.Channels)
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.Buffer{}, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < format.Channels; ch++ {
				samples = append(samples, float32(frame.Subframes[ch].Samples[i])/scale)
			}
		}
	}

	return audio.Buffer{Samples: samples, Format: format}, nil
}
