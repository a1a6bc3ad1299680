// ABOUTME: Ogg Opus audio decoder
// ABOUTME: Decodes mono Ogg Opus files to float samples at 48kHz
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

const (
	// opusSampleRate is the rate libopusfile always decodes at
	opusSampleRate = 48000
	// opusMaxFrame is the largest Opus frame (120ms at 48kHz)
	opusMaxFrame = 5760
)

// DecodeOpus reads a mono Ogg Opus stream
func DecodeOpus(r io.Reader) (audio.Buffer, error) {
	stream, err := opus.NewStream(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to open opus stream: %w", err)
	}
	defer stream.Close()

	var samples []float32
	pcm := make([]float32, opusMaxFrame)
	for {
		n, err := stream.ReadFloat32(pcm)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.Buffer{}, fmt.Errorf("opus decode failed: %w", err)
		}
		samples = append(samples, pcm[:n]...)
	}

	return audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			SampleRate: opusSampleRate,
			Channels:   1,
			BitDepth:   32,
		},
	}, nil
}
