// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 streams to float samples using go-mp3
package decode

import (
	"fmt"
	"io"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// DecodeMP3 reads an MP3 stream. go-mp3 always outputs 16-bit stereo.
func DecodeMP3(r io.Reader) (audio.Buffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	data, err := io.ReadAll(decoder)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("mp3 decode error: %w", err)
	}

	pcm := &PCMDecoder{bitDepth: 16}
	return audio.Buffer{
		Samples: pcm.DecodeBytes(data),
		Format: audio.Format{
			SampleRate: decoder.SampleRate(),
			Channels:   2,
			BitDepth:   16,
		},
	}, nil
}
