// ABOUTME: Decoder interface definition and file dispatch
// ABOUTME: Picks a decoder from the file extension and decodes to float samples
package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

// Decoder decodes an encoded audio stream to float samples
type Decoder interface {
	// Decode reads r to the end and returns the decoded samples
	Decode(r io.Reader) (audio.Buffer, error)
}

// DecoderFunc adapts a function to the Decoder interface
type DecoderFunc func(r io.Reader) (audio.Buffer, error)

// Decode calls f(r)
func (f DecoderFunc) Decode(r io.Reader) (audio.Buffer, error) {
	return f(r)
}

var decoders = map[string]Decoder{
	".wav":  DecoderFunc(DecodeWAV),
	".mp3":  DecoderFunc(DecodeMP3),
	".flac": DecoderFunc(DecodeFLAC),
	".opus": DecoderFunc(DecodeOpus),
	".ogg":  DecoderFunc(DecodeOpus),
}

// ForPath returns the decoder registered for the file's extension
func ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac, .opus)", ext)
	}
	return dec, nil
}

// File decodes the audio file at path
func File(path string) (audio.Buffer, error) {
	dec, err := ForPath(path)
	if err != nil {
		return audio.Buffer{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}
