// ABOUTME: Render plan sections and the sequencer that concatenates them
// ABOUTME: ToneBytes, Silence, Tone and Audio rendered into one sample buffer
package same

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Section is one segment of a warning's render plan. The set of
// implementations is closed: ToneBytes, Silence, Tone and Audio.
type Section interface {
	section()
}

// ToneBytes is AFSK-modulated data
type ToneBytes []Byte

// Silence is a gap of the given length in seconds
type Silence float64

// Tone is a mixed carrier tone such as the attention signal
type Tone ToneSpec

// Audio is raw samples passed through verbatim
type Audio []float32

func (ToneBytes) section() {}
func (Silence) section()   {}
func (Tone) section()      {}
func (Audio) section()     {}

// RenderSection renders a single section
func RenderSection(s Section, sampleRate int) []float32 {
	switch s := s.(type) {
	case ToneBytes:
		return Modulate(s, sampleRate)
	case Silence:
		return make([]float32, SampleCount(float64(s), sampleRate))
	case Tone:
		return MultiTone(s.Seconds, sampleRate, s.Frequencies)
	case Audio:
		out := make([]float32, len(s))
		copy(out, s)
		return out
	default:
		panic(fmt.Sprintf("same: unknown section type %T", s))
	}
}

// SectionLength returns the number of samples s renders to, without rendering it
func SectionLength(s Section, sampleRate int) int {
	switch s := s.(type) {
	case ToneBytes:
		return len(s) * 8 * SampleCount(BitDuration, sampleRate)
	case Silence:
		return SampleCount(float64(s), sampleRate)
	case Tone:
		return SampleCount(s.Seconds, sampleRate)
	case Audio:
		return len(s)
	default:
		panic(fmt.Sprintf("same: unknown section type %T", s))
	}
}

// Render concatenates every section in order
func Render(sections []Section, sampleRate int) []float32 {
	total := 0
	for _, s := range sections {
		total += SectionLength(s, sampleRate)
	}

	out := make([]float32, 0, total)
	for _, s := range sections {
		out = append(out, RenderSection(s, sampleRate)...)
	}
	return out
}

// RenderConcurrent renders sections on up to workers goroutines and
// concatenates them in order. The result is identical to Render.
func RenderConcurrent(ctx context.Context, sections []Section, sampleRate, workers int) ([]float32, error) {
	offsets := make([]int, len(sections)+1)
	for i, s := range sections {
		offsets[i+1] = offsets[i] + SectionLength(s, sampleRate)
	}
	out := make([]float32, offsets[len(sections)])

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range sections {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			copy(out[offsets[i]:offsets[i+1]], RenderSection(s, sampleRate))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render sections: %w", err)
	}
	return out, nil
}
