// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for playback backends plus a chunked play helper
package output

import (
	"context"
	"fmt"
)

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write outputs audio samples (blocks until written)
	Write(samples []float32) error

	// Drain blocks until everything written has been played
	Drain() error

	// Close releases output resources
	Close() error
}

// Play writes samples to an opened output in chunks, reporting the number
// of samples handed over after every chunk, then drains it.
func Play(ctx context.Context, out Output, samples []float32, chunk int, progress func(written int)) error {
	if chunk <= 0 {
		chunk = len(samples)
	}

	for start := 0; start < len(samples); start += chunk {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+chunk, len(samples))
		if err := out.Write(samples[start:end]); err != nil {
			return fmt.Errorf("write failed at sample %d: %w", start, err)
		}
		if progress != nil {
			progress(end)
		}
	}

	return out.Drain()
}
