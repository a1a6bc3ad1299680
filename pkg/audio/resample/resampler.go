// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Brings message audio to the warning's sample rate using linear interpolation
package resample

import "github.com/Resonate-Protocol/same-go/pkg/audio"

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
	position   float64
}

// New creates a new resampler
func New(inputRate, outputRate, channels int) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
		position:   0.0,
	}
}

// Resample converts input samples to output sample rate using linear interpolation
// input: interleaved samples at inputRate
// output: interleaved samples at outputRate
func (r *Resampler) Resample(input []float32, output []float32) int {
	if len(input) == 0 {
		return 0
	}

	inputFrames := len(input) / r.channels
	outputFrames := len(output) / r.channels

	outIdx := 0

	for outIdx < outputFrames {
		// Calculate which input frame we need
		inputPos := r.position
		inputIdx := int(inputPos)

		// If we've consumed all input, stop
		if inputIdx >= inputFrames-1 {
			break
		}

		// Linear interpolation factor
		frac := float32(inputPos - float64(inputIdx))

		// Interpolate each channel
		for ch := 0; ch < r.channels; ch++ {
			sample1 := input[inputIdx*r.channels+ch]
			sample2 := input[(inputIdx+1)*r.channels+ch]
			output[outIdx*r.channels+ch] = sample1*(1-frac) + sample2*frac
		}

		outIdx++
		r.position += r.ratio
	}

	// Reset position for next chunk, keeping fractional part
	r.position -= float64(int(r.position))

	return outIdx * r.channels
}

// Reset resets the resampler state
func (r *Resampler) Reset() {
	r.position = 0.0
}

// Buffer converts a whole buffer to rate. The result holds
// floor(frames * rate / inputRate) frames.
func Buffer(buf audio.Buffer, rate int) audio.Buffer {
	in := buf.Format.SampleRate
	ch := buf.Format.Channels
	if ch <= 0 {
		ch = 1
	}
	frames := len(buf.Samples) / ch
	if in == rate || in <= 0 || rate <= 0 || frames == 0 {
		return buf
	}

	format := buf.Format
	format.SampleRate = rate
	format.Channels = ch

	outFrames := int(float64(frames) * float64(rate) / float64(in))
	out := make([]float32, outFrames*ch)

	// Repeat the last frame so interpolation can reach the end of the input
	padded := append(buf.Samples[:frames*ch:frames*ch], buf.Samples[(frames-1)*ch:frames*ch]...)
	n := New(in, rate, ch).Resample(padded, out)

	return audio.Buffer{Samples: out[:n], Format: format}
}
