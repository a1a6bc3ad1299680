// ABOUTME: Sine tone synthesis for SAME bits and attention signals
// ABOUTME: Generates phase-zero-aligned single and mixed frequency segments
package same

import "math"

// ToneSpec describes a tone section: a duration and the carriers mixed into it
type ToneSpec struct {
	Seconds     float64
	Frequencies []float64
}

// SampleCount returns floor(sampleRate * seconds), never negative
func SampleCount(seconds float64, sampleRate int) int {
	n := math.Floor(float64(sampleRate) * seconds)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Sine generates floor(sampleRate*seconds) samples containing exactly the
// given number of cycles. The first and last samples sit at zero phase.
func Sine(seconds float64, sampleRate int, cycles float64) []float32 {
	return sineSamples(SampleCount(seconds, sampleRate), cycles)
}

// SineHz generates a tone of the given frequency, deriving cycles from the duration
func SineHz(seconds float64, sampleRate int, hz float64) []float32 {
	return Sine(seconds, sampleRate, hz*seconds)
}

// MultiTone mixes one sine per frequency by averaging them sample-wise.
//
// Each carrier is rendered onto an N+1 sample buffer and the trailing
// sample is dropped, so the result starts at zero phase but does not end
// on it. An empty frequency set yields N samples of silence.
func MultiTone(seconds float64, sampleRate int, freqs []float64) []float32 {
	n := SampleCount(seconds, sampleRate)
	out := make([]float32, n)
	if n == 0 || len(freqs) == 0 {
		return out
	}

	mix := make([]float64, n+1)
	for _, hz := range freqs {
		cycles := hz * seconds
		divisor := float64(n) / cycles
		for i := range mix {
			mix[i] += math.Sin(2 * math.Pi * (float64(i) / divisor))
		}
	}

	scale := 1.0 / float64(len(freqs))
	for i := range out {
		out[i] = float32(mix[i] * scale)
	}
	return out
}

// sineSamples renders n samples spanning the cycles, using n-1 as the
// phase divisor. n <= 1 or zero cycles produce silence.
func sineSamples(n int, cycles float64) []float32 {
	out := make([]float32, n)
	if n <= 1 || cycles == 0 {
		return out
	}

	divisor := float64(n-1) / cycles
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * (float64(i) / divisor)))
	}
	return out
}
