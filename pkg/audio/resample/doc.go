// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts audio between different sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling.
//
// Example:
//
//	r := resample.New(48000, 44100, 1)
//	n := r.Resample(inputSamples, outputSamples)
//
//	// or, for a complete buffer
//	message = resample.Buffer(message, 44100)
package resample
