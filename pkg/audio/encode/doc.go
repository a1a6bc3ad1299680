// ABOUTME: Audio encoder package for PCM and WAV output
// ABOUTME: Provides Encoder interface, PCM encoder and WAV container writer
// Package encode turns float samples into PCM bytes and WAV files.
//
// Supports: PCM (16-bit and 24-bit little-endian), WAV (RIFF, PCM format 1)
//
// Example:
//
//	wav, err := encode.WAV(samples, audio.Format{SampleRate: 44100, Channels: 1, BitDepth: 16})
//	err = os.WriteFile("warning.wav", wav, 0644)
package encode
