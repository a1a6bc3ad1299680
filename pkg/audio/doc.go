// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides the sample types shared by the encoder, decoders
// and playback.
//
// Samples are float32 in [-1, 1]. Conversions to and from 16-bit and
// 24-bit PCM clip out-of-range values instead of wrapping.
//
// Example:
//
//	buf := audio.Buffer{
//	    Samples: samples,
//	    Format:  audio.Format{SampleRate: 44100, Channels: 1, BitDepth: 16},
//	}
//	pcm := audio.FloatToInt16(buf.Samples[0])
package audio
