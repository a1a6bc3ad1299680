// ABOUTME: Audio decoder package for message audio
// ABOUTME: Provides Decoder interface and implementations for WAV, MP3, FLAC, Opus
// Package decode loads recorded message audio for a warning.
//
// Supports: WAV (16/24-bit PCM, 32-bit float), MP3, FLAC, Ogg Opus (mono)
//
// All decoders return float32 samples in [-1, 1] together with the
// stream's native format. Callers downmix and resample as needed.
//
// Example:
//
//	buf, err := decode.File("message.mp3")
//	mono := buf.Mono()
package decode
