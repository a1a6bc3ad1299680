// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Output interface and an oto implementation
// Package output plays rendered warnings on the local sound device.
//
// The oto backend streams float32 samples through a pipe into a single
// persistent player.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(44100, 1)
//	err = output.Play(ctx, out, samples, 4410, nil)
//	out.Close()
package output
