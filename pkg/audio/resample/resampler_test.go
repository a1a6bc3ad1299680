// ABOUTME: Tests for audio resampler
// ABOUTME: Tests linear interpolation resampling between sample rates
package resample

import (
	"math"
	"testing"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

func TestNew(t *testing.T) {
	r := New(44100, 48000, 2)

	if r == nil {
		t.Fatal("expected resampler to be created")
	}
	if r.inputRate != 44100 {
		t.Errorf("expected inputRate 44100, got %d", r.inputRate)
	}
	if r.outputRate != 48000 {
		t.Errorf("expected outputRate 48000, got %d", r.outputRate)
	}
	if r.channels != 2 {
		t.Errorf("expected channels 2, got %d", r.channels)
	}
}

func TestResampleUpsampling(t *testing.T) {
	// 44100 -> 48000 (upsampling by factor of ~1.088)
	r := New(44100, 48000, 2)

	input := make([]float32, 200)
	for i := range input {
		input[i] = float32(i) / 200 // Ramp signal
	}

	expectedSize := int(float64(len(input)) * float64(48000) / float64(44100))
	output := make([]float32, expectedSize)

	n := r.Resample(input, output)
	if n == 0 {
		t.Fatal("resampler produced no output")
	}

	// Allow some tolerance due to rounding
	if n < expectedSize-10 || n > expectedSize+10 {
		t.Errorf("expected ~%d samples, got %d", expectedSize, n)
	}
}

func TestResampleEmptyInput(t *testing.T) {
	r := New(48000, 44100, 1)
	if n := r.Resample(nil, make([]float32, 10)); n != 0 {
		t.Errorf("expected 0 samples, got %d", n)
	}
}

func TestResampleReset(t *testing.T) {
	r := New(48000, 44100, 1)
	r.Resample(make([]float32, 100), make([]float32, 100))
	r.Reset()
	if r.position != 0 {
		t.Errorf("expected position 0 after reset, got %v", r.position)
	}
}

func TestBufferLength(t *testing.T) {
	tests := []struct {
		name   string
		in     int
		out    int
		frames int
		want   int
	}{
		{"opus to cd", 48000, 44100, 48000, 44100},
		{"upsample", 8000, 16000, 100, 200},
		{"odd ratio", 22050, 48000, 1000, 2176},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := audio.Buffer{
				Samples: make([]float32, tt.frames),
				Format:  audio.Format{SampleRate: tt.in, Channels: 1},
			}
			got := Buffer(buf, tt.out)
			if len(got.Samples) != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, len(got.Samples))
			}
			if got.Format.SampleRate != tt.out {
				t.Errorf("expected rate %d, got %d", tt.out, got.Format.SampleRate)
			}
		})
	}
}

func TestBufferInterpolatesRamp(t *testing.T) {
	input := make([]float32, 100)
	for i := range input {
		input[i] = float32(i) / 100
	}

	got := Buffer(audio.Buffer{Samples: input, Format: audio.Format{SampleRate: 8000, Channels: 1}}, 16000)
	for k, s := range got.Samples {
		want := float64(k) / 200
		if k >= 198 {
			// last frame is held
			want = math.Min(want, 0.99)
		}
		if math.Abs(float64(s)-want) > 1e-5 {
			t.Fatalf("sample %d: expected %v, got %v", k, want, s)
		}
	}
}

func TestBufferSameRate(t *testing.T) {
	buf := audio.Buffer{Samples: []float32{1, 2, 3}, Format: audio.Format{SampleRate: 44100, Channels: 1}}
	got := Buffer(buf, 44100)
	if len(got.Samples) != 3 || got.Samples[2] != 3 {
		t.Errorf("expected passthrough, got %v", got.Samples)
	}
}
