// ABOUTME: Tests for sine tone synthesis
// ABOUTME: Checks sample counts, zero-phase boundaries and degenerate durations
package same

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCount(t *testing.T) {
	tests := []struct {
		name       string
		seconds    float64
		sampleRate int
		want       int
	}{
		{"one second", 1.0, 44100, 44100},
		{"bit period 44100", BitDuration, 44100, 84},
		{"bit period 48000", BitDuration, 48000, 92},
		{"zero", 0, 44100, 0},
		{"negative", -1, 44100, 0},
		{"nan", math.NaN(), 44100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleCount(tt.seconds, tt.sampleRate))
		})
	}
}

func TestSineShape(t *testing.T) {
	for _, hz := range []float64{SpaceHz, MarkHz, SingleToneHz, CombinedLowHz, 440} {
		for _, rate := range []int{8000, 22050, 44100, 48000} {
			for _, cycles := range []float64{1, 3, 4, 10} {
				seconds := cycles / hz
				samples := Sine(seconds, rate, cycles)

				require.Len(t, samples, int(math.Floor(float64(rate)*seconds)))
				if len(samples) == 0 {
					continue
				}
				assert.InDelta(t, 0.0, samples[0], 1e-9, "first sample hz=%v rate=%d", hz, rate)
				if len(samples) > 1 {
					assert.InDelta(t, 0.0, samples[len(samples)-1], 1e-4, "last sample hz=%v rate=%d", hz, rate)
				}
				for i, s := range samples {
					if s < -1 || s > 1 {
						t.Fatalf("sample %d out of range: %v", i, s)
					}
				}
			}
		}
	}
}

func TestSineQuarterCycle(t *testing.T) {
	// 5 samples over one cycle: 0, 1, 0, -1, 0
	samples := Sine(5.0/1000, 1000, 1)
	require.Len(t, samples, 5)

	want := []float64{0, 1, 0, -1, 0}
	for i, w := range want {
		assert.InDelta(t, w, samples[i], 1e-6, "sample %d", i)
	}
}

func TestSineDegenerate(t *testing.T) {
	assert.Empty(t, Sine(0, 44100, 4))
	assert.Empty(t, Sine(-1, 44100, 4))

	one := Sine(1.5/44100, 44100, 4)
	require.Len(t, one, 1)
	assert.Equal(t, float32(0), one[0])

	for _, s := range Sine(1, 100, 0) {
		assert.Equal(t, float32(0), s)
	}
}

func TestSineHz(t *testing.T) {
	assert.Equal(t, Sine(0.5, 8000, 500), SineHz(0.5, 8000, 1000))
}

func TestMultiToneSingleFrequency(t *testing.T) {
	const rate = 8000
	const seconds = 0.25
	samples := MultiTone(seconds, rate, []float64{1000})

	n := SampleCount(seconds, rate)
	require.Len(t, samples, n)
	assert.InDelta(t, 0.0, samples[0], 1e-9)

	cycles := 1000 * seconds
	for _, i := range []int{1, 7, 100, n - 1} {
		want := math.Sin(2 * math.Pi * float64(i) * cycles / float64(n))
		assert.InDelta(t, want, samples[i], 1e-6, "sample %d", i)
	}
}

func TestMultiToneAveragesCarriers(t *testing.T) {
	const rate = 44100
	const seconds = 0.1
	freqs := []float64{CombinedLowHz, CombinedHighHz}
	mixed := MultiTone(seconds, rate, freqs)
	low := MultiTone(seconds, rate, freqs[:1])
	high := MultiTone(seconds, rate, freqs[1:])

	require.Len(t, mixed, SampleCount(seconds, rate))
	for i := range mixed {
		want := (float64(low[i]) + float64(high[i])) / 2
		assert.InDelta(t, want, mixed[i], 1e-6)
		if mixed[i] < -1 || mixed[i] > 1 {
			t.Fatalf("sample %d out of range: %v", i, mixed[i])
		}
	}
}

func TestMultiToneEdgeCases(t *testing.T) {
	assert.Empty(t, MultiTone(0, 44100, []float64{1050}))

	silent := MultiTone(0.01, 44100, nil)
	require.Len(t, silent, 441)
	for _, s := range silent {
		assert.Equal(t, float32(0), s)
	}

	one := MultiTone(1.5/44100, 44100, []float64{1050})
	require.Len(t, one, 1)
	assert.Equal(t, float32(0), one[0])
}
