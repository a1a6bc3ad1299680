// ABOUTME: Tests for section rendering and sequencing
// ABOUTME: Verifies per-variant output, lengths and concurrent rendering
package same

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSections() []Section {
	return []Section{
		ToneBytes(Bytes([]byte("ZCZC"))),
		Silence(0.5),
		Tone(ToneSpec{Seconds: 0.25, Frequencies: []float64{CombinedLowHz, CombinedHighHz}}),
		Audio{0.1, -0.2, 0.3},
		Silence(0),
		ToneBytes(Bytes(EndOfMessage())),
	}
}

func TestRenderSectionVariants(t *testing.T) {
	const rate = 22050

	silence := RenderSection(Silence(1.0), rate)
	require.Len(t, silence, rate)
	for _, s := range silence {
		assert.Equal(t, float32(0), s)
	}

	spec := ToneSpec{Seconds: 0.5, Frequencies: []float64{SingleToneHz}}
	assert.Equal(t, MultiTone(0.5, rate, spec.Frequencies), RenderSection(Tone(spec), rate))

	data := Bytes([]byte{0xAB, 'Z'})
	assert.Equal(t, Modulate(data, rate), RenderSection(ToneBytes(data), rate))

	audio := Audio{0.5, -0.5, 1}
	out := RenderSection(audio, rate)
	assert.Equal(t, []float32{0.5, -0.5, 1}, out)
	out[0] = 0
	assert.Equal(t, float32(0.5), audio[0], "audio must be copied, not aliased")
}

func TestSectionLengthMatchesRender(t *testing.T) {
	for _, rate := range []int{8000, 44100, 48000} {
		for i, s := range sampleSections() {
			assert.Len(t, RenderSection(s, rate), SectionLength(s, rate), "section %d at rate %d", i, rate)
		}
	}
}

func TestRenderConcatenates(t *testing.T) {
	const rate = 44100
	sections := sampleSections()

	var want []float32
	for _, s := range sections {
		want = append(want, RenderSection(s, rate)...)
	}
	assert.Equal(t, want, Render(sections, rate))
	assert.Empty(t, Render(nil, rate))
}

func TestRenderConcurrentMatchesRender(t *testing.T) {
	const rate = 44100
	sections := sampleSections()

	for _, workers := range []int{0, 1, 4} {
		got, err := RenderConcurrent(context.Background(), sections, rate, workers)
		require.NoError(t, err)
		assert.Equal(t, Render(sections, rate), got, "workers=%d", workers)
	}
}

func TestRenderConcurrentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderConcurrent(ctx, sampleSections(), 44100, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
