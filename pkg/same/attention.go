// ABOUTME: EAS attention signal selection
// ABOUTME: Single 1050Hz or combined 853/960Hz tone with an 8 second minimum
package same

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinAttentionDuration is the shortest attention signal SAME allows, in seconds
	MinAttentionDuration = 8.0

	// SingleToneHz is the NWR single tone attention frequency
	SingleToneHz = 1050.0
	// CombinedLowHz and CombinedHighHz make up the two-tone attention signal
	CombinedLowHz  = 853.0
	CombinedHighHz = 960.0
)

var (
	// ErrAttentionTooShort is returned for durations under MinAttentionDuration
	ErrAttentionTooShort = errors.New("same: attention signal too short")
	// ErrUnknownAttention is returned by ParseAttentionKind
	ErrUnknownAttention = errors.New("same: unknown attention signal kind")
)

// AttentionKind selects the attention tone variant
type AttentionKind int

const (
	SingleTone AttentionKind = iota
	CombinedTone
)

func (k AttentionKind) String() string {
	switch k {
	case SingleTone:
		return "single"
	case CombinedTone:
		return "combined"
	}
	return fmt.Sprintf("AttentionKind(%d)", int(k))
}

// ParseAttentionKind accepts "single" or "combined"
func ParseAttentionKind(s string) (AttentionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SingleTone, nil
	case "combined", "dual":
		return CombinedTone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttention, s)
}

// AttentionSignal is a validated attention tone. The zero value is not valid;
// use Single, Combined or NewAttention.
type AttentionSignal struct {
	kind    AttentionKind
	seconds float64
}

// Single returns a 1050 Hz attention signal
func Single(seconds float64) (AttentionSignal, error) {
	return NewAttention(SingleTone, seconds)
}

// Combined returns an 853 Hz + 960 Hz attention signal
func Combined(seconds float64) (AttentionSignal, error) {
	return NewAttention(CombinedTone, seconds)
}

// NewAttention validates the duration and returns the signal
func NewAttention(kind AttentionKind, seconds float64) (AttentionSignal, error) {
	if kind != SingleTone && kind != CombinedTone {
		return AttentionSignal{}, fmt.Errorf("%w: %s", ErrUnknownAttention, kind)
	}
	if !(seconds >= MinAttentionDuration) {
		return AttentionSignal{}, fmt.Errorf("%w: %.2fs, minimum %.1fs", ErrAttentionTooShort, seconds, MinAttentionDuration)
	}
	return AttentionSignal{kind: kind, seconds: seconds}, nil
}

func (a AttentionSignal) Kind() AttentionKind { return a.kind }
func (a AttentionSignal) Seconds() float64    { return a.seconds }

// ToneSpec converts the signal to the tone section that renders it
func (a AttentionSignal) ToneSpec() ToneSpec {
	if a.kind == CombinedTone {
		return ToneSpec{Seconds: a.seconds, Frequencies: []float64{CombinedLowHz, CombinedHighHz}}
	}
	return ToneSpec{Seconds: a.seconds, Frequencies: []float64{SingleToneHz}}
}
