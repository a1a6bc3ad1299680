// ABOUTME: EAS warning composition
// ABOUTME: Sequences headers, attention tone, message and footers into samples
package same

const (
	// HeaderRepeats is how many times the header and footer bursts are sent
	HeaderRepeats = 3
	// BurstGap is the silence between bursts and around the attention tone, in seconds
	BurstGap = 1.0
	// DefaultPreMessageSilence is the pause before the message audio, in seconds
	DefaultPreMessageSilence = 1.0
)

// AttentionPolicy decides when the attention tone is included
type AttentionPolicy int

const (
	// AttentionWhenCritical sends the tone only for critical warnings that carry a message
	AttentionWhenCritical AttentionPolicy = iota
	// AttentionAlways sends the tone on every warning
	AttentionAlways
)

func (p AttentionPolicy) String() string {
	if p == AttentionAlways {
		return "always"
	}
	return "critical"
}

// Policy holds the composition choices that vary between SAME deployments
type Policy struct {
	Attention         AttentionPolicy
	PreMessageSilence float64
}

// DefaultPolicy gates the attention tone on criticality and uses a 1s pre-roll
func DefaultPolicy() Policy {
	return Policy{
		Attention:         AttentionWhenCritical,
		PreMessageSilence: DefaultPreMessageSilence,
	}
}

// Option customises a Warning's policy
type Option func(*Policy)

// WithAttentionPolicy sets when the attention tone is sent
func WithAttentionPolicy(p AttentionPolicy) Option {
	return func(pol *Policy) { pol.Attention = p }
}

// WithPreMessageSilence sets the pause before the message audio.
// Negative values are treated as zero.
func WithPreMessageSilence(seconds float64) Option {
	return func(pol *Policy) {
		if seconds < 0 {
			seconds = 0
		}
		pol.PreMessageSilence = seconds
	}
}

// Warning is a complete EAS activation ready to be rendered
type Warning struct {
	header    Header
	attention AttentionSignal
	policy    Policy
}

// NewWarning combines a header and an attention signal
func NewWarning(h Header, a AttentionSignal, opts ...Option) Warning {
	policy := DefaultPolicy()
	for _, opt := range opts {
		opt(&policy)
	}
	return Warning{header: h, attention: a, policy: policy}
}

func (w Warning) Header() Header             { return w.header }
func (w Warning) Attention() AttentionSignal { return w.attention }
func (w Warning) Policy() Policy             { return w.policy }

// IncludesAttention reports whether the attention tone is part of the render
func (w Warning) IncludesAttention(hasMessage, critical bool) bool {
	if w.policy.Attention == AttentionAlways {
		return true
	}
	return critical && hasMessage
}

// Sections builds the render plan. An empty message omits the message
// audio and its pre-roll silence; every other section is always present.
func (w Warning) Sections(message []float32, critical bool) []Section {
	hasMessage := len(message) > 0
	header := ToneBytes(Bytes(w.header.Bytes()))
	eom := ToneBytes(Bytes(EndOfMessage()))

	var sections []Section
	for i := 0; i < HeaderRepeats; i++ {
		if i > 0 {
			sections = append(sections, Silence(BurstGap))
		}
		sections = append(sections, header)
	}
	sections = append(sections, Silence(BurstGap))

	if w.IncludesAttention(hasMessage, critical) {
		sections = append(sections, Tone(w.attention.ToneSpec()), Silence(BurstGap))
	}

	if hasMessage {
		sections = append(sections, Silence(w.policy.PreMessageSilence), Audio(message))
		sections = append(sections, Silence(BurstGap))
	}

	for i := 0; i < HeaderRepeats; i++ {
		if i > 0 {
			sections = append(sections, Silence(BurstGap))
		}
		sections = append(sections, eom)
	}
	return append(sections, Silence(BurstGap))
}

// Construct renders the warning at sampleRate. A nil or empty message means
// no message audio.
func (w Warning) Construct(sampleRate int, message []float32, critical bool) []float32 {
	return Render(w.Sections(message, critical), sampleRate)
}
