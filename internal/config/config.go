// ABOUTME: Warning descriptor configuration loaded from TOML
// ABOUTME: Applies defaults and converts the file into SAME core types
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jonboulle/clockwork"

	"github.com/Resonate-Protocol/same-go/pkg/same"
)

const (
	DefaultSampleRate       = 44100
	DefaultBitDepth         = 16
	DefaultAttentionKind    = "single"
	DefaultAttentionSeconds = same.MinAttentionDuration
	DefaultOutputPath       = "warning.wav"
)

// Config is a complete warning descriptor
type Config struct {
	Header    HeaderConfig    `toml:"header"`
	Attention AttentionConfig `toml:"attention"`
	Message   MessageConfig   `toml:"message"`
	Output    OutputConfig    `toml:"output"`
	Policy    PolicyConfig    `toml:"policy"`
}

// HeaderConfig holds the SAME header fields as strings
type HeaderConfig struct {
	Originator string    `toml:"originator"`
	Event      string    `toml:"event"`
	Locations  []string  `toml:"locations"`
	Purge      string    `toml:"purge"`
	Issued     time.Time `toml:"issued"`
	Callsign   string    `toml:"callsign"`
}

// AttentionConfig selects the attention tone
type AttentionConfig struct {
	Kind    string  `toml:"kind"`
	Seconds float64 `toml:"seconds"`
}

// MessageConfig points at the recorded message
type MessageConfig struct {
	Path     string `toml:"path"`
	Critical bool   `toml:"critical"`
}

// OutputConfig controls where and how the warning is rendered
type OutputConfig struct {
	Path       string `toml:"path"`
	SampleRate int    `toml:"sample_rate"`
	BitDepth   int    `toml:"bit_depth"`
	Play       bool   `toml:"play"`
}

// PolicyConfig chooses the composition policy
type PolicyConfig struct {
	Attention         string   `toml:"attention"`
	PreMessageSilence *float64 `toml:"pre_message_silence"`
}

// Load reads a descriptor from path using the real clock
func Load(path string) (*Config, error) {
	return LoadWithClock(path, clockwork.NewRealClock())
}

// LoadWithClock reads a descriptor from path. An unset issue time
// defaults to the clock's current minute.
func LoadWithClock(path string, clock clockwork.Clock) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, clock)
}

// Parse decodes a TOML descriptor and applies defaults
func Parse(data []byte, clock clockwork.Clock) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}

	cfg.applyDefaults(clock)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(clock clockwork.Clock) {
	if c.Header.Issued.IsZero() {
		c.Header.Issued = clock.Now().UTC().Truncate(time.Minute)
	}
	if c.Attention.Kind == "" {
		c.Attention.Kind = DefaultAttentionKind
	}
	if c.Attention.Seconds == 0 {
		c.Attention.Seconds = DefaultAttentionSeconds
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.SampleRate == 0 {
		c.Output.SampleRate = DefaultSampleRate
	}
	if c.Output.BitDepth == 0 {
		c.Output.BitDepth = DefaultBitDepth
	}
	if c.Policy.Attention == "" {
		c.Policy.Attention = same.AttentionWhenCritical.String()
	}
}

// Validate checks the fields that do not map onto a core constructor
func (c *Config) Validate() error {
	if c.Output.SampleRate <= 0 {
		return fmt.Errorf("invalid sample_rate: %d", c.Output.SampleRate)
	}
	if c.Output.BitDepth != 16 && c.Output.BitDepth != 24 {
		return fmt.Errorf("invalid bit_depth: %d (supported: 16, 24)", c.Output.BitDepth)
	}
	if c.Header.Originator == "" {
		return errors.New("header.originator is required")
	}
	if c.Header.Event == "" {
		return errors.New("header.event is required")
	}
	if c.Header.Callsign == "" {
		return errors.New("header.callsign is required")
	}
	if _, err := c.attentionPolicy(); err != nil {
		return err
	}
	return nil
}

// SAMEHeader converts the header section into a validated same.Header
func (c *Config) SAMEHeader() (same.Header, error) {
	h := c.Header

	originator, err := same.ParseOriginator(h.Originator)
	if err != nil {
		return same.Header{}, err
	}
	event, err := same.ParseEventCode(h.Event)
	if err != nil {
		return same.Header{}, err
	}
	purge, err := same.ParsePurgeTime(h.Purge)
	if err != nil {
		return same.Header{}, err
	}
	callsign, err := same.ParseCallsign(h.Callsign)
	if err != nil {
		return same.Header{}, err
	}

	locations := make([]same.LocationCode, 0, len(h.Locations))
	for _, l := range h.Locations {
		loc, err := same.ParseLocationCode(l)
		if err != nil {
			return same.Header{}, err
		}
		locations = append(locations, loc)
	}

	return same.NewHeader(same.HeaderFields{
		Originator: originator,
		Event:      event,
		Locations:  locations,
		Purge:      purge,
		Issued:     h.Issued,
		Callsign:   callsign,
	})
}

// AttentionSignal converts the attention section
func (c *Config) AttentionSignal() (same.AttentionSignal, error) {
	kind, err := same.ParseAttentionKind(c.Attention.Kind)
	if err != nil {
		return same.AttentionSignal{}, err
	}
	return same.NewAttention(kind, c.Attention.Seconds)
}

// Warning builds the complete warning described by the config
func (c *Config) Warning() (same.Warning, error) {
	header, err := c.SAMEHeader()
	if err != nil {
		return same.Warning{}, fmt.Errorf("invalid header: %w", err)
	}
	attention, err := c.AttentionSignal()
	if err != nil {
		return same.Warning{}, fmt.Errorf("invalid attention signal: %w", err)
	}
	policy, err := c.attentionPolicy()
	if err != nil {
		return same.Warning{}, err
	}

	opts := []same.Option{same.WithAttentionPolicy(policy)}
	if c.Policy.PreMessageSilence != nil {
		opts = append(opts, same.WithPreMessageSilence(*c.Policy.PreMessageSilence))
	}
	return same.NewWarning(header, attention, opts...), nil
}

func (c *Config) attentionPolicy() (same.AttentionPolicy, error) {
	switch c.Policy.Attention {
	case same.AttentionWhenCritical.String():
		return same.AttentionWhenCritical, nil
	case same.AttentionAlways.String():
		return same.AttentionAlways, nil
	}
	return 0, fmt.Errorf("invalid policy.attention: %q (supported: critical, always)", c.Policy.Attention)
}
