// ABOUTME: Fixed-width SAME header fields
// ABOUTME: Originator, event, location, purge time and callsign codes
package same

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrFieldWidth is returned when a code string has the wrong length
	ErrFieldWidth = errors.New("same: field has wrong width")
	// ErrUnknownOriginator is returned for an unrecognised originator code
	ErrUnknownOriginator = errors.New("same: unknown originator")
	// ErrPurgeRange is returned for purge durations SAME cannot express
	ErrPurgeRange = errors.New("same: purge time out of range")
)

// Originator identifies who initiated the activation
type Originator int

const (
	// PEP is a Primary Entry Point station (national activations)
	PEP Originator = iota
	// CIV is civil authorities
	CIV
	// WXR is the National Weather Service
	WXR
	// EAS is an EAS participant (broadcast station or cable system)
	EAS
	// EAN is the Emergency Action Notification network.
	//
	// Deprecated: EAN was removed as an originator code by the FCC in 2002.
	EAN
)

var originatorCodes = map[Originator]string{
	PEP: "PEP",
	CIV: "CIV",
	WXR: "WXR",
	EAS: "EAS",
	EAN: "EAN",
}

func (o Originator) String() string {
	if s, ok := originatorCodes[o]; ok {
		return s
	}
	return fmt.Sprintf("Originator(%d)", int(o))
}

// ParseOriginator maps a three letter code (case-insensitive) to an Originator
func ParseOriginator(s string) (Originator, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for o, c := range originatorCodes {
		if c == code {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOriginator, s)
}

// EventCode is the three character event type, e.g. "RWT" or "TOR"
type EventCode [3]byte

// LocationCode is a six digit PSSCCC location (subdivision, state, county)
type LocationCode [6]byte

// PurgeTime is the four digit hhmm validity period
type PurgeTime [4]byte

// Callsign is the eight character station identification
type Callsign [8]byte

// ParseEventCode builds an EventCode from a three character string
func ParseEventCode(s string) (EventCode, error) {
	var c EventCode
	err := fixed(c[:], strings.ToUpper(s), "event code")
	return c, err
}

// ParseLocationCode builds a LocationCode from a six character string
func ParseLocationCode(s string) (LocationCode, error) {
	var c LocationCode
	err := fixed(c[:], s, "location code")
	return c, err
}

// ParsePurgeTime builds a PurgeTime from a four character string
func ParsePurgeTime(s string) (PurgeTime, error) {
	var c PurgeTime
	err := fixed(c[:], s, "purge time")
	return c, err
}

// ParseCallsign builds a Callsign. Shorter strings are padded with spaces
// on the right; anything longer than eight characters is rejected.
func ParseCallsign(s string) (Callsign, error) {
	var c Callsign
	if len(s) > len(c) {
		return c, fmt.Errorf("%w: callsign %q longer than %d", ErrFieldWidth, s, len(c))
	}
	err := fixed(c[:], s+strings.Repeat(" ", len(c)-len(s)), "callsign")
	return c, err
}

// PurgeFromDuration renders d as a purge time. Periods up to one hour use
// 15 minute steps, longer periods 30 minute steps, up to 99h30m.
func PurgeFromDuration(d time.Duration) (PurgeTime, error) {
	var p PurgeTime
	if d <= 0 || d > 99*time.Hour+30*time.Minute {
		return p, fmt.Errorf("%w: %s", ErrPurgeRange, d)
	}

	step := 30 * time.Minute
	if d <= time.Hour {
		step = 15 * time.Minute
	}
	if d%step != 0 {
		return p, fmt.Errorf("%w: %s is not a multiple of %s", ErrPurgeRange, d, step)
	}

	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	copy(p[:], fmt.Sprintf("%02d%02d", hours, minutes))
	return p, nil
}

func (c EventCode) String() string    { return string(c[:]) }
func (c LocationCode) String() string { return string(c[:]) }
func (c PurgeTime) String() string    { return string(c[:]) }
func (c Callsign) String() string     { return string(c[:]) }

func fixed(dst []byte, s, field string) error {
	if len(s) != len(dst) {
		return fmt.Errorf("%w: %s %q must be %d characters", ErrFieldWidth, field, s, len(dst))
	}
	copy(dst, s)
	return nil
}
