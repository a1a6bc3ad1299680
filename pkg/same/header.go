// ABOUTME: SAME header and end-of-message framing
// ABOUTME: Renders the ZCZC header and NNNN footer as raw ASCII bytes
package same

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

const (
	// PreambleByte is the AFSK clock-sync byte sent before every burst
	PreambleByte byte = 0xAB
	// PreambleLength is the number of preamble bytes per burst
	PreambleLength = 16
	// StartCode opens a header
	StartCode = "ZCZC"
	// EndCode is the end-of-message marker
	EndCode = "NNNN"
	// MaxLocations is the most location codes a header may carry
	MaxLocations = 31

	fieldSep    = '-'
	purgeSep    = '+'
	callsignSub = '\\'
)

// ErrTooManyLocations is returned by NewHeader for more than MaxLocations codes
var ErrTooManyLocations = errors.New("same: too many location codes")

// HeaderFields names the values a Header is built from
type HeaderFields struct {
	Originator Originator
	Event      EventCode
	Locations  []LocationCode
	Purge      PurgeTime
	Issued     time.Time
	Callsign   Callsign
}

// Header is an immutable SAME header. Build one with NewHeader.
type Header struct {
	originator Originator
	event      EventCode
	locations  []LocationCode
	purge      PurgeTime
	issued     time.Time
	callsign   Callsign
}

// NewHeader validates f and returns the header it describes
func NewHeader(f HeaderFields) (Header, error) {
	if len(f.Locations) > MaxLocations {
		return Header{}, fmt.Errorf("%w: got %d, max %d", ErrTooManyLocations, len(f.Locations), MaxLocations)
	}

	locations := make([]LocationCode, len(f.Locations))
	copy(locations, f.Locations)

	return Header{
		originator: f.Originator,
		event:      f.Event,
		locations:  locations,
		purge:      f.Purge,
		issued:     f.Issued,
		callsign:   f.Callsign,
	}, nil
}

func (h Header) Originator() Originator { return h.originator }
func (h Header) Event() EventCode       { return h.event }
func (h Header) Purge() PurgeTime       { return h.purge }
func (h Header) Issued() time.Time      { return h.issued }
func (h Header) Callsign() Callsign     { return h.callsign }

// Locations returns a copy of the location codes
func (h Header) Locations() []LocationCode {
	out := make([]LocationCode, len(h.locations))
	copy(out, h.locations)
	return out
}

// Bytes renders the header burst, preamble included
func (h Header) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(PreambleLength + 40 + 7*len(h.locations))
	buf.Write(preamble())
	h.writeText(&buf)
	return buf.Bytes()
}

// String returns the header text without the preamble
func (h Header) String() string {
	var buf bytes.Buffer
	h.writeText(&buf)
	return buf.String()
}

func (h Header) writeText(buf *bytes.Buffer) {
	buf.WriteString(StartCode)
	buf.WriteByte(fieldSep)
	buf.WriteString(h.originator.String())
	buf.WriteByte(fieldSep)
	buf.Write(h.event[:])
	for _, loc := range h.locations {
		buf.WriteByte(fieldSep)
		buf.Write(loc[:])
	}
	buf.WriteByte(purgeSep)
	buf.Write(h.purge[:])
	buf.WriteByte(fieldSep)
	buf.WriteString(IssueTime(h.issued))
	buf.WriteByte(fieldSep)
	for _, c := range h.callsign {
		if c == fieldSep {
			c = callsignSub
		}
		buf.WriteByte(c)
	}
	buf.WriteByte(fieldSep)
}

// IssueTime formats t as JJJHHMM (UTC day of year, hour, minute)
func IssueTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%03d%02d%02d", t.YearDay(), t.Hour(), t.Minute())
}

// EndOfMessage renders the footer burst: the preamble followed by NNNN
func EndOfMessage() []byte {
	return append(preamble(), EndCode...)
}

func preamble() []byte {
	return bytes.Repeat([]byte{PreambleByte}, PreambleLength)
}
