// ABOUTME: Warning timeline for the playback display
// ABOUTME: Labels each render section with its sample offset and length
package ui

import (
	"fmt"

	"github.com/Resonate-Protocol/same-go/pkg/same"
)

// Segment is one labelled span of the rendered warning
type Segment struct {
	Label  string
	Start  int
	Length int
}

// Timeline lays the sections out end to end at sampleRate. Tone bursts
// are labelled as header or EOM by their rendered text.
func Timeline(sections []same.Section, sampleRate int) []Segment {
	eomLen := len(same.EndOfMessage())

	segments := make([]Segment, 0, len(sections))
	offset := 0
	for _, s := range sections {
		n := same.SectionLength(s, sampleRate)

		var label string
		switch s := s.(type) {
		case same.ToneBytes:
			if len(s) == eomLen && s[len(s)-1] == same.NewByte('N') {
				label = "EOM"
			} else {
				label = "Header"
			}
		case same.Silence:
			label = "Silence"
		case same.Tone:
			label = fmt.Sprintf("Attention %v Hz", s.Frequencies)
		case same.Audio:
			label = "Message"
		}

		segments = append(segments, Segment{Label: label, Start: offset, Length: n})
		offset += n
	}
	return segments
}

// segmentAt returns the index of the segment containing sample, or -1
func segmentAt(segments []Segment, sample int) int {
	for i, s := range segments {
		if sample >= s.Start && sample < s.Start+s.Length {
			return i
		}
	}
	return -1
}
