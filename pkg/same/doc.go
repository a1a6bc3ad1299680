// ABOUTME: SAME / EAS warning encoder package
// ABOUTME: Builds headers, attention tones and full warnings as float samples
// Package same synthesizes Emergency Alert System warnings encoded with the
// Specific Area Message Encoding protocol.
//
// A warning is a header burst sent three times, an optional attention
// tone, the spoken message, and an end-of-message burst sent three times.
// Bursts are AFSK modulated at 520.83 baud: a mark bit is four cycles and a
// space bit three cycles of a 1.92ms period.
//
// Example:
//
//	event, _ := same.ParseEventCode("RWT")
//	loc, _ := same.ParseLocationCode("048100")
//	purge, _ := same.ParsePurgeTime("0015")
//	call, _ := same.ParseCallsign("WDAF/FM")
//
//	header, err := same.NewHeader(same.HeaderFields{
//	    Originator: same.CIV,
//	    Event:      event,
//	    Locations:  []same.LocationCode{loc},
//	    Purge:      purge,
//	    Issued:     time.Now(),
//	    Callsign:   call,
//	})
//	tone, err := same.Single(8)
//
//	samples := same.NewWarning(header, tone).Construct(44100, message, true)
package same
