// Package export folds the session event log into a Standard MIDI File.
//
// Every logged event is fully encoded: delta time, status, pitch and velocity.
// The exported track round-trips the log's (kind, pitch, velocity, timestamp)
// tuples in original order.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// All events are written on a single channel at a fixed tempo.
	channel  = 0
	tempoBPM = 120.0

	// resolution is the tick resolution of the exported file.
	resolution = smf.MetricTicks(960)
)

// ToSMF builds a single-track SMF from the logged sequence.
func ToSMF(events []contracts.MidiEvent) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = resolution

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempoBPM))

	var lastTicks uint32
	for _, ev := range events {
		abs := resolution.Ticks(tempoBPM, time.Duration(ev.TimestampMs)*time.Millisecond)
		delta := abs - lastTicks
		lastTicks = abs

		switch ev.Kind {
		case contracts.NoteOn:
			track.Add(delta, midi.NoteOn(channel, ev.Pitch, ev.Velocity))
		case contracts.NoteOff:
			track.Add(delta, midi.NoteOff(channel, ev.Pitch))
		default:
			return nil, fmt.Errorf("unknown event kind 0x%X", byte(ev.Kind))
		}
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return s, nil
}

// Write encodes the logged sequence as SMF bytes to w.
func Write(w io.Writer, events []contracts.MidiEvent) error {
	s, err := ToSMF(events)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing SMF: %w", err)
	}
	return nil
}
