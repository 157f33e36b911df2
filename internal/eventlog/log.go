// Package eventlog keeps the append-only, timestamped record of note events
// for the running session.
package eventlog

import (
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// Log is the session event record. Entries are stamped with milliseconds since
// session start and are never mutated after append; the log is cleared only by
// a session restart.
type Log struct {
	start  time.Time
	events []contracts.MidiEvent
}

// New creates an empty log based at the given session start time.
func New(start time.Time) *Log {
	return &Log{start: start}
}

// Reset clears the log and re-bases the session clock.
func (l *Log) Reset(start time.Time) {
	l.start = start
	l.events = nil
}

// NoteOn appends a note-on entry, scaling the normalized velocity to 0-127.
func (l *Log) NoteOn(pitch int, velocity float64, at time.Time) {
	l.append(contracts.NoteOn, pitch, musicutil.MidiVelocity(velocity), at)
}

// NoteOff appends a note-off entry with velocity 0.
func (l *Log) NoteOff(pitch int, at time.Time) {
	l.append(contracts.NoteOff, pitch, 0, at)
}

func (l *Log) append(kind contracts.MidiEventKind, pitch int, velocity uint8, at time.Time) {
	l.events = append(l.events, contracts.MidiEvent{
		Kind:        kind,
		Pitch:       uint8(musicutil.Clamp(pitch, 0, 127)),
		Velocity:    velocity,
		TimestampMs: at.Sub(l.start).Milliseconds(),
	})
}

// Events returns a copy of the recorded sequence, in append order.
func (l *Log) Events() []contracts.MidiEvent {
	out := make([]contracts.MidiEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.events)
}

// Start returns the session base time.
func (l *Log) Start() time.Time {
	return l.start
}
