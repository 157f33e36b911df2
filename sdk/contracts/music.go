package contracts

import "time"

// ScaleName identifies one of the built-in musical scales.
type ScaleName string

const (
	ScalePentatonic ScaleName = "pentatonic"
	ScaleMajor      ScaleName = "major"
	ScaleMinor      ScaleName = "minor"
	ScaleBlues      ScaleName = "blues"
	ScaleDorian     ScaleName = "dorian"
	ScaleChromatic  ScaleName = "chromatic"
)

// Scale is a named ordered set of pitch-class offsets (0-11) within an octave.
// Exactly one scale is active at a time; changing it rebuilds all pitch zones
// and resets the pattern model.
type Scale struct {
	Name    ScaleName
	Offsets []int
}

// DegreeOf returns the index of the given pitch class in the scale's offset
// list, or -1 if the pitch class is not a scale member.
func (s Scale) DegreeOf(pitchClass int) int {
	for i, off := range s.Offsets {
		if off == pitchClass {
			return i
		}
	}
	return -1
}

// HarmonyMode selects how a triggered root pitch is elaborated.
type HarmonyMode string

const (
	HarmonyNone         HarmonyMode = "none"
	HarmonyChords       HarmonyMode = "chords"
	HarmonyArpeggios    HarmonyMode = "arpeggios"
	HarmonyCounterpoint HarmonyMode = "counterpoint"
)

// Instrument selects the waveform, effect topology and envelope constants used
// by the voice scheduler.
type Instrument string

const (
	InstrumentPiano  Instrument = "piano"
	InstrumentGuitar Instrument = "guitar"
	InstrumentViolin Instrument = "violin"
	InstrumentFlute  Instrument = "flute"
	InstrumentSynth  Instrument = "synth"
	InstrumentOrgan  Instrument = "organ"
	InstrumentHarp   Instrument = "harp"
	InstrumentCello  Instrument = "cello"
)

// NoteEvent is an onset request produced by the harmony generator and consumed
// by the voice scheduler. Velocity is normalized to [0,1]; Delay is relative to
// the frame that produced the event.
type NoteEvent struct {
	Pitch    int
	Velocity float64
	Delay    time.Duration
}

// MidiEventKind is the status of a logged event, using raw MIDI status values
// so the export adapter can emit them directly.
type MidiEventKind byte

const (
	NoteOn  MidiEventKind = 0x90
	NoteOff MidiEventKind = 0x80
)

// MidiEvent is one append-only Event Log entry. TimestampMs is relative to
// session start.
type MidiEvent struct {
	Kind        MidiEventKind
	Pitch       uint8
	Velocity    uint8 // 0-127
	TimestampMs int64
}
