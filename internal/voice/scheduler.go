// Package voice owns the set of currently sounding pitches. It enforces
// at-most-one-voice-per-pitch, applies per-instrument envelopes through the
// synthesis backend and performs timed releases via a scheduled-task queue
// consumed by the audio clock.
package voice

import (
	"sort"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/eventlog"
	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

const (
	// Peak gain fraction reached at the end of the attack ramp.
	attackPeak = 0.4
	// Fixed release fade applied on note-off.
	releaseTime = 200 * time.Millisecond
)

// Voice is the record of one sounding pitch.
type Voice struct {
	Pitch     int
	Velocity  float64
	StartedAt time.Time
	handle    contracts.ToneHandle
	decay     *task
}

// Scheduler drives the synthesis backend. All methods are called from the
// frame callback; scheduled actions run when the audio clock is advanced.
type Scheduler struct {
	synth  contracts.Synthesizer
	log    *eventlog.Log
	logger contracts.Logger
	clock  func() time.Time

	instrument contracts.Instrument
	profile    Profile
	master     float64

	voices map[int]*Voice
	tasks  taskQueue
}

// New creates a scheduler bound to a backend and the session event log.
func New(synth contracts.Synthesizer, log *eventlog.Log, lg contracts.Logger, clock func() time.Time, instrument contracts.Instrument, masterVolume float64) *Scheduler {
	return &Scheduler{
		synth:      synth,
		log:        log,
		logger:     lg,
		clock:      clock,
		instrument: instrument,
		profile:    ProfileFor(instrument),
		master:     musicutil.Clamp(masterVolume, 0, 1),
		voices:     make(map[int]*Voice),
	}
}

// NoteOn starts a voice for the event's pitch. A pitch that is already
// sounding is silently ignored; that keeps overlapping zones and generated
// duplicates from doubling voices. Events with a positive delay become
// cancellable onset tasks on the audio clock.
func (s *Scheduler) NoteOn(ev contracts.NoteEvent) {
	if ev.Pitch < 0 || ev.Pitch > 127 {
		return
	}
	if _, exists := s.voices[ev.Pitch]; exists {
		return
	}
	now := s.clock()
	if ev.Delay > 0 {
		s.schedule(now.Add(ev.Delay), taskOnset, ev.Pitch, func(fireAt time.Time) {
			s.startVoice(ev.Pitch, ev.Velocity, fireAt)
		})
		return
	}
	s.startVoice(ev.Pitch, ev.Velocity, now)
}

// startVoice instantiates the backend generator and walks the gain envelope:
// 0 -> velocity*attackPeak over attack, then to velocity*sustain over decay.
func (s *Scheduler) startVoice(pitch int, velocity float64, now time.Time) {
	if _, exists := s.voices[pitch]; exists {
		// A voice appeared between scheduling and firing.
		return
	}

	spec := contracts.ToneSpec{
		Frequency: musicutil.Frequency(pitch),
		Pitch:     pitch,
		Velocity:  velocity,
		Waveform:  s.profile.Waveform,
		Effect:    s.profile.Effect,
		Gain:      0,
	}
	handle, err := s.synth.StartTone(spec)
	if err != nil {
		s.logger.Warn("tone start failed",
			s.logger.Field().Int("pitch", pitch),
			s.logger.Field().Error("error", err))
		return
	}

	peak := velocity * attackPeak * s.master
	sustain := velocity * s.profile.Sustain * s.master
	_ = s.synth.SetGain(handle, peak, s.profile.Attack)
	decay := s.schedule(now.Add(s.profile.Attack), taskDecay, pitch, func(time.Time) {
		_ = s.synth.SetGain(handle, sustain, s.profile.Decay)
	})

	s.voices[pitch] = &Voice{Pitch: pitch, Velocity: velocity, StartedAt: now, handle: handle, decay: decay}
	s.log.NoteOn(pitch, velocity, now)
}

// NoteOff releases the voice for a pitch: a releaseTime gain fade, then a
// scheduled generator stop. A pitch with no voice is a no-op.
func (s *Scheduler) NoteOff(pitch int) {
	v, ok := s.voices[pitch]
	if !ok {
		return
	}
	now := s.clock()
	handle := v.handle
	// A release inside the attack window must not be undone by the pending
	// decay transition.
	v.decay.cancelled = true
	_ = s.synth.SetGain(handle, 0, releaseTime)
	s.schedule(now.Add(releaseTime), taskStop, pitch, func(time.Time) {
		// The generator may already have stopped naturally; tolerated.
		_ = s.synth.StopTone(handle)
	})
	delete(s.voices, pitch)
	s.log.NoteOff(pitch, now)
}

// StopAll releases every sounding voice and cancels onsets that have not
// started yet, so a stop gesture cannot be followed by a stray delayed note.
func (s *Scheduler) StopAll() {
	s.cancelPendingOnsets()
	for _, pitch := range s.Sounding() {
		s.NoteOff(pitch)
	}
}

// Reconcile releases every sounding pitch absent from the frame's trigger
// set; a finger leaving its zone stops the note without an explicit gesture.
func (s *Scheduler) Reconcile(active map[int]bool) {
	for _, pitch := range s.Sounding() {
		if !active[pitch] {
			s.NoteOff(pitch)
		}
	}
}

// Has reports whether a voice exists for the pitch.
func (s *Scheduler) Has(pitch int) bool {
	_, ok := s.voices[pitch]
	return ok
}

// Sounding returns the sounding pitches in ascending order.
func (s *Scheduler) Sounding() []int {
	pitches := make([]int, 0, len(s.voices))
	for pitch := range s.voices {
		pitches = append(pitches, pitch)
	}
	sort.Ints(pitches)
	return pitches
}

// SetInstrument swaps the active profile. All voices are stopped first; an
// in-flight envelope must not change timbre mid-voice.
func (s *Scheduler) SetInstrument(inst contracts.Instrument) {
	s.StopAll()
	s.instrument = inst
	s.profile = ProfileFor(inst)
}

// SetMasterVolume updates the master gain multiplier for future onsets.
func (s *Scheduler) SetMasterVolume(v float64) {
	s.master = musicutil.Clamp(v, 0, 1)
}

// SetSynthesizer swaps the backend, used when the engine degrades to
// audio-disabled mode.
func (s *Scheduler) SetSynthesizer(synth contracts.Synthesizer) {
	s.synth = synth
}

// Instrument returns the active instrument.
func (s *Scheduler) Instrument() contracts.Instrument {
	return s.instrument
}
