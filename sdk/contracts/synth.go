package contracts

import "time"

// Waveform is the oscillator shape a tone generator is configured with.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// EffectTopology identifies the fixed filter/modulation stage applied to a
// tone. Backends that cannot realize a topology may ignore it.
type EffectTopology string

const (
	EffectNone     EffectTopology = "none"
	EffectLowpass  EffectTopology = "lowpass"
	EffectHighpass EffectTopology = "highpass"
	EffectVibrato  EffectTopology = "vibrato"
	EffectDelay    EffectTopology = "delay"
)

// ToneSpec describes a tone generator to be started by a synthesis backend.
// Gain is the initial gain; the voice scheduler drives the envelope through
// subsequent SetGain calls.
type ToneSpec struct {
	Frequency float64
	Pitch     int
	Velocity  float64 // normalized [0,1]; MIDI-style backends map this to key velocity
	Waveform  Waveform
	Effect    EffectTopology
	Gain      float64
}

// ToneHandle identifies a started tone generator within a backend.
type ToneHandle int

// Synthesizer is the abstract synthesis backend the engine issues commands to.
// Implementations must tolerate StopTone on a generator that has already
// stopped naturally; that is not an error.
type Synthesizer interface {
	// Start initializes the backend. A failure puts the engine into
	// audio-disabled mode rather than aborting the session.
	Start() error
	// StartTone instantiates and starts a tone generator.
	StartTone(spec ToneSpec) (ToneHandle, error)
	// SetGain ramps the generator's gain linearly to the target over ramp.
	SetGain(h ToneHandle, gain float64, ramp time.Duration) error
	// StopTone stops and releases a tone generator.
	StopTone(h ToneHandle) error
	// Stop releases the backend and all remaining generators.
	Stop() error
}
