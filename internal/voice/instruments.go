package voice

import (
	"time"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// Profile is the data-driven description of one instrument: oscillator shape,
// effect stage and attack-decay-sustain envelope constants. Sustain is a gain
// fraction of the triggering velocity.
type Profile struct {
	Waveform contracts.Waveform
	Effect   contracts.EffectTopology
	Attack   time.Duration
	Decay    time.Duration
	Sustain  float64
}

var profiles = map[contracts.Instrument]Profile{
	contracts.InstrumentPiano:  {contracts.WaveTriangle, contracts.EffectNone, 20 * time.Millisecond, 300 * time.Millisecond, 0.25},
	contracts.InstrumentGuitar: {contracts.WaveSawtooth, contracts.EffectLowpass, 10 * time.Millisecond, 250 * time.Millisecond, 0.20},
	contracts.InstrumentViolin: {contracts.WaveSawtooth, contracts.EffectVibrato, 100 * time.Millisecond, 200 * time.Millisecond, 0.30},
	contracts.InstrumentFlute:  {contracts.WaveSine, contracts.EffectHighpass, 80 * time.Millisecond, 150 * time.Millisecond, 0.28},
	contracts.InstrumentSynth:  {contracts.WaveSquare, contracts.EffectDelay, 10 * time.Millisecond, 100 * time.Millisecond, 0.22},
	contracts.InstrumentOrgan:  {contracts.WaveSine, contracts.EffectNone, 50 * time.Millisecond, 50 * time.Millisecond, 0.35},
	contracts.InstrumentHarp:   {contracts.WaveTriangle, contracts.EffectDelay, 10 * time.Millisecond, 400 * time.Millisecond, 0.12},
	contracts.InstrumentCello:  {contracts.WaveSawtooth, contracts.EffectVibrato, 120 * time.Millisecond, 250 * time.Millisecond, 0.30},
}

// ProfileFor resolves an instrument to its profile, falling back to piano for
// unrecognized names.
func ProfileFor(inst contracts.Instrument) Profile {
	if p, ok := profiles[inst]; ok {
		return p
	}
	return profiles[contracts.InstrumentPiano]
}
