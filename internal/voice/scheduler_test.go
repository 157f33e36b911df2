package voice

import (
	"testing"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/eventlog"
	"github.com/ankitxrishav/HandGesture-Music/internal/logger"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gainCall struct {
	handle contracts.ToneHandle
	gain   float64
	ramp   time.Duration
}

// fakeSynth records every backend call for assertions.
type fakeSynth struct {
	next    contracts.ToneHandle
	started []contracts.ToneSpec
	gains   []gainCall
	stopped []contracts.ToneHandle
}

func (f *fakeSynth) Start() error { return nil }

func (f *fakeSynth) StartTone(spec contracts.ToneSpec) (contracts.ToneHandle, error) {
	f.next++
	f.started = append(f.started, spec)
	return f.next, nil
}

func (f *fakeSynth) SetGain(h contracts.ToneHandle, gain float64, ramp time.Duration) error {
	f.gains = append(f.gains, gainCall{handle: h, gain: gain, ramp: ramp})
	return nil
}

func (f *fakeSynth) StopTone(h contracts.ToneHandle) error {
	f.stopped = append(f.stopped, h)
	return nil
}

func (f *fakeSynth) Stop() error { return nil }

type fixture struct {
	synth *fakeSynth
	log   *eventlog.Log
	sched *Scheduler
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{synth: &fakeSynth{}, now: time.Unix(1000, 0)}
	f.log = eventlog.New(f.now)
	f.sched = New(f.synth, f.log, logger.NewNop(), func() time.Time { return f.now }, contracts.InstrumentPiano, 1.0)
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
	f.sched.Advance(f.now)
}

func TestNoteOnStartsEnvelope(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 69, Velocity: 1.0})

	require.Len(t, f.synth.started, 1)
	spec := f.synth.started[0]
	assert.InDelta(t, 440.0, spec.Frequency, 1e-9)
	assert.Equal(t, 69, spec.Pitch)
	assert.Zero(t, spec.Gain, "generators start silent")

	// Attack ramp to the peak fraction of velocity.
	require.Len(t, f.synth.gains, 1)
	assert.InDelta(t, 0.4, f.synth.gains[0].gain, 1e-9)
	assert.Equal(t, 20*time.Millisecond, f.synth.gains[0].ramp)

	assert.True(t, f.sched.Has(69))
	assert.Equal(t, 1, f.log.Len())
}

func TestEqualTemperamentFrequencies(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 0.5})
	require.Len(t, f.synth.started, 1)
	assert.InDelta(t, 261.626, f.synth.started[0].Frequency, 0.001)
}

func TestDecayTransitionFiresAfterAttack(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 1.0})
	require.Len(t, f.synth.gains, 1)

	// Piano attack is 20ms; the decay transition fires once it elapses.
	f.advance(10 * time.Millisecond)
	assert.Len(t, f.synth.gains, 1)

	f.advance(15 * time.Millisecond)
	require.Len(t, f.synth.gains, 2)
	assert.InDelta(t, 0.25, f.synth.gains[1].gain, 1e-9) // piano sustain fraction
	assert.Equal(t, 300*time.Millisecond, f.synth.gains[1].ramp)
}

func TestAtMostOneVoicePerPitch(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 0.8})
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 0.8})
	assert.Len(t, f.synth.started, 1)
	assert.Equal(t, 1, f.log.Len())
}

func TestPitchRangeEnforced(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: -1, Velocity: 0.8})
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 128, Velocity: 0.8})
	assert.Empty(t, f.synth.started)
	assert.Zero(t, f.log.Len())
}

func TestNoteOffFadesThenStops(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 1.0})
	handle := f.synth.next

	f.sched.NoteOff(60)
	assert.False(t, f.sched.Has(60))
	last := f.synth.gains[len(f.synth.gains)-1]
	assert.Zero(t, last.gain)
	assert.Equal(t, 200*time.Millisecond, last.ramp)
	assert.Empty(t, f.synth.stopped, "generator lives through the release fade")

	f.advance(250 * time.Millisecond)
	assert.Equal(t, []contracts.ToneHandle{handle}, f.synth.stopped)
	assert.Equal(t, 2, f.log.Len())
}

func TestReleaseInsideAttackWindowStaysSilent(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 1.0})

	// Release before the 20ms piano attack completes, then run the clock past
	// the attack instant: the pending decay transition must not ramp the gain
	// back up over the release fade.
	f.advance(5 * time.Millisecond)
	f.sched.NoteOff(60)
	f.advance(20 * time.Millisecond)

	require.Len(t, f.synth.gains, 2)
	last := f.synth.gains[len(f.synth.gains)-1]
	assert.Zero(t, last.gain)
	assert.Equal(t, 200*time.Millisecond, last.ramp)
}

func TestNoteOffUnknownPitchIsNoop(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOff(60)
	assert.Empty(t, f.synth.gains)
	assert.Zero(t, f.log.Len())
}

func TestDelayedOnset(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 64, Velocity: 0.7, Delay: 50 * time.Millisecond})
	assert.False(t, f.sched.Has(64))
	assert.Empty(t, f.synth.started)

	f.advance(60 * time.Millisecond)
	assert.True(t, f.sched.Has(64))
	assert.Len(t, f.synth.started, 1)
}

func TestStopAllCancelsPendingOnsets(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 1.0})
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 64, Velocity: 0.7, Delay: 50 * time.Millisecond})

	f.sched.StopAll()
	assert.Empty(t, f.sched.Sounding())

	// The delayed companion must never sound after the stop.
	f.advance(time.Second)
	assert.Len(t, f.synth.started, 1)
	assert.False(t, f.sched.Has(64))
}

func TestReconcileReleasesMissingPitches(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 0.8})
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 64, Velocity: 0.8})
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 67, Velocity: 0.8})

	f.sched.Reconcile(map[int]bool{64: true})
	assert.Equal(t, []int{64}, f.sched.Sounding())
}

func TestMasterVolumeScalesGains(t *testing.T) {
	f := newFixture(t)
	f.sched.SetMasterVolume(0.5)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 1.0})
	require.Len(t, f.synth.gains, 1)
	assert.InDelta(t, 0.2, f.synth.gains[0].gain, 1e-9)
}

func TestSetInstrumentStopsVoices(t *testing.T) {
	f := newFixture(t)
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 60, Velocity: 0.8})
	f.sched.SetInstrument(contracts.InstrumentViolin)
	assert.Empty(t, f.sched.Sounding())
	assert.Equal(t, contracts.InstrumentViolin, f.sched.Instrument())

	// New voices use the violin envelope.
	f.sched.NoteOn(contracts.NoteEvent{Pitch: 72, Velocity: 1.0})
	last := f.synth.gains[len(f.synth.gains)-1]
	assert.Equal(t, 100*time.Millisecond, last.ramp)
}

func TestSoundingIsSorted(t *testing.T) {
	f := newFixture(t)
	for _, p := range []int{72, 60, 67} {
		f.sched.NoteOn(contracts.NoteEvent{Pitch: p, Velocity: 0.8})
	}
	assert.Equal(t, []int{60, 67, 72}, f.sched.Sounding())
}

func TestProfileFallsBackToPiano(t *testing.T) {
	p := ProfileFor(contracts.Instrument("theremin"))
	assert.Equal(t, ProfileFor(contracts.InstrumentPiano), p)
}
