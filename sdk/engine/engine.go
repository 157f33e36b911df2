// Package engine turns per-frame hand observations into a musical
// performance: classified gestures trigger scale-quantized pitches, the
// harmony generator elaborates them, and the voice scheduler drives the
// synthesis backend while the event log records the session.
package engine

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/eventlog"
	"github.com/ankitxrishav/HandGesture-Music/internal/export"
	"github.com/ankitxrishav/HandGesture-Music/internal/gesture"
	"github.com/ankitxrishav/HandGesture-Music/internal/harmony"
	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/internal/pattern"
	"github.com/ankitxrishav/HandGesture-Music/internal/synth"
	"github.com/ankitxrishav/HandGesture-Music/internal/voice"
	"github.com/ankitxrishav/HandGesture-Music/internal/zones"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// Engine is one performance session. All music state (pattern model, zone
// table, active voices, event log) is owned here and touched only through the
// frame callback and the configuration methods.
type Engine struct {
	mu     sync.Mutex
	logger contracts.Logger
	clock  func() time.Time

	synth        contracts.Synthesizer
	audioEnabled bool

	scale      contracts.Scale
	mode       contracts.HarmonyMode
	background float64

	zones *zones.Table
	model *pattern.Model
	sched *voice.Scheduler
	log   *eventlog.Log

	// companions maps a sounding root pitch to the harmony pitches generated
	// with it, so reconciliation keeps companions alive while the root is.
	companions map[int][]int
	sustain    bool
}

// NewEngine creates an engine with the specified options. A synthesis backend
// that fails to initialize puts the engine into audio-disabled mode: gestures,
// zones and the event log keep working, backend commands become no-ops.
//
// opts ...contracts.Option: A variadic list of option functions to customize the engine configuration.
//
// Returns:
//   - *Engine: the configured engine.
//   - error: An error, if any occurred during the creation of the engine.
func NewEngine(opts ...contracts.Option) (*Engine, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	scale, err := harmony.ScaleByName(options.Scale)
	if err != nil {
		return nil, err
	}

	backend := options.Synthesizer
	audioEnabled := true
	if backend == nil {
		backend, err = synth.NewSynthesizer(options.Logger)
		if err != nil {
			options.Logger.Warn("no synthesis backend; running audio-disabled",
				options.Logger.Field().Error("error", err))
			backend = synth.NewNull()
			audioEnabled = false
		}
	}
	if audioEnabled {
		if err := backend.Start(); err != nil {
			options.Logger.Warn("audio backend failed to start; running audio-disabled",
				options.Logger.Field().Error("error", err))
			backend = synth.NewNull()
			audioEnabled = false
		}
	}

	now := options.Clock()
	log := eventlog.New(now)
	e := &Engine{
		logger:       options.Logger,
		clock:        options.Clock,
		synth:        backend,
		audioEnabled: audioEnabled,
		scale:        scale,
		mode:         options.HarmonyMode,
		background:   options.BackgroundVolume,
		zones:        zones.Build(scale),
		model:        pattern.New(),
		sched:        voice.New(backend, log, options.Logger, options.Clock, options.Instrument, options.MasterVolume),
		log:          log,
		companions:   make(map[int][]int),
	}
	e.logger.Info("engine ready",
		e.logger.Field().String("scale", string(scale.Name)),
		e.logger.Field().String("instrument", string(options.Instrument)),
		e.logger.Field().Bool("audio", audioEnabled))
	return e, nil
}

// ProcessFrame consumes one frame of hand observations. Missing or empty hand
// data means "no hands": every voice is stopped and no error is raised.
func (e *Engine) ProcessFrame(hands []contracts.HandObservation) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	e.sched.Advance(now)

	if len(hands) == 0 {
		e.sustain = false
		e.releaseAll()
		return
	}

	triggers, fist, open := e.resolveTriggers(hands)
	if fist {
		e.sustain = false
		e.releaseAll()
		return
	}
	e.sustain = open

	// Deterministic trigger order regardless of map iteration.
	pitches := make([]int, 0, len(triggers))
	for pitch := range triggers {
		pitches = append(pitches, pitch)
	}
	sort.Ints(pitches)

	for _, root := range pitches {
		if e.sched.Has(root) {
			continue
		}
		velocity := triggers[root]
		notes := harmony.Expand(root, velocity, e.scale, e.mode, e.model)
		var comps []int
		for _, note := range notes {
			e.sched.NoteOn(note)
			if note.Pitch != root {
				comps = append(comps, note.Pitch)
			}
		}
		e.companions[root] = comps
		e.model.Observe(root, velocity, now)
	}

	if !e.sustain {
		e.reconcile(triggers)
	}
}

// resolveTriggers maps every extended fingertip of every hand to a candidate
// pitch. Fingertips outside every zone are silently ignored.
func (e *Engine) resolveTriggers(hands []contracts.HandObservation) (map[int]float64, bool, bool) {
	triggers := make(map[int]float64)
	var fist, open bool

	for _, hand := range hands {
		g := gesture.Classify(hand)
		switch g.Kind {
		case contracts.GestureFist:
			fist = true
			continue
		case contracts.GestureOpenHand:
			open = true
		}

		for finger := 0; finger < contracts.NumFingers; finger++ {
			if !g.Fingers[finger] {
				continue
			}
			tip := hand.Points[gesture.FingertipIndex(finger)]
			zone, ok := e.zones.Lookup(tip.X*100, tip.Y*100)
			if !ok {
				continue
			}
			v := noteVelocity(tip.Y)
			if prev, seen := triggers[zone.Pitch]; !seen || v > prev {
				triggers[zone.Pitch] = v
			}
		}
	}
	return triggers, fist, open
}

// reconcile releases every sounding pitch that is neither triggered this
// frame nor a companion of a triggered root.
func (e *Engine) reconcile(triggers map[int]float64) {
	active := make(map[int]bool, len(triggers))
	for root := range triggers {
		active[root] = true
		for _, c := range e.companions[root] {
			active[c] = true
		}
	}
	e.sched.Reconcile(active)
	for root := range e.companions {
		if _, ok := triggers[root]; !ok {
			delete(e.companions, root)
		}
	}
}

func (e *Engine) releaseAll() {
	e.sched.StopAll()
	e.companions = make(map[int][]int)
}

// noteVelocity derives a normalized velocity from the fingertip height:
// higher on screen plays louder.
func noteVelocity(y float64) float64 {
	return musicutil.Clamp(1.0-0.7*y, 0.2, 1.0)
}

// Tick advances the audio clock, firing due scheduled actions (delayed
// harmony onsets, envelope transitions, post-release stops). Frame processing
// advances it as well; Tick lets the audio driver run between frames.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.Advance(e.clock())
}

// SetScale switches the active scale. The zone grid is rebuilt and the
// pattern model reset: a fresh scale is a fresh vocabulary.
func (e *Engine) SetScale(name contracts.ScaleName) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	scale, err := harmony.ScaleByName(name)
	if err != nil {
		return err
	}
	e.scale = scale
	e.zones = zones.Build(scale)
	e.model.Reset()
	e.logger.Info("scale changed", e.logger.Field().String("scale", string(name)))
	return nil
}

// SetInstrument swaps the instrument profile, stopping all voices first.
func (e *Engine) SetInstrument(inst contracts.Instrument) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.SetInstrument(inst)
	e.companions = make(map[int][]int)
	e.logger.Info("instrument changed", e.logger.Field().String("instrument", string(inst)))
}

// SetHarmonyMode switches the harmonic elaboration mode.
func (e *Engine) SetHarmonyMode(mode contracts.HarmonyMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
}

// SetMasterVolume updates the master gain multiplier for future onsets.
func (e *Engine) SetMasterVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.SetMasterVolume(v)
}

// SetBackgroundVolume stores the ambience layer gain. The ambience generator
// is an external collaborator and is not driven from here.
func (e *Engine) SetBackgroundVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.background = musicutil.Clamp(v, 0, 1)
}

// BackgroundVolume returns the stored ambience layer gain.
func (e *Engine) BackgroundVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.background
}

// StopAll releases every sounding voice and cancels pending delayed onsets.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sustain = false
	e.releaseAll()
}

// Restart begins a fresh session: all voices stopped, pattern history and the
// event log cleared, session clock re-based.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseAll()
	e.model.Reset()
	e.log.Reset(e.clock())
	e.logger.Info("session restarted")
}

// Stop releases the synthesis backend. The engine must not be used afterward.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseAll()
	return e.synth.Stop()
}

// Events returns a copy of the session's event log in append order.
func (e *Engine) Events() []contracts.MidiEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Events()
}

// ExportSMF writes the session's event log to w as a Standard MIDI File.
func (e *Engine) ExportSMF(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return export.Write(w, e.log.Events())
}

// Scale returns the active scale.
func (e *Engine) Scale() contracts.Scale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scale
}

// HarmonyMode returns the active harmony mode.
func (e *Engine) HarmonyMode() contracts.HarmonyMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Instrument returns the active instrument.
func (e *Engine) Instrument() contracts.Instrument {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Instrument()
}

// Sounding returns the currently sounding pitches in ascending order.
func (e *Engine) Sounding() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Sounding()
}

// PatternConfidence returns the pattern model's confidence score in [0,100].
func (e *Engine) PatternConfidence() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.model.Confidence()
}

// PatternHarmonyScore returns the model's consonance score in [0,100].
func (e *Engine) PatternHarmonyScore() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.model.HarmonyScore()
}

// AudioEnabled reports whether a synthesis backend is active.
func (e *Engine) AudioEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.audioEnabled
}
