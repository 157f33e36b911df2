package contracts

import "time"

// EngineOptions defines the configuration options for the gesture-to-music
// engine. All fields have working defaults applied by the engine factory.
type EngineOptions struct {
	Logger           Logger           // Logger for engine events and errors.
	LogLevel         LogLevel         // Minimum level of logging to emit.
	Synthesizer      Synthesizer      // Synthesis backend; platform default when nil.
	Instrument       Instrument       // Active instrument profile.
	Scale            ScaleName        // Active musical scale.
	HarmonyMode      HarmonyMode      // Harmonic elaboration mode.
	MasterVolume     float64          // Master gain multiplier in [0,1].
	BackgroundVolume float64          // Ambience layer gain in [0,1] (stored only).
	Clock            func() time.Time // Time source; time.Now when nil.
}

// Option is a function that modifies EngineOptions.
type Option func(*EngineOptions)

// WithLogger sets the logger for the engine.
func WithLogger(l Logger) Option {
	return func(opts *EngineOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the engine.
func WithLogLevel(level LogLevel) Option {
	return func(opts *EngineOptions) {
		opts.LogLevel = level
	}
}

// WithSynthesizer sets the synthesis backend the engine drives.
func WithSynthesizer(s Synthesizer) Option {
	return func(opts *EngineOptions) {
		opts.Synthesizer = s
	}
}

// WithInstrument sets the initial instrument profile.
func WithInstrument(inst Instrument) Option {
	return func(opts *EngineOptions) {
		opts.Instrument = inst
	}
}

// WithScale sets the initial musical scale.
func WithScale(name ScaleName) Option {
	return func(opts *EngineOptions) {
		opts.Scale = name
	}
}

// WithHarmonyMode sets the initial harmony mode.
func WithHarmonyMode(mode HarmonyMode) Option {
	return func(opts *EngineOptions) {
		opts.HarmonyMode = mode
	}
}

// WithMasterVolume sets the master gain multiplier.
func WithMasterVolume(v float64) Option {
	return func(opts *EngineOptions) {
		opts.MasterVolume = v
	}
}

// WithBackgroundVolume sets the ambience layer gain. The ambience generator
// itself is an external collaborator; the engine only carries the setting.
func WithBackgroundVolume(v float64) Option {
	return func(opts *EngineOptions) {
		opts.BackgroundVolume = v
	}
}

// WithClock sets the time source used for session timestamps and scheduling.
func WithClock(clock func() time.Time) Option {
	return func(opts *EngineOptions) {
		opts.Clock = clock
	}
}
