package engine

import (
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/logger"
	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// applyDefaultOptions sets default values for EngineOptions if not explicitly
// provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify EngineOptions.
//
// Returns:
//   - contracts.EngineOptions: A structure containing the finalized options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.EngineOptions, error) {
	options := &contracts.EngineOptions{MasterVolume: defaultMasterVolume}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Instrument == "" {
		options.Instrument = contracts.InstrumentPiano
	}
	if options.Scale == "" {
		options.Scale = contracts.ScalePentatonic
	}
	if options.HarmonyMode == "" {
		options.HarmonyMode = contracts.HarmonyNone
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	options.MasterVolume = musicutil.Clamp(options.MasterVolume, 0, 1)
	options.BackgroundVolume = musicutil.Clamp(options.BackgroundVolume, 0, 1)

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}

const defaultMasterVolume = 0.7
