// Package synth selects a synthesis backend for the current platform. On
// macOS and Windows the backend forwards tone commands as MIDI note messages
// to the system MIDI output; everywhere else a silent backend is used.
package synth

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ankitxrishav/HandGesture-Music/internal/synth/synthdarwin"
	"github.com/ankitxrishav/HandGesture-Music/internal/synth/synthwindows"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// ErrUnsupportedOS is returned when no synthesis backend exists for the
// operating system. The engine degrades to audio-disabled mode in that case.
var ErrUnsupportedOS = errors.New("no synthesis backend for operating system")

// backendInitializers maps OS names to corresponding backend initializers.
var backendInitializers = map[string]func(contracts.Logger) (contracts.Synthesizer, error){
	"darwin":  synthdarwin.NewSynthesizer,
	"windows": synthwindows.NewSynthesizer,
}

// NewSynthesizer initializes a synthesis backend based on the current
// operating system.
func NewSynthesizer(logger contracts.Logger) (contracts.Synthesizer, error) {
	if initializer, exists := backendInitializers[runtime.GOOS]; exists {
		return initializer(logger)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
