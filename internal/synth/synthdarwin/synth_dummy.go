//go:build !darwin
// +build !darwin

package synthdarwin

import (
	"fmt"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

type dummySynth struct {
	logger contracts.Logger
}

// NewSynthesizer initializes a dummy backend for non-macOS systems.
func NewSynthesizer(logger contracts.Logger) (contracts.Synthesizer, error) {
	logger.Info("Using dummy synthesizer backend for non-macOS system")
	return &dummySynth{logger: logger}, nil
}

func (d *dummySynth) Start() error {
	d.logger.Warn("Start called on dummy synthesizer backend")
	return fmt.Errorf("synthesis is not available on this platform")
}

func (d *dummySynth) StartTone(spec contracts.ToneSpec) (contracts.ToneHandle, error) {
	d.logger.Warn("StartTone called on dummy synthesizer backend")
	return 0, fmt.Errorf("synthesis is not available on this platform")
}

func (d *dummySynth) SetGain(h contracts.ToneHandle, gain float64, ramp time.Duration) error {
	return nil
}

func (d *dummySynth) StopTone(h contracts.ToneHandle) error {
	return nil
}

func (d *dummySynth) Stop() error {
	return nil
}
