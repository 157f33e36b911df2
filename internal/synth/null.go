package synth

import (
	"sync/atomic"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// Null is a silent synthesizer. It backs audio-disabled mode: gesture
// classification, zone mapping and the event log keep operating while every
// backend command becomes a no-op.
type Null struct {
	next int64
}

// NewNull creates a silent backend.
func NewNull() *Null {
	return &Null{}
}

func (n *Null) Start() error { return nil }

func (n *Null) StartTone(spec contracts.ToneSpec) (contracts.ToneHandle, error) {
	return contracts.ToneHandle(atomic.AddInt64(&n.next, 1)), nil
}

func (n *Null) SetGain(h contracts.ToneHandle, gain float64, ramp time.Duration) error {
	return nil
}

func (n *Null) StopTone(h contracts.ToneHandle) error { return nil }

func (n *Null) Stop() error { return nil }
