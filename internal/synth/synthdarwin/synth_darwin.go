//go:build darwin
// +build darwin

package synthdarwin

import (
	"errors"
	"fmt"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI backend issues.
var (
	ErrNoDestinations = errors.New("no CoreMIDI destinations found")
	ErrNotStarted     = errors.New("synthesizer not started")
)

const clientName = "HandGesture Music"

// Synth forwards tone commands to the first CoreMIDI destination as note
// messages. Envelope gain ramps have no per-note MIDI equivalent and are
// ignored; velocity carries the dynamics instead.
type Synth struct {
	logger  contracts.Logger
	client  coremidi.Client
	port    coremidi.OutputPort
	dest    coremidi.Destination
	started bool

	next    contracts.ToneHandle
	pitches map[contracts.ToneHandle]uint8
}

// NewSynthesizer creates the CoreMIDI-backed synthesizer for macOS.
func NewSynthesizer(logger contracts.Logger) (contracts.Synthesizer, error) {
	client, err := coremidi.NewClient(clientName)
	if err != nil {
		return nil, fmt.Errorf("creating CoreMIDI client: %w", err)
	}
	logger.Info("CoreMIDI synthesizer backend created")
	return &Synth{
		logger:  logger,
		client:  client,
		pitches: make(map[contracts.ToneHandle]uint8),
	}, nil
}

// Start opens an output port and binds the first available destination.
func (s *Synth) Start() error {
	port, err := coremidi.NewOutputPort(s.client, clientName)
	if err != nil {
		return fmt.Errorf("creating output port: %w", err)
	}
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("listing destinations: %w", err)
	}
	if len(destinations) == 0 {
		s.logger.Warn(ErrNoDestinations.Error())
		return ErrNoDestinations
	}
	s.port = port
	s.dest = destinations[0]
	s.started = true
	s.logger.Info("CoreMIDI destination connected",
		s.logger.Field().String("destination", s.dest.Name()))
	return nil
}

// StartTone sends a note-on to the bound destination.
func (s *Synth) StartTone(spec contracts.ToneSpec) (contracts.ToneHandle, error) {
	if !s.started {
		return 0, ErrNotStarted
	}
	pitch := uint8(musicutil.Clamp(spec.Pitch, 0, 127))
	velocity := musicutil.MidiVelocity(spec.Velocity)
	if err := s.send([]byte{0x90, pitch, velocity}); err != nil {
		return 0, err
	}
	s.next++
	s.pitches[s.next] = pitch
	return s.next, nil
}

// SetGain has no per-note MIDI mapping; it is accepted and ignored.
func (s *Synth) SetGain(h contracts.ToneHandle, gain float64, ramp time.Duration) error {
	return nil
}

// StopTone sends the matching note-off. An unknown or already-stopped handle
// is tolerated.
func (s *Synth) StopTone(h contracts.ToneHandle) error {
	pitch, ok := s.pitches[h]
	if !ok {
		return nil
	}
	delete(s.pitches, h)
	return s.send([]byte{0x80, pitch, 0})
}

// Stop silences remaining notes and releases the port binding.
func (s *Synth) Stop() error {
	for h := range s.pitches {
		if err := s.StopTone(h); err != nil {
			s.logger.Warn("failed to stop tone during shutdown",
				s.logger.Field().Error("error", err))
		}
	}
	s.started = false
	return nil
}

func (s *Synth) send(data []byte) error {
	packet := coremidi.NewPacket(data, 0)
	if err := packet.Send(&s.port, &s.dest); err != nil {
		return fmt.Errorf("sending MIDI packet: %w", err)
	}
	return nil
}
