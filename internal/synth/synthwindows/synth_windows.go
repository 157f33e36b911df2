//go:build windows
// +build windows

package synthwindows

import (
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIOUT is a winmm MIDI output device handle.
type HMIDIOUT windows.Handle

// MIDI_MAPPER selects the default system MIDI output device.
const MIDI_MAPPER = ^uintptr(0)

// Load the winmm.dll library and required functions.
var (
	winmm               = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutOpen     = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg = winmm.NewProc("midiOutShortMsg")
	procMidiOutReset    = winmm.NewProc("midiOutReset")
	procMidiOutClose    = winmm.NewProc("midiOutClose")
)

// ErrNotStarted is returned for tone commands before Start succeeds.
var ErrNotStarted = errors.New("synthesizer not started")

// Synth forwards tone commands to the default Windows MIDI output device.
// Envelope gain ramps have no per-note MIDI equivalent and are ignored;
// velocity carries the dynamics instead.
type Synth struct {
	logger  contracts.Logger
	handle  HMIDIOUT
	started bool

	next    contracts.ToneHandle
	pitches map[contracts.ToneHandle]uint8
}

// NewSynthesizer creates the winmm-backed synthesizer for Windows.
func NewSynthesizer(logger contracts.Logger) (contracts.Synthesizer, error) {
	logger.Info("winmm synthesizer backend created")
	return &Synth{
		logger:  logger,
		pitches: make(map[contracts.ToneHandle]uint8),
	}, nil
}

// Start opens the default MIDI output device.
func (s *Synth) Start() error {
	r1, _, err := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&s.handle)),
		MIDI_MAPPER,
		0, 0, 0,
	)
	if r1 != 0 {
		s.logger.Error(fmt.Sprintf("Failed to open MIDI output device: %v", err))
		return fmt.Errorf("failed to open MIDI output device: %v", err)
	}
	s.started = true
	s.logger.Info("MIDI output device opened")
	return nil
}

// StartTone sends a note-on short message.
func (s *Synth) StartTone(spec contracts.ToneSpec) (contracts.ToneHandle, error) {
	if !s.started {
		return 0, ErrNotStarted
	}
	pitch := uint8(musicutil.Clamp(spec.Pitch, 0, 127))
	velocity := musicutil.MidiVelocity(spec.Velocity)
	if err := s.send(0x90, pitch, velocity); err != nil {
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
	return s.send(0x80, pitch, 0)
}

// Stop resets and closes the output device.
func (s *Synth) Stop() error {
	if !s.started {
		return nil
	}
	procMidiOutReset.Call(uintptr(s.handle))
	r1, _, err := procMidiOutClose.Call(uintptr(s.handle))
	if r1 != 0 {
		s.logger.Error(fmt.Sprintf("Failed to close MIDI output device: %v", err))
		return fmt.Errorf("failed to close MIDI output device: %v", err)
	}
	s.started = false
	s.handle = 0
	s.pitches = make(map[contracts.ToneHandle]uint8)
	return nil
}

// send packs a 3-byte MIDI short message into the winmm DWORD layout.
func (s *Synth) send(status, data1, data2 uint8) error {
	msg := uintptr(status) | uintptr(data1)<<8 | uintptr(data2)<<16
	r1, _, err := procMidiOutShortMsg.Call(uintptr(s.handle), msg)
	if r1 != 0 {
		return fmt.Errorf("failed to send MIDI message: %v", err)
	}
	return nil
}
