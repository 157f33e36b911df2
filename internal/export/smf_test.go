package export

import (
	"bytes"
	"testing"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func sessionEvents() []contracts.MidiEvent {
	return []contracts.MidiEvent{
		{Kind: contracts.NoteOn, Pitch: 60, Velocity: 100, TimestampMs: 0},
		{Kind: contracts.NoteOn, Pitch: 64, Velocity: 80, TimestampMs: 250},
		{Kind: contracts.NoteOff, Pitch: 60, Velocity: 0, TimestampMs: 500},
		{Kind: contracts.NoteOff, Pitch: 64, Velocity: 0, TimestampMs: 750},
	}
}

type noteMsg struct {
	on       bool
	key      uint8
	velocity uint8
	absTicks uint64
}

func decode(t *testing.T, data []byte) []noteMsg {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var out []noteMsg
	var abs uint64
	for _, event := range s.Tracks[0] {
		abs += uint64(event.Delta)
		var channel, key, velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			out = append(out, noteMsg{on: true, key: key, velocity: velocity, absTicks: abs})
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			out = append(out, noteMsg{on: false, key: key, absTicks: abs})
		}
	}
	return out
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sessionEvents()))

	notes := decode(t, buf.Bytes())
	require.Len(t, notes, 4)

	assert.True(t, notes[0].on)
	assert.Equal(t, uint8(60), notes[0].key)
	assert.Equal(t, uint8(100), notes[0].velocity)
	assert.Equal(t, uint64(0), notes[0].absTicks)

	// 250 ms at 120 BPM with 960 ticks per quarter is half a beat.
	assert.Equal(t, uint64(480), notes[1].absTicks)
	assert.Equal(t, uint8(64), notes[1].key)

	assert.False(t, notes[2].on)
	assert.Equal(t, uint8(60), notes[2].key)
	assert.Equal(t, uint64(960), notes[2].absTicks)
	assert.Equal(t, uint64(1440), notes[3].absTicks)
}

func TestWriteEmptySession(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, decode(t, buf.Bytes()))
}

func TestToSMFRejectsUnknownKind(t *testing.T) {
	_, err := ToSMF([]contracts.MidiEvent{{Kind: 0x55, Pitch: 60}})
	assert.Error(t, err)
}
