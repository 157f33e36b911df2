// Package harmony expands a triggered root pitch into companion note events
// according to the active harmony mode and scale.
package harmony

import (
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
	"github.com/ankitxrishav/HandGesture-Music/internal/pattern"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

const (
	chordThirdDelay = 50 * time.Millisecond
	chordFifthDelay = 100 * time.Millisecond
	arpeggioStep    = 150 * time.Millisecond
	biasDelay       = 80 * time.Millisecond
)

// Expand produces the full note set for one triggered root. The root itself is
// always first, at zero delay. Companion notes depend on the harmony mode;
// the counterpoint mode additionally consults the pattern model's bias.
func Expand(root int, velocity float64, scale contracts.Scale, mode contracts.HarmonyMode, model *pattern.Model) []contracts.NoteEvent {
	notes := []contracts.NoteEvent{{Pitch: root, Velocity: velocity, Delay: 0}}

	switch mode {
	case contracts.HarmonyChords:
		notes = append(notes, chordTones(root, velocity, scale)...)
	case contracts.HarmonyArpeggios:
		notes = append(notes, arpeggioRun(root, velocity, scale)...)
	case contracts.HarmonyCounterpoint:
		if model != nil {
			if bias, ok := model.CounterpointSuggestion(root); ok {
				notes = append(notes, contracts.NoteEvent{
					Pitch:    QuantizeToScale(bias, scale),
					Velocity: velocity * 0.5,
					Delay:    biasDelay,
				})
			}
		}
	}
	return notes
}

// chordTones adds a third and a fifth above the root, two and four scale
// degrees up. Degree arithmetic wraps modulo the scale length, so triads stay
// in-scale and vary in size across scales.
func chordTones(root int, velocity float64, scale contracts.Scale) []contracts.NoteEvent {
	i := scale.DegreeOf(musicutil.PitchClass(root))
	if i < 0 {
		return nil
	}
	n := len(scale.Offsets)
	third := root + scale.Offsets[(i+2)%n] - scale.Offsets[i]
	fifth := root + scale.Offsets[(i+4)%n] - scale.Offsets[i]
	return []contracts.NoteEvent{
		{Pitch: third, Velocity: velocity * 0.7, Delay: chordThirdDelay},
		{Pitch: fifth, Velocity: velocity * 0.6, Delay: chordFifthDelay},
	}
}

// arpeggioRun adds a rising three-note run of decreasing intensity, stepping
// two scale degrees at a time from the root.
func arpeggioRun(root int, velocity float64, scale contracts.Scale) []contracts.NoteEvent {
	i := scale.DegreeOf(musicutil.PitchClass(root))
	if i < 0 {
		return nil
	}
	n := len(scale.Offsets)
	notes := make([]contracts.NoteEvent, 0, 3)
	for k := 1; k <= 3; k++ {
		pitch := root + scale.Offsets[(i+2*k)%n] - scale.Offsets[i]
		notes = append(notes, contracts.NoteEvent{
			Pitch:    pitch,
			Velocity: velocity * (0.8 - 0.1*float64(k)),
			Delay:    time.Duration(k) * arpeggioStep,
		})
	}
	return notes
}

// QuantizeToScale snaps a pitch to the active scale: the pitch class is
// replaced by the closest scale offset (first-encountered minimum wins) while
// the octave is preserved. The operation is idempotent.
func QuantizeToScale(pitch int, scale contracts.Scale) int {
	if len(scale.Offsets) == 0 {
		return pitch
	}
	octave := pitch / 12
	class := pitch % 12
	if class < 0 {
		class += 12
		octave--
	}

	best := scale.Offsets[0]
	bestDist := musicutil.Abs(class - best)
	for _, off := range scale.Offsets[1:] {
		if d := musicutil.Abs(class - off); d < bestDist {
			best = off
			bestDist = d
		}
	}
	return octave*12 + best
}
