// Package musicutil holds small numeric helpers shared by the engine packages.
package musicutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of a signed integer.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// PitchClass reduces a MIDI pitch to its pitch class (0-11).
func PitchClass(pitch int) int {
	pc := pitch % 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// Frequency resolves a MIDI pitch to Hz via equal temperament around A4=440.
func Frequency(pitch int) float64 {
	return 440.0 * math.Pow(2, float64(pitch-69)/12.0)
}

// MidiVelocity scales a normalized velocity in [0,1] to the MIDI range 0-127.
func MidiVelocity(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 127))
}
