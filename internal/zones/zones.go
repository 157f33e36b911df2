// Package zones partitions the viewport into pitch-tagged rectangles.
package zones

import (
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

const (
	// Octave bands, one per row. The top row carries the highest octave so
	// that raising a hand raises the pitch.
	highOctave = 7
	lowOctave  = 3
	numOctaves = highOctave - lowOctave + 1

	// Zone geometry is expressed in percent-of-viewport units.
	viewportSpan = 100.0
)

// PitchZone is one rectangle of the viewport grid, tagged with the MIDI pitch
// it triggers. Zones never overlap and together tile the viewport.
type PitchZone struct {
	X      float64 // left edge, percent
	Y      float64 // top edge, percent
	Width  float64
	Height float64
	Pitch  int
	Octave int
	Degree int // scale-degree column index
}

// contains reports whether the point lies inside the zone. The left/top edges
// are inclusive, right/bottom exclusive, so shared edges resolve uniquely.
func (z PitchZone) contains(x, y float64) bool {
	return x >= z.X && x < z.X+z.Width && y >= z.Y && y < z.Y+z.Height
}

// Table is the full zone set for one scale. It is rebuilt whenever the active
// scale changes and queried once per extended fingertip per frame.
type Table struct {
	scale contracts.Scale
	zones []PitchZone
}

// Build regenerates the zone grid for the given scale: numOctaves rows, one
// scale-degree column per scale offset, each tagged octave*12 + offset + 12.
func Build(scale contracts.Scale) *Table {
	cols := len(scale.Offsets)
	rowHeight := viewportSpan / float64(numOctaves)
	colWidth := viewportSpan / float64(cols)

	zones := make([]PitchZone, 0, numOctaves*cols)
	for row := 0; row < numOctaves; row++ {
		octave := highOctave - row
		for col, offset := range scale.Offsets {
			zones = append(zones, PitchZone{
				X:      float64(col) * colWidth,
				Y:      float64(row) * rowHeight,
				Width:  colWidth,
				Height: rowHeight,
				Pitch:  octave*12 + offset + 12,
				Octave: octave,
				Degree: col,
			})
		}
	}
	return &Table{scale: scale, zones: zones}
}

// Lookup resolves a point in percent-of-viewport units to its zone. The zone
// count is small (at most numOctaves * 12), so a linear scan is sufficient.
func (t *Table) Lookup(x, y float64) (PitchZone, bool) {
	for _, z := range t.zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return PitchZone{}, false
}

// Zones returns the zone set, primarily for overlay rendering by callers.
func (t *Table) Zones() []PitchZone {
	out := make([]PitchZone, len(t.zones))
	copy(out, t.zones)
	return out
}

// Scale returns the scale the table was built for.
func (t *Table) Scale() contracts.Scale {
	return t.scale
}
