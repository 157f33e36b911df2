package zones

import (
	"testing"

	"github.com/ankitxrishav/HandGesture-Music/internal/harmony"
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pentatonic(t *testing.T) contracts.Scale {
	t.Helper()
	scale, err := harmony.ScaleByName(contracts.ScalePentatonic)
	require.NoError(t, err)
	return scale
}

func TestBuildGridShape(t *testing.T) {
	table := Build(pentatonic(t))
	zones := table.Zones()
	assert.Len(t, zones, numOctaves*5)

	// Top-left zone carries the highest octave's first degree.
	assert.Equal(t, highOctave, zones[0].Octave)
	assert.Equal(t, 0, zones[0].Degree)
	assert.Equal(t, highOctave*12+12, zones[0].Pitch)
}

func TestZonePitchTags(t *testing.T) {
	scale := pentatonic(t)
	table := Build(scale)
	for _, z := range table.Zones() {
		assert.Equal(t, z.Octave*12+scale.Offsets[z.Degree]+12, z.Pitch)
		assert.GreaterOrEqual(t, z.Octave, lowOctave)
		assert.LessOrEqual(t, z.Octave, highOctave)
	}
}

func TestZonesTileWithoutOverlap(t *testing.T) {
	table := Build(pentatonic(t))
	// Sample a fine grid; every in-bounds point must fall in exactly one zone.
	for xi := 0; xi < 20; xi++ {
		for yi := 0; yi < 20; yi++ {
			x := float64(xi) * 5.0
			y := float64(yi) * 5.0
			var hits int
			for _, z := range table.Zones() {
				if z.contains(x, y) {
					hits++
				}
			}
			assert.Equal(t, 1, hits, "point (%v,%v)", x, y)
		}
	}
}

func TestLookupTopAndBottom(t *testing.T) {
	table := Build(pentatonic(t))

	top, ok := table.Lookup(0, 0)
	require.True(t, ok)
	assert.Equal(t, 96, top.Pitch) // octave 7, degree 0

	bottom, ok := table.Lookup(99.9, 99.9)
	require.True(t, ok)
	assert.Equal(t, lowOctave, bottom.Octave)
	assert.Equal(t, 57, bottom.Pitch) // octave 3, offset 9
}

func TestLookupOutOfBounds(t *testing.T) {
	table := Build(pentatonic(t))
	for _, pt := range [][2]float64{{-1, 50}, {50, -1}, {100, 50}, {50, 100}} {
		_, ok := table.Lookup(pt[0], pt[1])
		assert.False(t, ok, "point %v", pt)
	}
}

func TestHigherRowMeansHigherPitch(t *testing.T) {
	table := Build(pentatonic(t))
	upper, ok := table.Lookup(10, 10)
	assert.True(t, ok)
	lower, ok := table.Lookup(10, 90)
	assert.True(t, ok)
	assert.Greater(t, upper.Pitch, lower.Pitch)
}

func TestRebuildForScale(t *testing.T) {
	major, err := harmony.ScaleByName(contracts.ScaleMajor)
	assert.NoError(t, err)
	table := Build(major)
	assert.Len(t, table.Zones(), numOctaves*7)
	assert.Equal(t, contracts.ScaleMajor, table.Scale().Name)
}
