package harmony

import (
	"errors"
	"fmt"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// ErrUnknownScale is returned when a scale name has no offset table.
var ErrUnknownScale = errors.New("unknown scale")

// scaleOffsets are the pitch-class offset tables for the built-in scales.
var scaleOffsets = map[contracts.ScaleName][]int{
	contracts.ScalePentatonic: {0, 2, 4, 7, 9},
	contracts.ScaleMajor:      {0, 2, 4, 5, 7, 9, 11},
	contracts.ScaleMinor:      {0, 2, 3, 5, 7, 8, 10},
	contracts.ScaleBlues:      {0, 3, 5, 6, 7, 10},
	contracts.ScaleDorian:     {0, 2, 3, 5, 7, 9, 10},
	contracts.ScaleChromatic:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// ScaleByName resolves a scale name to its offset set.
func ScaleByName(name contracts.ScaleName) (contracts.Scale, error) {
	offsets, ok := scaleOffsets[name]
	if !ok {
		return contracts.Scale{}, fmt.Errorf("%w: %s", ErrUnknownScale, name)
	}
	out := make([]int, len(offsets))
	copy(out, offsets)
	return contracts.Scale{Name: name, Offsets: out}, nil
}

// ScaleNames lists the supported scale names.
func ScaleNames() []contracts.ScaleName {
	names := make([]contracts.ScaleName, 0, len(scaleOffsets))
	for name := range scaleOffsets {
		names = append(names, name)
	}
	return names
}
