package scale

import (
	"github.com/jsphweid/theorydex/interval"
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/util"
)

type Type uint8

const (
	Diatonic Type = iota
	HarmonicMinor
	MelodicMinor
	PentatonicMajor
	PentatonicMinor
	Blues
	Chromatic
	WholeTone
)

var typeNames = [...]string{
	Diatonic:        "Diatonic",
	HarmonicMinor:   "Harmonic Minor",
	MelodicMinor:    "Melodic Minor",
	PentatonicMajor: "Pentatonic Major",
	PentatonicMinor: "Pentatonic Minor",
	Blues:           "Blues",
	Chromatic:       "Chromatic",
	WholeTone:       "Whole Tone",
}

func (t Type) String() string {
	return typeNames[t]
}

var stacks = map[Type][]uint8{
	Diatonic:        {2, 2, 1, 2, 2, 2, 1},
	HarmonicMinor:   {2, 1, 2, 2, 1, 3, 1},
	MelodicMinor:    {2, 1, 2, 2, 2, 2, 1},
	PentatonicMajor: {2, 2, 3, 2, 3},
	PentatonicMinor: {3, 2, 2, 3, 2},
	Blues:           {3, 2, 1, 1, 3, 2},
	Chromatic:       {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	WholeTone:       {2, 2, 2, 2, 2, 2},
}

func Intervals(t Type) []interval.Interval {
	return interval.MustFromSemitones(stacks[t]...)
}

// TypeOf picks the base stack a mode is cut from. The church modes are all
// rotations of the diatonic stack.
func TypeOf(m mode.Mode) Type {
	switch m {
	case mode.HarmonicMinor:
		return HarmonicMinor
	case mode.MelodicMinor:
		return MelodicMinor
	case mode.PentatonicMajor:
		return PentatonicMajor
	case mode.PentatonicMinor:
		return PentatonicMinor
	case mode.Blues:
		return Blues
	case mode.Chromatic:
		return Chromatic
	case mode.WholeTone:
		return WholeTone
	}
	return Diatonic
}

// rotations to the left; negative turns right
var rotations = map[mode.Mode]int{
	mode.Dorian:     1,
	mode.Phrygian:   2,
	mode.Lydian:     3,
	mode.Mixolydian: 4,
	mode.Aeolian:    -2,
	mode.Locrian:    -1,
}

// Rotate applies a church mode to a seven step stack. Other stacks and
// modes come back unchanged.
func Rotate(intervals []interval.Interval, m mode.Mode) []interval.Interval {
	if len(intervals) != 7 {
		return intervals
	}
	return util.RotateLeft(intervals, rotations[m])
}
