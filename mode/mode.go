package mode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/theorydex/token"
)

var ErrModeParse = errors.New("could not parse mode")

type Mode uint8

// None is the zero value: no modal context.
const (
	None Mode = iota
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
	PentatonicMajor
	PentatonicMinor
	Blues
	Chromatic
	WholeTone
)

var All = []Mode{
	Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
	HarmonicMinor, MelodicMinor, PentatonicMajor, PentatonicMinor,
	Blues, Chromatic, WholeTone,
}

var names = map[Mode]string{
	None:            "",
	Ionian:          "Ionian",
	Dorian:          "Dorian",
	Phrygian:        "Phrygian",
	Lydian:          "Lydian",
	Mixolydian:      "Mixolydian",
	Aeolian:         "Aeolian",
	Locrian:         "Locrian",
	HarmonicMinor:   "Harmonic Minor",
	MelodicMinor:    "Melodic Minor",
	PentatonicMajor: "Pentatonic Major",
	PentatonicMinor: "Pentatonic Minor",
	Blues:           "Blues",
	Chromatic:       "Chromatic",
	WholeTone:       "Whole Tone",
}

func (m Mode) String() string {
	return names[m]
}

// Degree is the position of the mode's tonic inside its relative major
// scale, counted from 0, and Offset the semitone distance from the relative
// major's tonic up to it. Minor flavoured modes share aeolian's numbers.
func (m Mode) Degree() int {
	switch m {
	case Dorian:
		return 1
	case Phrygian:
		return 2
	case Lydian:
		return 3
	case Mixolydian:
		return 4
	case Aeolian, HarmonicMinor, MelodicMinor, PentatonicMinor, Blues:
		return 5
	case Locrian:
		return 6
	}
	return 0
}

func (m Mode) Offset() int {
	switch m {
	case Dorian:
		return 2
	case Phrygian:
		return 4
	case Lydian:
		return 5
	case Mixolydian:
		return 7
	case Aeolian, HarmonicMinor, MelodicMinor, PentatonicMinor, Blues:
		return 9
	case Locrian:
		return 11
	}
	return 0
}

type rule = token.Rule[Mode]

var recognizer = token.NewRecognizer(
	rule{Patterns: []string{"M"}, Tag: Ionian, CaseSensitive: true, Bounded: true},
	rule{Patterns: []string{"harmonic minor", "harmonicminor", "har minor"}, Tag: HarmonicMinor},
	rule{Patterns: []string{"melodic minor", "melodicminor", "mel minor"}, Tag: MelodicMinor},
	rule{Patterns: []string{"pentatonic major", "pent maj", "major pentatonic"}, Tag: PentatonicMajor},
	rule{Patterns: []string{"pentatonic minor", "pent min", "minor pentatonic"}, Tag: PentatonicMinor},
	rule{Patterns: []string{"pentatonic"}, Tag: PentatonicMajor},
	rule{Patterns: []string{"major", "maj", "ionian"}, Tag: Ionian},
	rule{Patterns: []string{"m"}, Tag: Aeolian, CaseSensitive: true, Bounded: true},
	rule{Patterns: []string{"minor", "min", "aeolian"}, Tag: Aeolian},
	rule{Patterns: []string{"dorian"}, Tag: Dorian},
	rule{Patterns: []string{"locrian"}, Tag: Locrian},
	rule{Patterns: []string{"mixolydian"}, Tag: Mixolydian},
	rule{Patterns: []string{"phrygian"}, Tag: Phrygian},
	rule{Patterns: []string{"lydian"}, Tag: Lydian},
	rule{Patterns: []string{"blues"}, Tag: Blues},
	rule{Patterns: []string{"chromatic"}, Tag: Chromatic},
	rule{Patterns: []string{"whole tone", "wholetone"}, Tag: WholeTone},
)

// Recognize matches a mode at the front of s and returns the bytes consumed.
func Recognize(s string) (Mode, int, error) {
	m, n, ok := recognizer.Match(s)
	if !ok {
		return None, 0, fmt.Errorf("%w: %q", ErrModeParse, strings.TrimSpace(s))
	}
	return m, n, nil
}

// Parse requires s to be a mode and nothing else.
func Parse(s string) (Mode, error) {
	m, n, err := Recognize(s)
	if err != nil {
		return None, err
	}
	if rest := strings.TrimSpace(s[n:]); rest != "" {
		return None, fmt.Errorf("%w: unexpected %q", ErrModeParse, rest)
	}
	return m, nil
}
