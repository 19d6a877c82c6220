package chord

import (
	"github.com/jsphweid/theorydex/token"
)

type Quality uint8

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	AugmentedMajor
	HalfDiminished
	MinorMajor
	Dominant
	Suspended2
	Suspended4
)

var qualityNames = [...]string{
	Major:          "Major",
	Minor:          "Minor",
	Diminished:     "Diminished",
	Augmented:      "Augmented",
	AugmentedMajor: "Augmented Major",
	HalfDiminished: "Half Diminished",
	MinorMajor:     "Minor Major",
	Dominant:       "Dominant",
	Suspended2:     "Suspended2",
	Suspended4:     "Suspended4",
}

func (q Quality) String() string {
	return qualityNames[q]
}

var Qualities = []Quality{
	Major, Minor, Diminished, Augmented, AugmentedMajor,
	HalfDiminished, MinorMajor, Dominant, Suspended2, Suspended4,
}

type Number uint8

const (
	Triad Number = iota
	Seventh
	MajorSeventh
	Ninth
	Eleventh
	Thirteenth
)

var numberNames = [...]string{
	Triad:        "Triad",
	Seventh:      "Seventh",
	MajorSeventh: "Major Seventh",
	Ninth:        "Ninth",
	Eleventh:     "Eleventh",
	Thirteenth:   "Thirteenth",
}

func (n Number) String() string {
	return numberNames[n]
}

var Numbers = []Number{Triad, Seventh, MajorSeventh, Ninth, Eleventh, Thirteenth}

type qualityRule = token.Rule[Quality]

// bare "M" and "m" have to be a whole token or "maj"/"min" would never be seen
var qualities = token.NewRecognizer(
	qualityRule{Patterns: []string{"M"}, Tag: Major, CaseSensitive: true, Bounded: true},
	qualityRule{Patterns: []string{"m"}, Tag: Minor, CaseSensitive: true, Bounded: true},
	qualityRule{Patterns: []string{"half diminished", "halfdiminished", "half dim"}, Tag: HalfDiminished},
	qualityRule{Patterns: []string{"augmented major"}, Tag: AugmentedMajor},
	qualityRule{Patterns: []string{"minor major"}, Tag: MinorMajor},
	qualityRule{Patterns: []string{"major", "maj"}, Tag: Major},
	qualityRule{Patterns: []string{"minor", "min"}, Tag: Minor},
	qualityRule{Patterns: []string{"diminished", "dim"}, Tag: Diminished},
	qualityRule{Patterns: []string{"augmented", "aug"}, Tag: Augmented},
	qualityRule{Patterns: []string{"dominant", "dom"}, Tag: Dominant},
	qualityRule{Patterns: []string{"suspended2", "sus2"}, Tag: Suspended2},
	qualityRule{Patterns: []string{"suspended4", "sus4"}, Tag: Suspended4},
)

type numberRule = token.Rule[Number]

var numbers = token.NewRecognizer(
	numberRule{Patterns: []string{"major seventh", "majorseventh", "maj7"}, Tag: MajorSeventh},
	numberRule{Patterns: []string{"triad"}, Tag: Triad},
	numberRule{Patterns: []string{"seventh", "7"}, Tag: Seventh},
	numberRule{Patterns: []string{"ninth", "9"}, Tag: Ninth},
	numberRule{Patterns: []string{"eleventh", "11"}, Tag: Eleventh},
	numberRule{Patterns: []string{"thirteenth", "13"}, Tag: Thirteenth},
)

// RecognizeQuality reports the quality at the front of s and the bytes it
// used. No match is not an error: the caller falls back to Major.
func RecognizeQuality(s string) (Quality, int, bool) {
	return qualities.Match(s)
}

func RecognizeNumber(s string) (Number, int, bool) {
	return numbers.Match(s)
}
