package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/theorydex/note"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownChord        = errors.New("unknown chord")
	ErrInvalidChordPattern = errors.New("invalid chord pattern")
)

type inversion struct {
	kind
	inversion int
	semitones []uint8
}

// Inverted voicings that read as exactly one chord. Stacks that stay the
// same under rotation (augmented triads, diminished sevenths) and [5,5]
// are left out on purpose: there is no single answer for them.
var inversions = []inversion{
	{kind{Major, Triad}, 1, []uint8{3, 5}},
	{kind{Major, Triad}, 2, []uint8{5, 4}},
	{kind{Minor, Triad}, 1, []uint8{4, 5}},
	{kind{Minor, Triad}, 2, []uint8{5, 3}},
	{kind{Diminished, Triad}, 1, []uint8{3, 6}},
	{kind{Diminished, Triad}, 2, []uint8{6, 3}},
	{kind{Major, Seventh}, 1, []uint8{3, 4, 1}},
	{kind{Major, Seventh}, 2, []uint8{4, 1, 4}},
	{kind{Major, Seventh}, 3, []uint8{1, 4, 3}},
	{kind{Minor, Seventh}, 1, []uint8{4, 3, 2}},
	{kind{Minor, Seventh}, 2, []uint8{3, 2, 3}},
	{kind{Minor, Seventh}, 3, []uint8{2, 3, 4}},
	{kind{Dominant, Seventh}, 1, []uint8{3, 3, 2}},
	{kind{Dominant, Seventh}, 2, []uint8{3, 2, 4}},
	{kind{Dominant, Seventh}, 3, []uint8{2, 4, 3}},
	{kind{HalfDiminished, Seventh}, 1, []uint8{3, 4, 2}},
	{kind{HalfDiminished, Seventh}, 2, []uint8{4, 2, 3}},
	{kind{HalfDiminished, Seventh}, 3, []uint8{2, 3, 3}},
	{kind{MinorMajor, Seventh}, 1, []uint8{4, 4, 1}},
	{kind{MinorMajor, Seventh}, 2, []uint8{4, 1, 3}},
	{kind{MinorMajor, Seventh}, 3, []uint8{1, 3, 4}},
	{kind{AugmentedMajor, Seventh}, 1, []uint8{4, 3, 1}},
	{kind{AugmentedMajor, Seventh}, 2, []uint8{3, 1, 4}},
	{kind{AugmentedMajor, Seventh}, 3, []uint8{1, 4, 4}},
	{kind{Augmented, Seventh}, 1, []uint8{4, 2, 2}},
	{kind{Augmented, Seventh}, 2, []uint8{2, 2, 4}},
	{kind{Augmented, Seventh}, 3, []uint8{2, 4, 4}},
}

// Match is what a stack of semitone steps identifies as. RootIndex points
// at the input note that is the chord's root.
type Match struct {
	Quality   Quality
	Number    Number
	RootIndex int
	Inversion int
}

// Steps returns the rising distance between neighbouring pitches, wrapped
// into one octave.
func Steps(pitches []note.Pitch) []uint8 {
	if len(pitches) < 2 {
		return nil
	}
	res := make([]uint8, len(pitches)-1)
	for i := range res {
		res[i] = (pitches[i+1].Semitone() + 12 - pitches[i].Semitone()) % 12
	}
	return res
}

// MatchSteps looks the steps up in root position first, then among the
// inversions.
func MatchSteps(steps []uint8) (Match, error) {
	if len(steps) == 0 {
		return Match{}, fmt.Errorf("%w: need at least two notes", ErrInvalidChordPattern)
	}
	for _, e := range entries {
		if slices.Equal(e.semitones, steps) {
			return Match{Quality: e.quality, Number: e.number}, nil
		}
	}

	n := len(steps) + 1
	for _, inv := range inversions {
		if slices.Equal(inv.semitones, steps) {
			return Match{
				Quality:   inv.quality,
				Number:    inv.number,
				RootIndex: (n - inv.inversion) % n,
				Inversion: inv.inversion,
			}, nil
		}
	}
	return Match{}, fmt.Errorf("%w: steps %v", ErrUnknownChord, steps)
}

// Identify names the chord formed by pitches, listed from the bass up. The
// root keeps the spelling it was given.
func Identify(pitches []note.Pitch) (Chord, error) {
	m, err := MatchSteps(Steps(pitches))
	if err != nil {
		return Chord{}, err
	}
	return WithInversion(pitches[m.RootIndex], note.DefaultOctave, m.Quality, m.Number, m.Inversion), nil
}

// IdentifyNotes is Identify for notes; the chord sits in the bass note's
// octave.
func IdentifyNotes(notes []note.Note) (Chord, error) {
	pitches := make([]note.Pitch, len(notes))
	for i, n := range notes {
		pitches[i] = n.Pitch
	}
	c, err := Identify(pitches)
	if err != nil {
		return Chord{}, err
	}
	c.Octave = notes[0].Octave
	return c, nil
}
