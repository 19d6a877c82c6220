package chord

import (
	"fmt"

	"github.com/jsphweid/theorydex/interval"
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/util"
)

type Chord struct {
	Root      note.Pitch
	Octave    uint8
	Quality   Quality
	Number    Number
	Inversion uint8
	Intervals []interval.Interval
}

func New(root note.Pitch, octave uint8, q Quality, n Number) Chord {
	return WithInversion(root, octave, q, n, 0)
}

// WithInversion keeps the inversion inside 0..Size()-1.
func WithInversion(root note.Pitch, octave uint8, q Quality, n Number, inversion int) Chord {
	intervals := Intervals(q, n)
	size := len(intervals) + 1
	return Chord{
		Root:      root,
		Octave:    octave,
		Quality:   q,
		Number:    n,
		Inversion: uint8(util.Mod(inversion, size)),
		Intervals: intervals,
	}
}

func (c Chord) Size() int {
	return len(c.Intervals) + 1
}

// Key is where the chord's notes get their spellings. Minor sounding
// chords borrow the root's minor key so C minor reads C Eb G, and dominant
// chords its mixolydian so C7 gets a Bb.
func (c Chord) Key() note.KeySignature {
	switch c.Quality {
	case Minor, Diminished, HalfDiminished, MinorMajor:
		return note.NewKeySignature(c.Root, mode.Aeolian)
	case Dominant:
		return note.NewKeySignature(c.Root, mode.Mixolydian)
	}
	return note.NewKeySignature(c.Root, mode.None)
}

// Notes voices the chord from its bass upward: the root-position stack is
// rotated by the inversion, pulled back to the chord's octave and then
// lifted so no note is lower than the one before it.
func (c Chord) Notes() []note.Note {
	root := note.New(c.Root, c.Octave)
	notes := util.RotateLeft(interval.ToNotesInKey(root, c.Intervals, c.Key()), int(c.Inversion))

	if notes[0].Octave > c.Octave {
		diff := notes[0].Octave - c.Octave
		for i := range notes {
			notes[i].Octave -= diff
		}
	}

	for i := 1; i < len(notes); i++ {
		prev := notes[i-1]
		if notes[i].Pitch.Height() <= prev.Pitch.Height() {
			notes[i].Octave = prev.Octave + 1
		} else if notes[i].Octave < prev.Octave {
			notes[i].Octave = prev.Octave
		}
	}
	return notes
}

func (c Chord) Name() string {
	return fmt.Sprintf("%v %v %v", c.Root, c.Quality, c.Number)
}

func (c Chord) String() string {
	if c.Inversion == 0 {
		return c.Name()
	}
	return fmt.Sprintf("%v, %v Inversion", c.Name(), ordinal(int(c.Inversion)))
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
