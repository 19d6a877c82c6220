package interval

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/note"
	"github.com/stretchr/testify/assert"
)

func mustNote(s string) note.Note {
	n, err := note.ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

func noteStrings(notes []note.Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.String()
	}
	return res
}

func TestQualityAndNumber(t *testing.T) {
	cases := []struct {
		semitones uint8
		quality   Quality
		number    Number
		step      Step
		short     string
	}{
		{0, Perfect, Unison, NoStep, "1"},
		{1, Minor, Second, Half, "m2"},
		{2, Major, Second, Whole, "M2"},
		{3, Minor, Third, NoStep, "m3"},
		{4, Major, Third, NoStep, "M3"},
		{5, Perfect, Fourth, NoStep, "P4"},
		{6, Diminished, Fifth, Tritone, "T"},
		{7, Perfect, Fifth, NoStep, "P5"},
		{8, Minor, Sixth, NoStep, "m6"},
		{9, Major, Sixth, NoStep, "M6"},
		{10, Minor, Seventh, NoStep, "m7"},
		{11, Major, Seventh, NoStep, "M7"},
		{12, Perfect, Octave, NoStep, "8"},
	}

	for _, c := range cases {
		t.Run(c.short, func(t *testing.T) {
			i, err := New(c.semitones)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.semitones, i.Semitones)
			assert.Equal(c.quality, i.Quality)
			assert.Equal(c.number, i.Number)
			assert.Equal(c.step, i.Step)
			assert.Equal(c.short, i.String())
		})
	}
}

func TestOutOfRange(t *testing.T) {
	_, err := New(13)
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = FromSemitones(nil)
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = FromSemitones([]uint8{4, 3, 20})
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func TestInverseLaw(t *testing.T) {
	for s := uint8(0); s <= 12; s++ {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			i, _ := New(s)

			assert := assert.New(t)
			assert.Equal(i, i.Invert().Invert())
			if s != 0 && s != 12 {
				assert.Equal(12-s, i.Invert().Semitones)
			} else {
				assert.Equal(s, i.Invert().Semitones)
			}
		})
	}
}

func TestName(t *testing.T) {
	i, _ := New(4)
	assert.Equal(t, "Major Third", i.Name())
}

func TestOctaveIsAPlainBump(t *testing.T) {
	octave, _ := New(12)

	assert := assert.New(t)
	assert.Equal("C5", octave.SecondNoteFrom(mustNote("C4")).String())
	assert.Equal("C3", octave.SecondNoteDownFrom(mustNote("C4")).String())

	key := note.NewKeySignature(note.MustParsePitch("Eb"), mode.None)
	assert.Equal("Eb5", octave.NextNote(mustNote("Eb4"), key).String())
}

func TestWholeStepsDownFromC(t *testing.T) {
	whole, _ := New(2)
	n := mustNote("C4")
	var got []string
	for i := 0; i < 7; i++ {
		got = append(got, n.String())
		n = whole.SecondNoteDownFrom(n)
	}
	assert.Equal(t, []string{"C4", "A#3", "G#3", "F#3", "E3", "D3", "C3"}, got)
}

func TestWrapSpellings(t *testing.T) {
	assert := assert.New(t)

	half, _ := New(1)
	gb := note.NewKeySignature(note.MustParsePitch("Gb"), mode.None)
	assert.Equal("Cb5", half.NextNote(mustNote("Bb4"), gb).String())

	whole, _ := New(2)
	cs := note.NewKeySignature(note.MustParsePitch("C#"), mode.None)
	assert.Equal("B#4", whole.NextNote(mustNote("A#4"), cs).String())
	assert.Equal("C#5", half.NextNote(mustNote("B#4"), cs).String())
}

func TestToNotes(t *testing.T) {
	intervals := MustFromSemitones(4, 3, 4)
	notes := ToNotes(mustNote("C4"), intervals)

	assert := assert.New(t)
	assert.Len(notes, len(intervals)+1)
	assert.Equal([]string{"C4", "E4", "G4", "B4"}, noteStrings(notes))
}

func TestToNotesReverse(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		[]string{"C4", "G3", "C3"},
		noteStrings(ToNotesReverse(mustNote("C4"), MustFromSemitones(7, 5))),
	)

	major := MustFromSemitones(2, 2, 1, 2, 2, 2, 1)
	up := ToNotes(mustNote("C4"), major)
	down := ToNotesReverse(mustNote("C5"), major)
	for i := range up {
		assert.Equal(up[i], down[len(down)-1-i])
	}
}

func TestSemitones(t *testing.T) {
	assert.Equal(t, []uint8{4, 3}, Semitones(MustFromSemitones(4, 3)))
}
