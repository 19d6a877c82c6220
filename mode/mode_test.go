package mode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognize(t *testing.T) {
	cases := map[string]Mode{
		"M":                Ionian,
		"major":            Ionian,
		"Ionian":           Ionian,
		"m":                Aeolian,
		"minor":            Aeolian,
		"MIN":              Aeolian,
		"aeolian":          Aeolian,
		"harmonic minor":   HarmonicMinor,
		"HarmonicMinor":    HarmonicMinor,
		"har minor":        HarmonicMinor,
		"melodic   minor":  MelodicMinor,
		"mel minor":        MelodicMinor,
		"pentatonic major": PentatonicMajor,
		"minor pentatonic": PentatonicMinor,
		"pent min":         PentatonicMinor,
		"pentatonic":       PentatonicMajor,
		"dorian":           Dorian,
		"Locrian":          Locrian,
		"mixolydian":       Mixolydian,
		"phrygian":         Phrygian,
		"LYDIAN":           Lydian,
		"blues":            Blues,
		"chromatic":        Chromatic,
		"whole tone":       WholeTone,
		"wholetone":        WholeTone,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMajorPentatonicIsNotIonian(t *testing.T) {
	got, n, err := Recognize("major pentatonic")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(PentatonicMajor, got)
	assert.Equal(len("major pentatonic"), n)
}

func TestParseFailures(t *testing.T) {
	for _, input := range []string{"", "   ", "mx", "zydeco", "dorian extra"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.True(t, errors.Is(err, ErrModeParse))
		})
	}
}

func TestRelativeMajorData(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(9, Aeolian.Offset())
	assert.Equal(5, Aeolian.Degree())
	assert.Equal(Aeolian.Offset(), Blues.Offset())
	assert.Equal(11, Locrian.Offset())
	assert.Equal(0, Ionian.Offset())
	assert.Equal(0, None.Degree())
	assert.Equal("Harmonic Minor", HarmonicMinor.String())
}
