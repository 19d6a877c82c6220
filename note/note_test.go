package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteAndMIDI(t *testing.T) {
	assert := assert.New(t)

	c4 := New(NewPitch(C, 0), 4)
	assert.Equal(48, c4.Absolute())
	assert.Equal(uint8(60), c4.MIDI())

	bs3 := New(NewPitch(B, 1), 3)
	assert.Equal(c4.Absolute(), bs3.Absolute())

	cb5 := New(NewPitch(C, -1), 5)
	assert.Equal(uint8(71), cb5.MIDI())
}

func TestFromAbsolute(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(New(NewPitch(C, -1), 5), FromAbsolute(59, NewPitch(C, -1)))
	assert.Equal(New(NewPitch(B, 1), 3), FromAbsolute(48, NewPitch(B, 1)))
	assert.Equal(New(NewPitch(A, 0), 0), FromAbsolute(-3, NewPitch(A, 0)))
}

func TestFromMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", FromMIDI(60).String())
	assert.Equal("C#4", FromMIDI(61).String())
	assert.Equal("A0", FromMIDI(21).String())
}

func TestParseNote(t *testing.T) {
	assert := assert.New(t)

	n, err := ParseNote("Eb3")
	assert.NoError(err)
	assert.Equal(New(NewPitch(E, -1), 3), n)

	n, err = ParseNote("f#")
	assert.NoError(err)
	assert.Equal(New(NewPitch(F, 1), DefaultOctave), n)

	_, err = ParseNote("C4x")
	assert.ErrorIs(err, ErrInvalidPitch)

	_, err = ParseNote("C999")
	assert.ErrorIs(err, ErrInvalidPitch)
}
