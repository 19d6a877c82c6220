package note

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/util"
)

var ErrInvalidPitch = errors.New("invalid pitch")

type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterBases = [7]int{0, 2, 4, 5, 7, 9, 11}

// Base is the semitone of the natural letter.
func (l Letter) Base() int {
	return letterBases[l%7]
}

// Shift moves n letters up the C..B cycle, wrapping in either direction.
func (l Letter) Shift(n int) Letter {
	return Letter(util.Mod(int(l)+n, 7))
}

func (l Letter) String() string {
	return string("CDEFGAB"[l%7])
}

type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

// A Pitch is a spelled pitch class. Accidental counts sharps when positive
// and flats when negative.
type Pitch struct {
	Letter     Letter
	Accidental int
}

func NewPitch(l Letter, accidental int) Pitch {
	return Pitch{Letter: l, Accidental: accidental}
}

func (p Pitch) Semitone() uint8 {
	return uint8(util.Mod(p.Height(), 12))
}

// Height is the unwrapped semitone, so B# is 12 and Cb is -1.
func (p Pitch) Height() int {
	return p.Letter.Base() + p.Accidental
}

func (p Pitch) IsEnharmonic(other Pitch) bool {
	return p.Semitone() == other.Semitone()
}

func (p Pitch) String() string {
	glyph := "#"
	if p.Accidental < 0 {
		glyph = "b"
	}
	n := p.Accidental
	if n < 0 {
		n = -n
	}
	return p.Letter.String() + strings.Repeat(glyph, n)
}

var sharpSpellings = [12]Pitch{
	{C, 0}, {C, 1}, {D, 0}, {D, 1}, {E, 0}, {F, 0},
	{F, 1}, {G, 0}, {G, 1}, {A, 0}, {A, 1}, {B, 0},
}

var flatSpellings = [12]Pitch{
	{C, 0}, {D, -1}, {D, 0}, {E, -1}, {E, 0}, {F, 0},
	{G, -1}, {G, 0}, {A, -1}, {A, 0}, {B, -1}, {B, 0},
}

// PitchFromSemitone spells n (taken mod 12) with sharps.
func PitchFromSemitone(n uint8) Pitch {
	return sharpSpellings[n%12]
}

// PitchFromSemitoneDirected spells with sharps going up and flats going down.
func PitchFromSemitoneDirected(n uint8, dir Direction) Pitch {
	if dir == Descending {
		return flatSpellings[n%12]
	}
	return sharpSpellings[n%12]
}

// Chromatic lists the seventeen usual spellings of the octave, sharps
// before flats where a black key has two.
func Chromatic() []Pitch {
	var res []Pitch
	for i := range sharpSpellings {
		res = append(res, sharpSpellings[i])
		if flatSpellings[i] != sharpSpellings[i] {
			res = append(res, flatSpellings[i])
		}
	}
	return res
}

// modal flat degrees, by semitone above C
var modeFlats = map[mode.Mode][]uint8{
	mode.Dorian:     {3, 10},
	mode.Phrygian:   {1, 3, 8, 10},
	mode.Mixolydian: {10},
	mode.Aeolian:    {3, 8, 10},
	mode.Locrian:    {1, 3, 6, 8, 10},
}

// PitchFromSemitoneInMode spells n the way the mode's characteristic flat
// degrees read when the mode is built on C. Without a mode it falls back to
// the direction.
func PitchFromSemitoneInMode(n uint8, m mode.Mode, dir Direction) Pitch {
	n %= 12
	if m == mode.None {
		return PitchFromSemitoneDirected(n, dir)
	}
	for _, flat := range modeFlats[m] {
		if flat == n {
			return flatSpellings[n]
		}
	}
	return sharpSpellings[n]
}

func letterFromRune(r rune) (Letter, bool) {
	switch r {
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'E', 'e':
		return E, true
	case 'F', 'f':
		return F, true
	case 'G', 'g':
		return G, true
	case 'A', 'a':
		return A, true
	case 'B', 'b':
		return B, true
	}
	return 0, false
}

func sharpValue(r rune) int {
	switch r {
	case '#', 's', 'S', '♯':
		return 1
	case 'x', '𝄪':
		return 2
	}
	return 0
}

func flatValue(r rune) int {
	switch r {
	case 'b', '♭':
		return -1
	}
	return 0
}

// RecognizePitch reads a pitch from the front of s (after leading spaces)
// and returns the bytes consumed, so callers can keep scanning.
func RecognizePitch(s string) (Pitch, int, error) {
	start := len(s) - len(strings.TrimLeft(s, " \t\n\r"))
	r, size := utf8.DecodeRuneInString(s[start:])
	letter, ok := letterFromRune(r)
	if !ok {
		return Pitch{}, 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}

	pos := start + size
	var sharps, flats int
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if v := sharpValue(r); v != 0 {
			sharps += v
		} else if v := flatValue(r); v != 0 {
			flats += v
		} else {
			break
		}
		pos += size
	}

	if sharps != 0 && flats != 0 {
		return Pitch{}, 0, fmt.Errorf("%w: mixed sharps and flats in %q", ErrInvalidPitch, s[start:pos])
	}
	return NewPitch(letter, sharps+flats), pos, nil
}

func ParsePitch(s string) (Pitch, error) {
	p, n, err := RecognizePitch(s)
	if err != nil {
		return Pitch{}, err
	}
	if rest := strings.TrimSpace(s[n:]); rest != "" {
		return Pitch{}, fmt.Errorf("%w: unexpected %q after %v", ErrInvalidPitch, rest, p)
	}
	return p, nil
}

func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}
