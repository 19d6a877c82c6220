package note

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/theorydex/util"
)

const DefaultOctave uint8 = 4

// A Note is a pitch placed in an octave. B#3 and C4 sound the same.
type Note struct {
	Pitch  Pitch
	Octave uint8
}

func New(p Pitch, octave uint8) Note {
	return Note{Pitch: p, Octave: octave}
}

// Absolute counts semitones up from C0.
func (n Note) Absolute() int {
	return int(n.Octave)*12 + n.Pitch.Height()
}

// FromAbsolute places p so that its absolute position is abs. Positions
// below C0 clamp to octave 0.
func FromAbsolute(abs int, p Pitch) Note {
	octave := util.FloorDiv(abs-p.Height(), 12)
	return New(p, uint8(util.Clamp(octave, 0, 255)))
}

// MIDI uses the convention where C4 is 60.
func (n Note) MIDI() uint8 {
	return uint8(util.Clamp(n.Absolute()+12, 0, 127))
}

func FromMIDI(key uint8) Note {
	abs := int(key) - 12
	return FromAbsolute(abs, PitchFromSemitone(uint8(util.Mod(abs, 12))))
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.Pitch, n.Octave)
}

// ParseNote reads a pitch optionally followed by an octave, as in "Eb3".
// Without an octave the note lands in DefaultOctave.
func ParseNote(s string) (Note, error) {
	p, n, err := RecognizePitch(s)
	if err != nil {
		return Note{}, err
	}
	rest := strings.TrimSpace(s[n:])
	if rest == "" {
		return New(p, DefaultOctave), nil
	}
	octave, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave %q", ErrInvalidPitch, rest)
	}
	return New(p, uint8(octave)), nil
}
