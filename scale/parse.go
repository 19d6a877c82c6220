package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/note"
)

var ErrScaleParse = errors.New("could not parse scale")

// Parse reads a tonic followed by a mode, as in "G mixolydian" or
// "Eb harmonic minor". Mode failures keep mode.ErrModeParse in the chain.
func Parse(s string, dir note.Direction) (Scale, error) {
	tonic, n, err := note.RecognizePitch(s)
	if err != nil {
		return Scale{}, fmt.Errorf("%w: %w", ErrScaleParse, err)
	}

	m, err := mode.Parse(s[n:])
	if err != nil {
		return Scale{}, fmt.Errorf("%w: %w", ErrScaleParse, err)
	}
	return FromMode(tonic, note.DefaultOctave, m, dir), nil
}

func MustParse(s string, dir note.Direction) Scale {
	res, err := Parse(s, dir)
	if err != nil {
		panic(err)
	}
	return res
}

type Named struct {
	Mode mode.Mode
	Type Type
}

// Available lists every mode with the stack it is built on.
func Available() []Named {
	res := make([]Named, len(mode.All))
	for i, m := range mode.All {
		res[i] = Named{Mode: m, Type: TypeOf(m)}
	}
	return res
}

func (n Named) String() string {
	return n.Mode.String()
}
