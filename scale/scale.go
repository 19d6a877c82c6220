package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/theorydex/interval"
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/note"
)

var ErrInvalidAlteration = errors.New("invalid scale alteration")

type Accidental uint8

const (
	Sharp Accidental = iota
	Flat
)

func (a Accidental) String() string {
	if a == Flat {
		return "b"
	}
	return "#"
}

// Alteration raises or lowers one degree of a scale, counted from 1.
type Alteration struct {
	Accidental Accidental
	Degree     int
}

func (a Alteration) String() string {
	return fmt.Sprintf("%v%d", a.Accidental, a.Degree)
}

type Scale struct {
	Tonic     note.Pitch
	Octave    uint8
	Type      Type
	Mode      mode.Mode
	Direction note.Direction
	Intervals []interval.Interval
}

func New(t Type, tonic note.Pitch, octave uint8, m mode.Mode, dir note.Direction) Scale {
	return Scale{
		Tonic:     tonic,
		Octave:    octave,
		Type:      t,
		Mode:      m,
		Direction: dir,
		Intervals: Rotate(Intervals(t), m),
	}
}

// FromMode builds the scale whose base stack the mode implies.
func FromMode(tonic note.Pitch, octave uint8, m mode.Mode, dir note.Direction) Scale {
	return New(TypeOf(m), tonic, octave, m, dir)
}

// WithAlterations moves the degree by a semitone by widening one of the
// steps around it and narrowing the other. A raised sixth in aeolian turns
// it into dorian.
func (s Scale) WithAlterations(alterations ...Alteration) (Scale, error) {
	semitones := interval.Semitones(s.Intervals)
	for _, a := range alterations {
		if a.Degree < 2 || a.Degree > len(semitones) {
			return Scale{}, fmt.Errorf("%w: degree %d of a %d note scale", ErrInvalidAlteration, a.Degree, len(semitones)+1)
		}
		before, after := 1, -1
		if a.Accidental == Flat {
			before, after = -1, 1
		}
		lo, hi := int(semitones[a.Degree-2])+before, int(semitones[a.Degree-1])+after
		if lo < 0 || lo > 12 || hi < 0 || hi > 12 {
			return Scale{}, fmt.Errorf("%w: %v leaves a step outside an octave", ErrInvalidAlteration, a)
		}
		semitones[a.Degree-2], semitones[a.Degree-1] = uint8(lo), uint8(hi)
	}

	intervals, err := interval.FromSemitones(semitones)
	if err != nil {
		return Scale{}, err
	}
	s.Intervals = intervals
	return s, nil
}

func (s Scale) Key() note.KeySignature {
	return note.NewKeySignature(s.Tonic, s.Mode)
}

// Notes runs from the tonic through the octave above it, or below it when
// descending.
func (s Scale) Notes() []note.Note {
	tonic := note.New(s.Tonic, s.Octave)
	if s.Direction == note.Descending {
		return interval.ToNotesReverseInKey(tonic, s.Intervals, s.Key())
	}
	return interval.ToNotesInKey(tonic, s.Intervals, s.Key())
}

func (s Scale) String() string {
	name := s.Mode.String()
	if s.Mode == mode.None {
		name = s.Type.String()
	}
	if s.Direction == note.Descending {
		return fmt.Sprintf("%v %v, %v", s.Tonic, name, s.Direction)
	}
	return fmt.Sprintf("%v %v", s.Tonic, name)
}
