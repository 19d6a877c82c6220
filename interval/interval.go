package interval

import (
	"errors"
	"fmt"
)

var ErrInvalidInterval = errors.New("invalid interval")

type Quality uint8

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
)

func (q Quality) String() string {
	return [...]string{"Perfect", "Major", "Minor", "Augmented", "Diminished"}[q]
}

type Number uint8

const (
	Unison Number = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave
)

func (n Number) String() string {
	return [...]string{"Unison", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Octave"}[n]
}

// Step is only set for the half step, whole step and tritone.
type Step uint8

const (
	NoStep Step = iota
	Half
	Whole
	Tritone
)

func (s Step) String() string {
	return [...]string{"", "Half", "Whole", "Tritone"}[s]
}

type Interval struct {
	Semitones uint8
	Quality   Quality
	Number    Number
	Step      Step
}

var table = [13]Interval{
	{0, Perfect, Unison, NoStep},
	{1, Minor, Second, Half},
	{2, Major, Second, Whole},
	{3, Minor, Third, NoStep},
	{4, Major, Third, NoStep},
	{5, Perfect, Fourth, NoStep},
	{6, Diminished, Fifth, Tritone},
	{7, Perfect, Fifth, NoStep},
	{8, Minor, Sixth, NoStep},
	{9, Major, Sixth, NoStep},
	{10, Minor, Seventh, NoStep},
	{11, Major, Seventh, NoStep},
	{12, Perfect, Octave, NoStep},
}

var shortNames = [13]string{"1", "m2", "M2", "m3", "M3", "P4", "T", "P5", "m6", "M6", "m7", "M7", "8"}

func New(semitones uint8) (Interval, error) {
	if int(semitones) >= len(table) {
		return Interval{}, fmt.Errorf("%w: %v semitones", ErrInvalidInterval, semitones)
	}
	return table[semitones], nil
}

// FromSemitones builds one interval per entry. An empty list is an error.
func FromSemitones(semitones []uint8) ([]Interval, error) {
	if len(semitones) == 0 {
		return nil, fmt.Errorf("%w: no semitones given", ErrInvalidInterval)
	}
	res := make([]Interval, 0, len(semitones))
	for _, s := range semitones {
		i, err := New(s)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}
	return res, nil
}

// MustFromSemitones is for static tables whose values are known good.
func MustFromSemitones(semitones ...uint8) []Interval {
	res, err := FromSemitones(semitones)
	if err != nil {
		panic(err)
	}
	return res
}

// Invert returns the complement within the octave. Unison and octave are
// their own inversions.
func (i Interval) Invert() Interval {
	if i.Semitones == 0 || i.Semitones == 12 {
		return i
	}
	return table[12-i.Semitones]
}

func (i Interval) String() string {
	return shortNames[i.Semitones]
}

// Name is the long form, e.g. "Major Third".
func (i Interval) Name() string {
	return fmt.Sprintf("%v %v", i.Quality, i.Number)
}

func Semitones(intervals []Interval) []uint8 {
	res := make([]uint8, len(intervals))
	for i, v := range intervals {
		res[i] = v.Semitones
	}
	return res
}
