package chord

import (
	"github.com/jsphweid/theorydex/interval"
)

type kind struct {
	quality Quality
	number  Number
}

type entry struct {
	kind
	semitones []uint8
}

// entries is the chord table. Order matters: identification returns the
// first entry whose stack matches.
var entries = []entry{
	{kind{Major, Triad}, []uint8{4, 3}},
	{kind{Minor, Triad}, []uint8{3, 4}},
	{kind{Suspended2, Triad}, []uint8{2, 5}},
	{kind{Suspended4, Triad}, []uint8{5, 2}},
	{kind{Augmented, Triad}, []uint8{4, 4}},
	{kind{Diminished, Triad}, []uint8{3, 3}},
	{kind{Major, Seventh}, []uint8{4, 3, 4}},
	{kind{Minor, Seventh}, []uint8{3, 4, 3}},
	{kind{Augmented, Seventh}, []uint8{4, 4, 2}},
	{kind{AugmentedMajor, Seventh}, []uint8{4, 4, 3}},
	{kind{Diminished, Seventh}, []uint8{3, 3, 3}},
	{kind{HalfDiminished, Seventh}, []uint8{3, 3, 4}},
	{kind{MinorMajor, Seventh}, []uint8{3, 4, 4}},
	{kind{Dominant, Seventh}, []uint8{4, 3, 3}},
	{kind{Dominant, Ninth}, []uint8{4, 3, 3, 4}},
	{kind{Major, Ninth}, []uint8{4, 3, 4, 3}},
	{kind{Minor, Ninth}, []uint8{3, 4, 3, 4}},
	{kind{Dominant, Eleventh}, []uint8{4, 3, 3, 4, 3}},
	{kind{Major, Eleventh}, []uint8{4, 3, 4, 3, 3}},
	{kind{Minor, Eleventh}, []uint8{3, 4, 3, 4, 3}},
	{kind{Dominant, Thirteenth}, []uint8{4, 3, 3, 4, 3, 4}},
	{kind{Major, Thirteenth}, []uint8{4, 3, 4, 3, 3, 4}},
	{kind{Minor, Thirteenth}, []uint8{3, 4, 3, 4, 3, 4}},
}

// "major seventh" spelled as a number, looked up but never identified
var aliases = map[kind][]uint8{
	{Major, MajorSeventh}:     {4, 3, 4},
	{Minor, MajorSeventh}:     {3, 4, 4},
	{Augmented, MajorSeventh}: {4, 4, 3},
}

var fallback = []uint8{4, 3}

var byKind = func() map[kind][]uint8 {
	res := make(map[kind][]uint8, len(entries)+len(aliases))
	for _, e := range entries {
		res[e.kind] = e.semitones
	}
	for k, v := range aliases {
		res[k] = v
	}
	return res
}()

// Known reports whether (q, n) is in the chord table.
func Known(q Quality, n Number) bool {
	_, ok := byKind[kind{q, n}]
	return ok
}

// Intervals returns the interval stack for (q, n). Pairs missing from the
// table get a plain major triad.
func Intervals(q Quality, n Number) []interval.Interval {
	semitones, ok := byKind[kind{q, n}]
	if !ok {
		semitones = fallback
	}
	return interval.MustFromSemitones(semitones...)
}

type Named struct {
	Quality Quality
	Number  Number
}

func (n Named) String() string {
	return n.Quality.String() + " " + n.Number.String()
}

// Available lists every named chord in table order.
func Available() []Named {
	res := make([]Named, len(entries))
	for i, e := range entries {
		res[i] = Named{e.quality, e.number}
	}
	return res
}
