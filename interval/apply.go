package interval

import (
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/util"
)

type speller func(semitone uint8) note.Pitch

// move shifts n by delta semitones and places the re-spelled pitch in
// whichever octave keeps the absolute position, so wrapping past B/C and
// 12 semitone jumps need no special handling.
func move(n note.Note, delta int, spell speller) note.Note {
	abs := n.Absolute() + delta
	p := spell(uint8(util.Mod(abs, 12)))
	return note.FromAbsolute(abs, p)
}

// NextNote applies the interval upward, spelling the result in key.
func (i Interval) NextNote(n note.Note, key note.KeySignature) note.Note {
	return move(n, int(i.Semitones), key.Pitch)
}

// PrevNote applies the interval downward, spelling the result in key.
func (i Interval) PrevNote(n note.Note, key note.KeySignature) note.Note {
	return move(n, -int(i.Semitones), key.Pitch)
}

// SecondNoteFrom applies the interval upward with plain sharp spellings.
func (i Interval) SecondNoteFrom(n note.Note) note.Note {
	return move(n, int(i.Semitones), note.PitchFromSemitone)
}

func (i Interval) SecondNoteDownFrom(n note.Note) note.Note {
	return move(n, -int(i.Semitones), note.PitchFromSemitone)
}

// ToNotes stacks the intervals on root. The root keeps its spelling and the
// rest are spelled in the root's major key. The result always has
// len(intervals)+1 notes.
func ToNotes(root note.Note, intervals []Interval) []note.Note {
	return ToNotesInKey(root, intervals, note.NewKeySignature(root.Pitch, mode.None))
}

func ToNotesInKey(root note.Note, intervals []Interval, key note.KeySignature) []note.Note {
	notes := make([]note.Note, 0, len(intervals)+1)
	notes = append(notes, root)
	last := root
	for _, i := range intervals {
		last = i.NextNote(last, key)
		notes = append(notes, last)
	}
	return notes
}

// ToNotesReverse walks the intervals from last to first, descending from
// root, so it mirrors ToNotes for the same stack.
func ToNotesReverse(root note.Note, intervals []Interval) []note.Note {
	return ToNotesReverseInKey(root, intervals, note.NewKeySignature(root.Pitch, mode.None))
}

func ToNotesReverseInKey(root note.Note, intervals []Interval, key note.KeySignature) []note.Note {
	notes := make([]note.Note, 0, len(intervals)+1)
	notes = append(notes, root)
	last := root
	for idx := len(intervals) - 1; idx >= 0; idx-- {
		last = intervals[idx].PrevNote(last, key)
		notes = append(notes, last)
	}
	return notes
}
