package model

import (
	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/interval"
	"github.com/jsphweid/theorydex/note"
)

func FromNotes(name string, notes []note.Note) NotesResponse {
	res := NotesResponse{Name: name, Notes: make([]Note, len(notes))}
	for i, n := range notes {
		res.Notes[i] = Note{Pitch: n.Pitch.String(), Octave: n.Octave, Midi: n.MIDI()}
	}
	return res
}

func FromChord(c chord.Chord) IdentifyResponse {
	return IdentifyResponse{
		Name:      c.String(),
		Root:      c.Root.String(),
		Quality:   c.Quality.String(),
		Number:    c.Number.String(),
		Inversion: c.Inversion,
	}
}

func FromInterval(i interval.Interval) IntervalResponse {
	return IntervalResponse{
		Semitones: i.Semitones,
		Short:     i.String(),
		Name:      i.Name(),
		Step:      i.Step.String(),
		Inversion: i.Invert().String(),
	}
}

func FromNoteSet(notes []note.Note, c *chord.Chord) IdentifiedSet {
	res := IdentifiedSet{Notes: make([]string, len(notes))}
	for i, n := range notes {
		res.Notes[i] = n.String()
	}
	if c != nil {
		identified := FromChord(*c)
		res.Chord = &identified
	}
	return res
}
