package midi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/theorydex/constants"
	"github.com/jsphweid/theorydex/note"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

// Create lays the steps out one quarter note apart on a single track. All
// notes of a step sound together, so a chord is one step and a scale is
// one step per note.
func Create(name string, steps [][]note.Note) *smf.SMF {
	clock := smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	for _, step := range steps {
		if len(step) == 0 {
			continue
		}
		for _, n := range step {
			tr.Add(0, midi.NoteOn(channel, n.MIDI(), constants.DefaultVelocity))
		}
		for i, n := range step {
			var delta uint32
			if i == 0 {
				delta = clock.Ticks4th()
			}
			tr.Add(delta, midi.NoteOff(channel, n.MIDI()))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

func Chord(notes []note.Note) [][]note.Note {
	return [][]note.Note{notes}
}

func Melody(notes []note.Note) [][]note.Note {
	res := make([][]note.Note, len(notes))
	for i, n := range notes {
		res[i] = []note.Note{n}
	}
	return res
}

func Write(w io.Writer, name string, steps [][]note.Note) error {
	if _, err := Create(name, steps).WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

func WriteFile(path string, name string, steps [][]note.Note) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return fmt.Errorf("creating %v: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %v: %w", path, err)
	}
	defer f.Close()
	return Write(f, name, steps)
}
