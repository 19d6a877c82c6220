package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/midi"
	"github.com/jsphweid/theorydex/model"
	"github.com/jsphweid/theorydex/note"
	"github.com/spf13/cobra"
)

var identifyMidi string

func init() {
	identifyCmd.Flags().StringVar(&identifyMidi, "midi", "", "name every chord held down in this MIDI file")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <notes...>",
	Short: "Names the chord made by some notes",
	Example: `  theorydex identify C Eb Gb
  theorydex identify E3 G3 C4
  theorydex identify --midi song.mid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if identifyMidi != "" {
			return identifyFile(cmd, identifyMidi)
		}
		if len(args) == 0 {
			return errors.New("give some notes or --midi")
		}

		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		c, err := chord.IdentifyNotes(notes)
		if err != nil {
			return err
		}
		return output(cmd, model.FromChord(c), c.String())
	},
}

func parseNotes(args []string) ([]note.Note, error) {
	res := make([]note.Note, len(args))
	for i, arg := range args {
		n, err := note.ParseNote(arg)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

// identifyFile reports every distinct note set in the file, named or not.
func identifyFile(cmd *cobra.Command, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	var res []model.IdentifiedSet
	var lines []string
	for _, set := range midi.NoteSets(s) {
		notes := midi.ToNotes(set)
		identified := model.FromNoteSet(notes, nil)
		name := "?"
		if c, err := chord.IdentifyNotes(notes); err == nil {
			identified = model.FromNoteSet(notes, &c)
			name = c.String()
		}
		res = append(res, identified)
		lines = append(lines, fmt.Sprintf("%v: %v", strings.Join(identified.Notes, " "), name))
	}
	return output(cmd, res, strings.Join(lines, "\n"))
}
