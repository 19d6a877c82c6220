package cmd

import (
	"strings"

	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/model"
	"github.com/spf13/cobra"
)

func init() {
	chordCmd.AddCommand(chordNotesCmd, chordListCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Spells and lists chords",
}

var chordNotesCmd = &cobra.Command{
	Use:   "notes <chord>",
	Short: "Spells a chord",
	Example: `  theorydex chord notes "C#m Eleventh"
  theorydex chord notes Bb dom 9
  theorydex chord notes F/C`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return output(cmd, model.FromNotes(c.String(), c.Notes()), notesText(c.String(), c.Notes()))
	},
}

var chordListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every chord that can be spelled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		available := names(chord.Available())
		return output(cmd, available, strings.Join(available, "\n"))
	},
}
