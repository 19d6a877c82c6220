package cmd

import (
	"strings"

	"github.com/jsphweid/theorydex/model"
	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/scale"
	"github.com/spf13/cobra"
)

var descending bool

func init() {
	scaleNotesCmd.Flags().BoolVar(&descending, "descending", false, "walk the scale down from the tonic")
	scaleCmd.AddCommand(scaleNotesCmd, scaleListCmd)
	rootCmd.AddCommand(scaleCmd)
}

func direction() note.Direction {
	if descending {
		return note.Descending
	}
	return note.Ascending
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Spells and lists scales",
}

var scaleNotesCmd = &cobra.Command{
	Use:   "notes <scale>",
	Short: "Spells a scale",
	Example: `  theorydex scale notes G mixolydian
  theorydex scale notes "Eb harmonic minor" --descending`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scale.Parse(strings.Join(args, " "), direction())
		if err != nil {
			return err
		}
		return output(cmd, model.FromNotes(s.String(), s.Notes()), notesText(s.String(), s.Notes()))
	},
}

var scaleListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every mode a scale can be built in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		available := names(scale.Available())
		return output(cmd, available, strings.Join(available, "\n"))
	},
}
