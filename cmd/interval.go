package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/theorydex/interval"
	"github.com/jsphweid/theorydex/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:     "interval <semitones>",
	Short:   "Names the interval spanning 0 to 12 semitones",
	Example: `  theorydex interval 6`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("%w: %q is not a semitone count", interval.ErrInvalidInterval, args[0])
		}
		i, err := interval.New(uint8(n))
		if err != nil {
			return err
		}

		text := fmt.Sprintf("%v (%v), inverts to %v", i, i.Name(), i.Invert())
		if i.Step != interval.NoStep {
			text += fmt.Sprintf(", %v step", i.Step)
		}
		return output(cmd, model.FromInterval(i), text)
	},
}
