package cmd

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/constants"
	"github.com/jsphweid/theorydex/logger"
	"github.com/jsphweid/theorydex/midi"
	"github.com/jsphweid/theorydex/model"
	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/scale"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "file to write (default EXPORT_DIR/<uuid>.mid)")
	exportScaleCmd.Flags().BoolVar(&descending, "descending", false, "walk the scale down from the tonic")
	exportCmd.AddCommand(exportChordCmd, exportScaleCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes chords and scales as MIDI files",
}

var exportChordCmd = &cobra.Command{
	Use:     "chord <chord>",
	Short:   "Writes a chord as a single quarter note",
	Example: `  theorydex export chord "C Major Seventh" --out cmaj7.mid`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return export(cmd, c.String(), midi.Chord(c.Notes()))
	},
}

var exportScaleCmd = &cobra.Command{
	Use:     "scale <scale>",
	Short:   "Writes a scale one quarter note per step",
	Example: `  theorydex export scale D dorian --descending`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scale.Parse(strings.Join(args, " "), direction())
		if err != nil {
			return err
		}
		return export(cmd, s.String(), midi.Melody(s.Notes()))
	},
}

func export(cmd *cobra.Command, name string, steps [][]note.Note) error {
	path := exportOut
	if path == "" {
		path = filepath.Join(constants.GetExportDir(), uuid.New().String()+".mid")
	}
	if err := midi.WriteFile(path, name, steps); err != nil {
		return err
	}
	logger.Info("exported", logger.Fields{"name": name, "path": path})
	return output(cmd, model.ExportResponse{Name: name, Path: path}, path)
}
