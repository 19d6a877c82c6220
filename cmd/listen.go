package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/constants"
	"github.com/jsphweid/theorydex/logger"
	"github.com/jsphweid/theorydex/midi"
	"github.com/jsphweid/theorydex/model"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", -1, "MIDI input port number (default MIDI_IN_PORT)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords held down on a MIDI input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := listenPort
		if port < 0 {
			port = constants.GetMidiInPort()
		}
		return listen(cmd, port)
	},
}

func listen(cmd *cobra.Command, port int) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return fmt.Errorf("can't find MIDI input %v: %w", port, err)
	}

	held := midi.NewHeld(constants.GetDebounce(), func(keys []uint8) {
		reportHeld(cmd, keys)
	})

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.Press(key)
		case msg.GetNoteEnd(&ch, &key):
			held.Release(key)
		}
	})
	if err != nil {
		return fmt.Errorf("listening to %v: %w", in, err)
	}
	defer stop()
	logger.Info("listening", logger.Fields{"port": in.String()})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// reportHeld prints the chord the keys make. Single notes and sets that
// spell nothing are only logged.
func reportHeld(cmd *cobra.Command, keys []uint8) {
	if len(keys) < 2 {
		return
	}
	c, err := chord.IdentifyNotes(midi.ToNotes(keys))
	if err != nil {
		logger.Debug("no chord", logger.Fields{"keys": keys})
		return
	}
	if err := output(cmd, model.FromChord(c), c.String()); err != nil {
		logger.Error("could not print chord", err, logger.Fields{"keys": keys})
	}
}
