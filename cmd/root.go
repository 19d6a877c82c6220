package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/jsphweid/theorydex/constants"
	"github.com/jsphweid/theorydex/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X github.com/jsphweid/theorydex/cmd.version=..."
var version = "dev"

var flush = func() {}

var rootCmd = &cobra.Command{
	Use:          "theorydex",
	Short:        "Spells, names and plays chords and scales",
	Long:         `Spells chords and scales in the right key, names chords from their notes, and reads or writes them as MIDI.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json or yaml")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] could not load .env: %v", err)
	}
	flush = logger.Init(constants.GetSentryDSN(), constants.GetEnvironment(), version)
}

func Execute() {
	err := rootCmd.Execute()
	flush()
	cobra.CheckErr(err)
}
