package cmd

import (
	"os"

	"github.com/jsphweid/melowave/constants"
	"github.com/jsphweid/melowave/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "melowave",
	Short: "MIDI to staff notation",
	Long: `Transcribes MIDI files into staff notation (notes, chords, rests and
an estimated key) and parses chord symbols like "Cmaj7" or "F#m7/A".`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", constants.GetLogFormat(), "text or json")
}

func newLogger() *logger.Logger {
	return logger.New(logger.Config{
		Writer: os.Stderr,
		Format: logFormat,
		Level:  logger.ParseLevel(logLevel),
	})
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
