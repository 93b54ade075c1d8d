package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/melowave/score"
	"github.com/spf13/cobra"
)

var (
	transcribeOut     string
	transcribeExcerpt excerpt
)

func init() {
	transcribeCmd.Flags().StringVarP(&transcribeOut, "out", "o", "", "write JSON here instead of stdout")
	transcribeCmd.Flags().Uint64Var(&transcribeExcerpt.fromTick, "from-tick", 0, "start the transcription at this tick")
	transcribeCmd.Flags().IntVar(&transcribeExcerpt.maxNotes, "max-notes", 0, "note messages to keep per track, 0 for all")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file.mid>",
	Short: "Transcribes a MIDI file to staff notation JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		song, err := LoadSong(args[0], transcribeExcerpt)
		if err != nil {
			return err
		}
		scores := score.Transcribe(song)
		log.Info("transcribed", "file", args[0], "tracks", len(scores), "ticks_per_beat", song.TicksPerBeat)

		var w io.Writer = cmd.OutOrStdout()
		if transcribeOut != "" {
			f, err := os.Create(transcribeOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	},
}
