package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/melowave/notation"
	"github.com/jsphweid/melowave/score"
	"github.com/jsphweid/melowave/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>",
	Short: "Summarizes a transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := LoadSong(args[0], excerpt{})
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), score.Transcribe(song))
		return nil
	},
}

type trackReport struct {
	notes  int
	chords int
	rests  int
}

func analyzeScore(s score.Score) trackReport {
	var r trackReport
	for _, u := range s.Units {
		switch u.(type) {
		case notation.SingleNote:
			r.notes++
		case notation.ChordNote:
			r.chords++
		case notation.Rest:
			r.rests++
		}
	}
	return r
}

func report(w io.Writer, scores []score.Score) {
	var units []int
	for _, s := range scores {
		r := analyzeScore(s)
		units = append(units, r.notes+r.chords+r.rests)
		fmt.Fprintf(w, "%q: %v notes, %v chords, %v rests\n", s.Name, r.notes, r.chords, r.rests)
		for i, k := range s.KeySignature {
			fmt.Fprintf(w, "  key %v: %v (%v out of scale)\n", i+1, k.Key, k.Error)
		}
	}
	fmt.Fprintf(w, "tracks: %v, units: %v\n", len(scores), util.Sum(units))
}
