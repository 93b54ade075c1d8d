package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/melowave/chord"
	"github.com/jsphweid/melowave/parser"
	"github.com/spf13/cobra"
)

var (
	chordTranspose int
	chordAllKeys   bool
)

func init() {
	chordCmd.Flags().IntVarP(&chordTranspose, "transpose", "t", 0, "semitones to transpose by")
	chordCmd.Flags().BoolVar(&chordAllKeys, "all-keys", false, "print the progression in all 12 transpositions")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol|progression>...",
	Short: "Parses chord symbols",
	Long: `Parses chord symbols ("Cmaj7", "F#m7/A") or dash separated progressions
("C-G-Am-F") and prints their names and pitches. Symbols that fail to parse
are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		out := cmd.OutOrStdout()

		for _, arg := range args {
			symbols := parser.SplitProgression(arg)
			if len(symbols) > 1 {
				chords, err := parser.ParseProgression(symbols)
				if err != nil {
					log.Warn("skipping progression", "progression", arg, "error", err)
					continue
				}
				printProgression(out, chords)
				continue
			}

			c, sym, err := parser.ParseChord(arg)
			if err != nil {
				log.Warn("skipping chord", "symbol", arg, "error", err)
				continue
			}
			c = c.Transpose(chordTranspose)
			line := fmt.Sprintf("%v: %v %v", sym, c, pitchNames(c))
			if sym.Bass != "" {
				line += " bass " + sym.Bass
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func printProgression(out io.Writer, chords []chord.Chord) {
	shifts := []int{chordTranspose}
	if chordAllKeys {
		shifts = shifts[:0]
		for i := 0; i < 12; i++ {
			shifts = append(shifts, i)
		}
	}
	for _, n := range shifts {
		var names []string
		for _, c := range parser.TransposeProgression(chords, n) {
			names = append(names, c.String())
		}
		fmt.Fprintf(out, "%+d: %v\n", n, strings.Join(names, " "))
	}
}

func pitchNames(c chord.Chord) []string {
	var res []string
	for _, p := range c.Pitches() {
		res = append(res, p.String())
	}
	return res
}
