package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the timed notes of every track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := LoadSong(args[0], excerpt{})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ticks per beat: %v\n", song.TicksPerBeat)
		for i, track := range song.Tracks {
			fmt.Fprintf(out, "track %v %q: %v notes\n", i, track.Name, len(track.Notes))
			for _, n := range track.Notes {
				fmt.Fprintf(out, "  ch %2v %-4v vel %3v %v-%v\n", n.Channel, n.Pitch, n.Velocity, n.StartTick, n.EndTick)
			}
		}
		return nil
	},
}
