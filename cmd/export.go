package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/melowave/config"
	"github.com/jsphweid/melowave/constants"
	"github.com/jsphweid/melowave/file"
	"github.com/jsphweid/melowave/logger"
	"github.com/jsphweid/melowave/score"
	"github.com/jsphweid/melowave/util"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVar(&cataloguePath, "config", constants.GetCataloguePath(), "song catalogue file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "./out", "directory to write transcriptions to")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Transcribes every song in the catalogue to a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cataloguePath)
		if err != nil {
			return err
		}
		n, err := exportAll(newLogger(), c, exportOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %v of %v songs to %v\n", n, len(c.Songs), exportOut)
		return nil
	},
}

// exportAll writes <num>-<title>.json per song. Songs that fail to load are
// logged and skipped.
func exportAll(log *logger.Logger, c *config.Config, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	songs := file.CreateFileNumMap(c.Paths())
	titles := c.Titles()
	keys := util.GetKeys(songs)
	exported := 0
	for i, num := range keys {
		path := songs[num]
		log.Debug("exporting", "song", i+1, "of", len(keys), "path", path)
		song, err := LoadSong(path, excerpt{})
		if err != nil {
			log.Warn("skipping song", "path", path, "error", err)
			continue
		}

		data, err := json.MarshalIndent(score.Transcribe(song), "", "  ")
		if err != nil {
			return exported, err
		}
		name := fmt.Sprintf("%03d-%v.json", num, slug(titles[num]))
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
			return exported, err
		}
		exported++
	}
	return exported, nil
}

func slug(title string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, title)
}
