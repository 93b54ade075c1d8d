package parser

import (
	"fmt"
	"strings"

	"github.com/jsphweid/melowave/chord"
)

// SplitProgression splits a dash separated progression like "C-G-Am-F".
func SplitProgression(progression string) []string {
	var res []string
	for _, s := range strings.Split(progression, "-") {
		s = strings.TrimSpace(s)
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// ParseProgression parses every symbol or nothing at all.
func ParseProgression(symbols []string) ([]chord.Chord, error) {
	res := make([]chord.Chord, 0, len(symbols))
	for i, symbol := range symbols {
		c, _, err := ParseChord(symbol)
		if err != nil {
			return nil, fmt.Errorf("chord %v of progression: %w", i, err)
		}
		res = append(res, c)
	}
	return res, nil
}

func TransposeProgression(chords []chord.Chord, semitones int) []chord.Chord {
	res := make([]chord.Chord, len(chords))
	for i, c := range chords {
		res[i] = c.Transpose(semitones)
	}
	return res
}
