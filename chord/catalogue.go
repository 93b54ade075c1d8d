package chord

import (
	"fmt"
	"sort"
	"strings"
)

// Intervals are 1-based semitone distances from the root, sorted ascending.
type Intervals []int

func (iv Intervals) key() string {
	parts := make([]string, len(iv))
	for i, v := range iv {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, "-")
}

type chordType struct {
	intervals Intervals
	suffix    string
}

var chordTypes = []chordType{
	{Intervals{1, 5, 8}, ""},
	{Intervals{1, 4, 8}, "m"},
	{Intervals{1, 8}, "5"},
	{Intervals{1, 4, 7}, "dim"},
	{Intervals{1, 5, 9}, "+"},
	{Intervals{1, 3, 8}, "sus2"},
	{Intervals{1, 6, 8}, "sus4"},
	{Intervals{1, 5, 8, 10}, "6"},
	{Intervals{1, 5, 8, 12}, "maj7"},
	{Intervals{1, 4, 8, 11}, "m7"},
	{Intervals{1, 5, 8, 11}, "7"},
	{Intervals{1, 5, 8, 15}, "add9"},
	{Intervals{1, 5, 8, 11, 15}, "9"},
}

var (
	suffixByIntervals = make(map[string]string, len(chordTypes))
	intervalsBySuffix = make(map[string]Intervals, len(chordTypes))
	suffixesByLength  []string
)

func init() {
	for _, ct := range chordTypes {
		k := ct.intervals.key()
		if _, ok := suffixByIntervals[k]; ok {
			panic("duplicate chord intervals: " + k)
		}
		if _, ok := intervalsBySuffix[ct.suffix]; ok {
			panic("duplicate chord suffix: " + ct.suffix)
		}
		suffixByIntervals[k] = ct.suffix
		intervalsBySuffix[ct.suffix] = ct.intervals
		if ct.suffix != "" {
			suffixesByLength = append(suffixesByLength, ct.suffix)
		}
	}
	sort.SliceStable(suffixesByLength, func(i, j int) bool {
		return len(suffixesByLength[i]) > len(suffixesByLength[j])
	})
}

// Suffixes returns the non-empty quality suffixes, longest first.
func Suffixes() []string {
	res := make([]string, len(suffixesByLength))
	copy(res, suffixesByLength)
	return res
}

// AllSuffixes returns every quality suffix in catalogue order, including
// the empty major triad suffix.
func AllSuffixes() []string {
	res := make([]string, 0, len(chordTypes))
	for _, ct := range chordTypes {
		res = append(res, ct.suffix)
	}
	return res
}

func IntervalsOf(suffix string) (Intervals, bool) {
	iv, ok := intervalsBySuffix[suffix]
	if !ok {
		return nil, false
	}
	res := make(Intervals, len(iv))
	copy(res, iv)
	return res, true
}

func SuffixOf(iv Intervals) (string, bool) {
	s, ok := suffixByIntervals[iv.key()]
	return s, ok
}
