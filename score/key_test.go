package score

import (
	"encoding/json"
	"testing"

	"github.com/jsphweid/melowave/notation"
	"github.com/jsphweid/melowave/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMajorTriadRanksC(t *testing.T) {
	var h [12]int
	h[0], h[4], h[7] = 3, 2, 5

	ranked := RankKeys(h)
	require.Len(t, ranked, 12)
	assert.Equal(t, []KeyCandidate{{"C", 0}, {"G", 0}, {"F", 0}}, ranked[:3])

	var names []string
	for _, k := range ranked[:KeyCandidates] {
		names = append(names, k.Key)
	}
	assert.Contains(t, names, "C")
}

func TestRankKeysCountsOutOfScaleOccurrences(t *testing.T) {
	var h [12]int
	h[1] = 4 // C#
	h[6] = 1 // F#

	ranked := RankKeys(h)
	errs := map[string]int{}
	for _, k := range ranked {
		errs[k.Key] = k.Error
	}
	assert.Equal(t, 5, errs["C"])
	assert.Equal(t, 4, errs["G"])
	assert.Equal(t, 0, errs["D"])
	assert.Equal(t, 0, errs["Db"])
	assert.Equal(t, 5, errs["Eb"])
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Error, ranked[i].Error)
	}
}

func TestEmptyHistogramKeepsTableOrder(t *testing.T) {
	assert.Equal(t, []KeyCandidate{{"C", 0}, {"G", 0}, {"D", 0}}, EstimateKey(nil))
}

func TestHistogramCountsChordNotesAndSkipsRests(t *testing.T) {
	units := []notation.Unit{
		notation.SingleNote{Pitch: pitch.FromMIDI(60)},
		notation.ChordNote{Pitches: []pitch.Pitch{pitch.FromMIDI(48), pitch.FromMIDI(64), pitch.FromMIDI(67)}},
		notation.Rest{Duration: notation.Duration{Class: notation.Half}},
	}
	h := Histogram(units)
	assert.Equal(t, 2, h[0])
	assert.Equal(t, 1, h[4])
	assert.Equal(t, 1, h[7])
}

func TestEveryKeyHasSevenClasses(t *testing.T) {
	for i, classes := range keyClasses {
		n := 0
		for _, in := range classes {
			if in {
				n++
			}
		}
		assert.Equal(t, 7, n, majorKeys[i].name)
	}
}

func TestKeyCandidateJSONPair(t *testing.T) {
	data, err := json.Marshal(KeyCandidate{"Eb", 2})
	require.NoError(t, err)
	assert.Equal(t, `["Eb",2]`, string(data))

	var back KeyCandidate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, KeyCandidate{"Eb", 2}, back)
}
