package score

import (
	"encoding/json"
	"sort"

	"github.com/jsphweid/melowave/notation"
	"github.com/jsphweid/melowave/pitch"
)

// KeyCandidates is how many ranked keys a score carries.
const KeyCandidates = 3

type KeyCandidate struct {
	Key   string
	Error int
}

// MarshalJSON writes the candidate as a [key, error] pair.
func (k KeyCandidate) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Key, k.Error})
}

func (k *KeyCandidate) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &k.Key); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &k.Error)
}

type majorKey struct {
	name  string
	scale [7]string
}

// Circle of fifths from C. Sharp keys are spelled with sharps, flat keys
// with flats.
var majorKeys = []majorKey{
	{"C", [7]string{"C", "D", "E", "F", "G", "A", "B"}},
	{"G", [7]string{"G", "A", "B", "C", "D", "E", "F#"}},
	{"D", [7]string{"D", "E", "F#", "G", "A", "B", "C#"}},
	{"A", [7]string{"A", "B", "C#", "D", "E", "F#", "G#"}},
	{"E", [7]string{"E", "F#", "G#", "A", "B", "C#", "D#"}},
	{"B", [7]string{"B", "C#", "D#", "E", "F#", "G#", "A#"}},
	{"F#", [7]string{"F#", "G#", "A#", "B", "C#", "D#", "F"}},
	{"Db", [7]string{"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"}},
	{"Ab", [7]string{"Ab", "Bb", "C", "Db", "Eb", "F", "G"}},
	{"Eb", [7]string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
	{"Bb", [7]string{"Bb", "C", "D", "Eb", "F", "G", "A"}},
	{"F", [7]string{"F", "G", "A", "Bb", "C", "D", "E"}},
}

var keyClasses = make([][12]bool, len(majorKeys))

func init() {
	for i, k := range majorKeys {
		for _, name := range k.scale {
			class, ok := pitch.ClassOf(name)
			if !ok {
				panic("bad scale spelling in key " + k.name + ": " + name)
			}
			keyClasses[i][class] = true
		}
	}
}

// Histogram counts pitch classes over every sounding note; chords count
// once per note.
func Histogram(units []notation.Unit) [12]int {
	var res [12]int
	for _, u := range units {
		for _, p := range notation.Pitches(u) {
			res[p.Class()]++
		}
	}
	return res
}

// RankKeys scores every major key by how many notes fall outside its
// scale, best first. Ties keep table order.
func RankKeys(histogram [12]int) []KeyCandidate {
	res := make([]KeyCandidate, len(majorKeys))
	for i, k := range majorKeys {
		res[i].Key = k.name
		for class, count := range histogram {
			if !keyClasses[i][class] {
				res[i].Error += count
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Error < res[j].Error
	})
	return res
}

func EstimateKey(units []notation.Unit) []KeyCandidate {
	return RankKeys(Histogram(units))[:KeyCandidates]
}
