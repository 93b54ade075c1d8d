package score

import (
	"encoding/json"

	"github.com/jsphweid/melowave/model"
	"github.com/jsphweid/melowave/notation"
	"github.com/jsphweid/melowave/pitch"
)

// BeatsPerMeasure is fixed; only a 4/4 grid is assumed.
const BeatsPerMeasure = 4

type Score struct {
	Name         string
	Units        []notation.Unit
	KeySignature []KeyCandidate
}

type section struct {
	StartTick int               `json:"start_tick"`
	EndTick   int               `json:"end_tick"`
	Notation  notation.Notation `json:"notation"`
}

func (s Score) MarshalJSON() ([]byte, error) {
	data := make([]section, 0, len(s.Units))
	for _, u := range s.Units {
		start, end := u.Span()
		data = append(data, section{StartTick: start, EndTick: end, Notation: u.Notation()})
	}
	keys := s.KeySignature
	if keys == nil {
		keys = []KeyCandidate{}
	}
	return json.Marshal(struct {
		Name         string         `json:"name"`
		KeySignature []KeyCandidate `json:"key_signature"`
		Data         []section      `json:"data"`
	}{s.Name, keys, data})
}

// Assemble turns a track's note events, in arrival order, into notes,
// chords and rests, then estimates the key.
func Assemble(ticksPerBeat int, track model.Track) Score {
	res := Score{Name: track.Name}
	measure := ticksPerBeat * BeatsPerMeasure
	var lastStart, lastEnd int

	for _, note := range track.Notes {
		if gap := note.StartTick - lastEnd; gap > 0 {
			res.Units = append(res.Units, rests(ticksPerBeat, measure, lastEnd, note.StartTick)...)
		}

		staffNote := notation.SingleNote{
			Pitch:     note.Pitch,
			Duration:  notation.ConvertTicksToDuration(ticksPerBeat, note.EndTick-note.StartTick),
			StartTick: note.StartTick,
			EndTick:   note.EndTick,
		}
		merged, ok := mergeIntoLast(res.Units, staffNote)
		if ok && note.StartTick == lastStart {
			res.Units[len(res.Units)-1] = merged
		} else {
			res.Units = append(res.Units, staffNote)
		}

		lastStart = max(lastStart, note.StartTick)
		lastEnd = max(lastEnd, note.EndTick)
	}

	res.KeySignature = EstimateKey(res.Units)
	return res
}

// rests fills [from, to). Whole-measure rests cover every measure of the
// gap beyond the first; the rest, up to two measures, is quantized as one
// unit and dropped when it is no longer than a sixty-fourth.
func rests(ticksPerBeat, measure, from, to int) []notation.Unit {
	var res []notation.Unit
	gap := to - from
	if measure > 0 {
		for n := gap / measure; n > 1; n-- {
			res = append(res, notation.Rest{
				Duration:  notation.Duration{Class: notation.Whole},
				StartTick: from,
				EndTick:   from + measure,
			})
			from += measure
		}
	}
	d := notation.ConvertTicksToDuration(ticksPerBeat, to-from)
	if d.Class < notation.SixtyFourth {
		res = append(res, notation.Rest{Duration: d, StartTick: from, EndTick: to})
	}
	return res
}

// mergeIntoLast folds a note starting with the previous note or chord into
// a chord. The chord keeps its first note's duration and stretches its end.
func mergeIntoLast(units []notation.Unit, n notation.SingleNote) (notation.Unit, bool) {
	if len(units) == 0 {
		return nil, false
	}
	switch last := units[len(units)-1].(type) {
	case notation.SingleNote:
		if last.StartTick != n.StartTick {
			return nil, false
		}
		return notation.ChordNote{
			Pitches:   []pitch.Pitch{last.Pitch, n.Pitch},
			Duration:  last.Duration,
			StartTick: last.StartTick,
			EndTick:   max(last.EndTick, n.EndTick),
		}, true
	case notation.ChordNote:
		if last.StartTick != n.StartTick {
			return nil, false
		}
		pitches := make([]pitch.Pitch, 0, len(last.Pitches)+1)
		pitches = append(pitches, last.Pitches...)
		last.Pitches = append(pitches, n.Pitch)
		last.EndTick = max(last.EndTick, n.EndTick)
		return last, true
	default:
		return nil, false
	}
}

func Transcribe(song model.Song) []Score {
	res := make([]Score, 0, len(song.Tracks))
	for _, track := range song.Tracks {
		res = append(res, Assemble(song.TicksPerBeat, track))
	}
	return res
}
