package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/melowave/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if p := recover(); p != nil {
			s = nil
			e = fmt.Errorf("parsing midi file: %v", p)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// DefaultTicksPerBeat is used when a file carries SMPTE timing instead of
// metric ticks.
const DefaultTicksPerBeat = 480

// FromSMF reduces a parsed file to the note messages and track names the
// extractor needs.
func FromSMF(s *smf.SMF) model.RawSong {
	res := model.RawSong{TicksPerBeat: DefaultTicksPerBeat}
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok && mt > 0 {
		res.TicksPerBeat = int(uint16(mt))
	}

	for _, events := range s.Tracks {
		var track model.RawTrack
		var pending uint32
		for _, event := range events {
			pending += event.Delta
			var channel, key, velocity uint8
			var name string
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				track.Events = append(track.Events, model.RawEvent{
					Delta:   pending,
					Message: model.RawMessage{Kind: model.NoteOn, Channel: channel, Key: key, Velocity: velocity},
				})
				pending = 0
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				track.Events = append(track.Events, model.RawEvent{
					Delta:   pending,
					Message: model.RawMessage{Kind: model.NoteOff, Channel: channel, Key: key},
				})
				pending = 0
			case event.Message.GetMetaTrackName(&name):
				if track.Name == "" {
					track.Name = name
				}
			}
		}
		res.Tracks = append(res.Tracks, track)
	}
	return res
}
