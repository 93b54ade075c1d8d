package midi

import (
	"github.com/jsphweid/melowave/model"
	"github.com/jsphweid/melowave/pitch"
)

// NumChannels covers MIDI channels 0-15 plus one spare slot, matching the
// 0-16 channel range event sources may report.
const NumChannels = 17

type openNote struct {
	tick     int
	velocity uint8
}

// ExtractTrack pairs note-ons with the next matching note-off (or
// velocity 0 note-on) on the same channel and key.
//
// A second note-on for a key that is still sounding replaces the open note;
// the earlier one is lost. Note-offs with nothing open are dropped.
func ExtractTrack(raw model.RawTrack) model.Track {
	res := model.Track{Name: raw.Name}
	var channels [NumChannels]map[uint8]openNote
	var tick int

	for _, evt := range raw.Events {
		tick += int(evt.Delta)
		msg := evt.Message
		if int(msg.Channel) >= NumChannels {
			continue
		}
		open := channels[msg.Channel]
		if open == nil {
			open = make(map[uint8]openNote)
			channels[msg.Channel] = open
		}

		if msg.Kind == model.NoteOn && msg.Velocity > 0 {
			open[msg.Key] = openNote{tick: tick, velocity: msg.Velocity}
			continue
		}

		info, ok := open[msg.Key]
		if !ok {
			continue
		}
		delete(open, msg.Key)
		res.Notes = append(res.Notes, model.TimedNoteEvent{
			Channel:   msg.Channel,
			Pitch:     pitch.FromMIDI(msg.Key),
			Velocity:  info.velocity,
			StartTick: info.tick,
			EndTick:   tick,
		})
	}
	return res
}

func Extract(raw model.RawSong) model.Song {
	res := model.Song{TicksPerBeat: raw.TicksPerBeat}
	for _, track := range raw.Tracks {
		res.Tracks = append(res.Tracks, ExtractTrack(track))
	}
	return res
}
