package midi

import (
	"testing"

	"github.com/jsphweid/melowave/model"
	"github.com/jsphweid/melowave/pitch"
	"github.com/stretchr/testify/assert"
)

func on(delta uint32, channel, key, velocity uint8) model.RawEvent {
	return model.RawEvent{Delta: delta, Message: model.RawMessage{Kind: model.NoteOn, Channel: channel, Key: key, Velocity: velocity}}
}

func off(delta uint32, channel, key uint8) model.RawEvent {
	return model.RawEvent{Delta: delta, Message: model.RawMessage{Kind: model.NoteOff, Channel: channel, Key: key}}
}

func TestExtractPairsNoteOnWithNoteOff(t *testing.T) {
	track := ExtractTrack(model.RawTrack{
		Name: "piano",
		Events: []model.RawEvent{
			on(0, 0, 60, 90),
			on(0, 0, 64, 80),
			off(480, 0, 60),
			off(0, 0, 64),
		},
	})

	assert := assert.New(t)
	assert.Equal("piano", track.Name)
	assert.Equal([]model.TimedNoteEvent{
		{Channel: 0, Pitch: pitch.FromMIDI(60), Velocity: 90, StartTick: 0, EndTick: 480},
		{Channel: 0, Pitch: pitch.FromMIDI(64), Velocity: 80, StartTick: 0, EndTick: 480},
	}, track.Notes)
}

func TestExtractTreatsZeroVelocityNoteOnAsNoteOff(t *testing.T) {
	track := ExtractTrack(model.RawTrack{Events: []model.RawEvent{
		on(10, 3, 67, 100),
		on(240, 3, 67, 0),
	}})

	assert.Equal(t, []model.TimedNoteEvent{
		{Channel: 3, Pitch: pitch.FromMIDI(67), Velocity: 100, StartTick: 10, EndTick: 250},
	}, track.Notes)
}

func TestExtractDropsUnmatchedNoteOff(t *testing.T) {
	track := ExtractTrack(model.RawTrack{Events: []model.RawEvent{
		off(0, 0, 60),
		on(0, 0, 60, 100),
		off(100, 1, 60),
		off(100, 0, 60),
		off(100, 0, 60),
	}})

	assert.Equal(t, []model.TimedNoteEvent{
		{Channel: 0, Pitch: pitch.FromMIDI(60), Velocity: 100, StartTick: 0, EndTick: 200},
	}, track.Notes)
}

// A retriggered key discards the earlier, still open note. This loses data
// and is kept on purpose for compatibility with existing transcriptions.
func TestExtractRetriggerOverwritesOpenNote(t *testing.T) {
	track := ExtractTrack(model.RawTrack{Events: []model.RawEvent{
		on(0, 0, 60, 50),
		on(100, 0, 60, 70),
		off(100, 0, 60),
	}})

	assert.Equal(t, []model.TimedNoteEvent{
		{Channel: 0, Pitch: pitch.FromMIDI(60), Velocity: 70, StartTick: 100, EndTick: 200},
	}, track.Notes)
}

func TestExtractKeepsChannelsApart(t *testing.T) {
	track := ExtractTrack(model.RawTrack{Events: []model.RawEvent{
		on(0, 0, 60, 100),
		on(0, 16, 60, 100),
		off(50, 16, 60),
		off(50, 0, 60),
		on(0, 17, 61, 100),
		off(10, 17, 61),
	}})

	assert := assert.New(t)
	assert.Len(track.Notes, 2)
	assert.Equal(uint8(16), track.Notes[0].Channel)
	assert.Equal(50, track.Notes[0].EndTick)
	assert.Equal(uint8(0), track.Notes[1].Channel)
	assert.Equal(100, track.Notes[1].EndTick)
}

func TestExtractSongKeepsTicksPerBeatAndTrackOrder(t *testing.T) {
	song := Extract(model.RawSong{
		TicksPerBeat: 96,
		Tracks: []model.RawTrack{
			{Name: "a"},
			{Name: "b", Events: []model.RawEvent{on(0, 0, 72, 1), off(24, 0, 72)}},
		},
	})

	assert := assert.New(t)
	assert.Equal(96, song.TicksPerBeat)
	assert.Len(song.Tracks, 2)
	assert.Equal("a", song.Tracks[0].Name)
	assert.Empty(song.Tracks[0].Notes)
	assert.Equal("C5", song.Tracks[1].Notes[0].Pitch.String())
}
