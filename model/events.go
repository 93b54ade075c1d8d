package model

import (
	"encoding/json"

	"github.com/jsphweid/melowave/pitch"
)

type MessageKind int

const (
	NoteOn MessageKind = iota
	NoteOff
)

// RawMessage is a note message as delivered by an event source. Velocity
// is ignored for NoteOff.
type RawMessage struct {
	Kind     MessageKind
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type RawEvent struct {
	Delta   uint32
	Message RawMessage
}

type RawTrack struct {
	Name   string
	Events []RawEvent
}

type RawSong struct {
	TicksPerBeat int
	Tracks       []RawTrack
}

type TimedNoteEvent struct {
	Channel   uint8
	Pitch     pitch.Pitch
	Velocity  uint8
	StartTick int
	EndTick   int
}

func (e TimedNoteEvent) MarshalJSON() ([]byte, error) {
	name, octave := e.Pitch.Name(true)
	return json.Marshal(struct {
		Note      string `json:"note"`
		Octave    int    `json:"octave"`
		Velocity  uint8  `json:"velocity"`
		StartTick int    `json:"start_tick"`
		EndTick   int    `json:"end_tick"`
	}{name, octave, e.Velocity, e.StartTick, e.EndTick})
}

type Track struct {
	Name  string           `json:"name"`
	Notes []TimedNoteEvent `json:"data"`
}

type Song struct {
	TicksPerBeat int     `json:"ticks_per_beat"`
	Tracks       []Track `json:"tracks"`
}
