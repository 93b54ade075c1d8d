package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/melowave/midi"
	"github.com/jsphweid/melowave/model"
	"github.com/jsphweid/melowave/sample"
	"gitlab.com/gomidi/midi/v2/smf"
)

type excerpt struct {
	fromTick uint64
	maxNotes int
}

func (e excerpt) apply(s *smf.SMF) *smf.SMF {
	if e.fromTick == 0 && e.maxNotes == 0 {
		return s
	}
	return sample.Create(s, e.fromTick, e.maxNotes)
}

func LoadSong(path string, e excerpt) (model.Song, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Song{}, fmt.Errorf("%v: %w", path, err)
	}
	return midi.Extract(midi.FromSMF(e.apply(s))), nil
}

func ReadSong(r io.Reader) (model.Song, error) {
	s, err := midi.ReadMidi(r)
	if err != nil {
		return model.Song{}, err
	}
	return midi.Extract(midi.FromSMF(s)), nil
}
