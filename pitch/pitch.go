package pitch

import (
	"errors"
	"fmt"
)

var ErrInvalidNoteName = errors.New("invalid note name")

var (
	Sharps = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	Flats  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// Pitch is an absolute semitone: octave*12 + pitch class.
type Pitch int

// midiOffset aligns MIDI note numbers with Pitch octaves, so MIDI 60 is C4.
const midiOffset = 12

func FromName(name string, octave int) (Pitch, error) {
	class, ok := ClassOf(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return Pitch(octave*12 + class), nil
}

// ClassOf returns the pitch class of a sharp or flat spelling.
func ClassOf(name string) (int, bool) {
	for i := range Sharps {
		if Sharps[i] == name || Flats[i] == name {
			return i, true
		}
	}
	return 0, false
}

func FromMIDI(note uint8) Pitch {
	return Pitch(int(note) - midiOffset)
}

func (p Pitch) MIDI() int {
	return int(p) + midiOffset
}

// Octave rounds toward negative infinity.
func (p Pitch) Octave() int {
	o := int(p) / 12
	if int(p)%12 < 0 {
		o--
	}
	return o
}

// Class is always in [0, 12).
func (p Pitch) Class() int {
	c := int(p) % 12
	if c < 0 {
		c += 12
	}
	return c
}

func (p Pitch) Name(sharp bool) (string, int) {
	if sharp {
		return Sharps[p.Class()], p.Octave()
	}
	return Flats[p.Class()], p.Octave()
}

func (p Pitch) Transpose(semitones int) Pitch {
	return p + Pitch(semitones)
}

func (p Pitch) String() string {
	name, octave := p.Name(true)
	return fmt.Sprintf("%s%d", name, octave)
}

func (p Pitch) FlatString() string {
	name, octave := p.Name(false)
	return fmt.Sprintf("%s%d", name, octave)
}
