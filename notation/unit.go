package notation

import (
	"fmt"
	"strings"

	"github.com/jsphweid/melowave/pitch"
)

// Unit is one of SingleNote, ChordNote or Rest.
type Unit interface {
	Span() (start, end int)
	Notation() Notation
	isUnit()
}

// Notation is the presentation form of a unit, keyed the way staff
// renderers expect ("C#/4", "qr.").
type Notation struct {
	Keys     []string `json:"keys"`
	Duration string   `json:"duration"`
}

// RestKey is the staff position rests are drawn at.
const RestKey = "b/4"

func Key(p pitch.Pitch) string {
	name, octave := p.Name(true)
	return fmt.Sprintf("%s/%d", name, octave)
}

type SingleNote struct {
	Pitch     pitch.Pitch
	Duration  Duration
	StartTick int
	EndTick   int
}

func (n SingleNote) Span() (int, int) { return n.StartTick, n.EndTick }

func (n SingleNote) Notation() Notation {
	return Notation{Keys: []string{Key(n.Pitch)}, Duration: n.Duration.String()}
}

func (n SingleNote) String() string {
	return fmt.Sprintf("%v/%v", n.Pitch, n.Duration)
}

func (SingleNote) isUnit() {}

type ChordNote struct {
	Pitches   []pitch.Pitch
	Duration  Duration
	StartTick int
	EndTick   int
}

func (c ChordNote) Span() (int, int) { return c.StartTick, c.EndTick }

func (c ChordNote) Notation() Notation {
	keys := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		keys[i] = Key(p)
	}
	return Notation{Keys: keys, Duration: c.Duration.String()}
}

func (c ChordNote) String() string {
	parts := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s)/%v", strings.Join(parts, " "), c.Duration)
}

func (ChordNote) isUnit() {}

type Rest struct {
	Duration  Duration
	StartTick int
	EndTick   int
}

func (r Rest) Span() (int, int) { return r.StartTick, r.EndTick }

// Notation puts the rest marker before the dots: "qr.".
func (r Rest) Notation() Notation {
	d := r.Duration.Class.String() + "r" + strings.Repeat(".", r.Duration.Dots)
	return Notation{Keys: []string{RestKey}, Duration: d}
}

func (r Rest) String() string {
	return r.Notation().Duration
}

func (Rest) isUnit() {}

// Pitches lists every sounding pitch of a unit; rests have none.
func Pitches(u Unit) []pitch.Pitch {
	switch v := u.(type) {
	case SingleNote:
		return []pitch.Pitch{v.Pitch}
	case ChordNote:
		return v.Pitches
	default:
		return nil
	}
}
