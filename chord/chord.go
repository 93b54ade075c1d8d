package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/melowave/pitch"
)

var (
	ErrInvalidChord        = errors.New("a chord must have at least 2 notes")
	ErrUnknownChordQuality = errors.New("unknown chord quality")
)

// ReferenceOctave is where a bare root name is placed when building a
// chord from its name.
const ReferenceOctave = 4

// Chord is an ordered set of pitches; the first one is the root.
type Chord struct {
	pitches []pitch.Pitch
}

// Name is a resolved chord name. Root uses the sharp spelling.
type Name struct {
	Root   string
	Suffix string
}

func (n Name) String() string {
	return n.Root + n.Suffix
}

func New(pitches []pitch.Pitch) (Chord, error) {
	if len(pitches) < 2 {
		return Chord{}, fmt.Errorf("%w: got %v", ErrInvalidChord, len(pitches))
	}
	p := make([]pitch.Pitch, len(pitches))
	copy(p, pitches)
	return Chord{pitches: p}, nil
}

func FromName(root string, suffix string) (Chord, error) {
	rootPitch, err := pitch.FromName(root, ReferenceOctave)
	if err != nil {
		return Chord{}, err
	}
	intervals, ok := IntervalsOf(suffix)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownChordQuality, suffix)
	}
	var pitches []pitch.Pitch
	for _, interval := range intervals {
		pitches = append(pitches, rootPitch.Transpose(interval-1))
	}
	return New(pitches)
}

// Root is the first pitch, or pitch 0 for the zero Chord.
func (c Chord) Root() pitch.Pitch {
	if len(c.pitches) == 0 {
		return 0
	}
	return c.pitches[0]
}

func (c Chord) Pitches() []pitch.Pitch {
	res := make([]pitch.Pitch, len(c.pitches))
	copy(res, c.pitches)
	return res
}

// ResolveName matches the chord's intervals from its root against the
// catalogue. ok is false when no quality matches.
func (c Chord) ResolveName() (n Name, ok bool) {
	if len(c.pitches) == 0 {
		return Name{}, false
	}
	root := c.Root()
	intervals := make(Intervals, 0, len(c.pitches))
	for _, p := range c.pitches {
		intervals = append(intervals, int(p-root)+1)
	}
	sort.Ints(intervals)

	suffix, ok := SuffixOf(intervals)
	if !ok {
		return Name{}, false
	}
	rootName, _ := root.Name(true)
	return Name{Root: rootName, Suffix: suffix}, true
}

func (c Chord) Transpose(semitones int) Chord {
	res := make([]pitch.Pitch, len(c.pitches))
	for i, p := range c.pitches {
		res[i] = p.Transpose(semitones)
	}
	return Chord{pitches: res}
}

func (c Chord) Equal(o Chord) bool {
	if len(c.pitches) != len(o.pitches) {
		return false
	}
	for i := range c.pitches {
		if c.pitches[i] != o.pitches[i] {
			return false
		}
	}
	return true
}

func (c Chord) String() string {
	if n, ok := c.ResolveName(); ok {
		return n.String()
	}
	return "Unknown"
}
