package parser

import (
	"errors"
	"testing"

	"github.com/jsphweid/melowave/chord"
	"github.com/jsphweid/melowave/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexPrefersLongestQuality(t *testing.T) {
	assert.Equal(t, []Token{{NoteLetter, "C"}, {Quality, "maj7"}}, Lex("Cmaj7"))
	assert.Equal(t, []Token{{NoteLetter, "C"}, {Quality, "m7"}}, Lex("Cm7"))
	assert.Equal(t, []Token{
		{NoteLetter, "F"}, {Accidental, "#"}, {Quality, "m7"}, {Separator, "/"}, {NoteLetter, "A"},
	}, Lex("F#m7/A"))
	assert.Equal(t, []Token{{Reject, "H"}, {Quality, "7"}}, Lex("H7"))
}

func TestParseValidSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want Symbol
	}{
		{"C", Symbol{Root: "C"}},
		{"Cmaj7", Symbol{Root: "C", Quality: "maj7"}},
		{"F#m7/A", Symbol{Root: "F#", Quality: "m7", Bass: "A"}},
		{"Bb", Symbol{Root: "Bb"}},
		{"Ebsus4", Symbol{Root: "Eb", Quality: "sus4"}},
		{"G/Bb", Symbol{Root: "G", Bass: "Bb"}},
		{"Dadd9", Symbol{Root: "D", Quality: "add9"}},
		{"A+", Symbol{Root: "A", Quality: "+"}},
		{"Cdim", Symbol{Root: "C", Quality: "dim"}},
		{"C7sus4", Symbol{Root: "C", Quality: "7sus4"}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseInvalidSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"H7", ErrInvalidChordNotation},
		{"CE", ErrInvalidChordNotation},
		{"#C", ErrInvalidChordNotation},
		{"C/", ErrInvalidChordNotation},
		{"C//E", ErrInvalidChordNotation},
		{"C/EG", ErrInvalidChordNotation},
		{"C/#E", ErrInvalidChordNotation},
		{"Cm-", ErrInvalidChordNotation},
		{"C 7", ErrInvalidChordNotation},
		{"/A", ErrMissingRootNote},
		{"", ErrMissingRootNote},
		{"m7", ErrMissingRootNote},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			_, err := Parse(c.in)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestParseChordResolvesPitches(t *testing.T) {
	c, s, err := ParseChord("F#m7/A")
	require.NoError(t, err)
	assert.Equal(t, "A", s.Bass)
	assert.Equal(t, "F#m7", c.String())

	want, err := chord.FromName("F#", "m7")
	require.NoError(t, err)
	assert.True(t, want.Equal(c), "bass must not change the pitch set")
}

func TestParseChordPropagatesModelErrors(t *testing.T) {
	_, _, err := ParseChord("C7sus4")
	assert.True(t, errors.Is(err, chord.ErrUnknownChordQuality))

	_, _, err = ParseChord("Cb")
	assert.True(t, errors.Is(err, pitch.ErrInvalidNoteName))
}

func TestParseProgressionIsAllOrNothing(t *testing.T) {
	chords, err := ParseProgression(SplitProgression("C-G-Am-F"))
	require.NoError(t, err)

	var names []string
	for _, c := range TransposeProgression(chords, 2) {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"D", "A", "Bm", "G"}, names)

	chords, err = ParseProgression([]string{"C", "H", "F"})
	assert.Nil(t, chords)
	assert.True(t, errors.Is(err, ErrInvalidChordNotation))
}

func TestSplitProgressionSkipsBlanks(t *testing.T) {
	assert.Equal(t, []string{"C", "G7", "Am"}, SplitProgression(" C - G7--Am "))
}
