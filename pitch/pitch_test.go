package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTripsForSharpAndFlatSpellings(t *testing.T) {
	for octave := -1; octave <= 8; octave++ {
		for i := range Sharps {
			name := fmt.Sprintf("%v%v", Sharps[i], octave)
			t.Run(name, func(t *testing.T) {
				p, err := FromName(Sharps[i], octave)
				require.NoError(t, err)

				n, o := p.Name(true)
				assert.Equal(t, Sharps[i], n)
				assert.Equal(t, octave, o)

				n, o = p.Name(false)
				assert.Equal(t, Flats[i], n)
				assert.Equal(t, octave, o)

				fromFlat, err := FromName(Flats[i], octave)
				require.NoError(t, err)
				assert.Equal(t, p, fromFlat)
			})
		}
	}
}

func TestSpellingTablesHaveTwelveDistinctClasses(t *testing.T) {
	seenSharps := map[string]bool{}
	seenFlats := map[string]bool{}
	for i := range Sharps {
		seenSharps[Sharps[i]] = true
		seenFlats[Flats[i]] = true
	}
	assert.Len(t, seenSharps, 12)
	assert.Len(t, seenFlats, 12)
}

func TestFromNameRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"H", "c", "Cb", "E#", "C##", ""} {
		_, err := FromName(name, 4)
		assert.True(t, errors.Is(err, ErrInvalidNoteName), name)
	}
}

func TestNegativePitchesFloorTheOctave(t *testing.T) {
	assert := assert.New(t)
	p := Pitch(-1)
	assert.Equal(-1, p.Octave())
	assert.Equal(11, p.Class())
	assert.Equal("B-1", p.String())

	p = Pitch(-12)
	assert.Equal(-1, p.Octave())
	assert.Equal(0, p.Class())
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	c4, _ := FromName("C", 4)
	assert.Equal("E4", c4.Transpose(4).String())
	assert.Equal("A3", c4.Transpose(-3).String())
	assert.Equal("Bb3", c4.Transpose(-2).FlatString())
	assert.Equal(c4, c4.Transpose(0))
	assert.Equal(c4.Transpose(5).Transpose(-9), c4.Transpose(-4))
}

func TestMIDIConversion(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", FromMIDI(60).String())
	assert.Equal("A4", FromMIDI(69).String())
	assert.Equal("C-1", FromMIDI(0).String())
	assert.Equal(64, FromMIDI(64).MIDI())
}
