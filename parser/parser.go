package parser

import (
	"errors"
	"fmt"

	"github.com/jsphweid/melowave/chord"
)

var (
	ErrInvalidChordNotation = errors.New("invalid chord notation")
	ErrMissingRootNote      = errors.New("chord must have a root note")
)

// Symbol is the syntactic form of a chord symbol. Bass is empty unless the
// symbol was a slash chord.
type Symbol struct {
	Root    string
	Quality string
	Bass    string
}

func (s Symbol) String() string {
	res := s.Root + s.Quality
	if s.Bass != "" {
		res += "/" + s.Bass
	}
	return res
}

func invalid(symbol string) error {
	return fmt.Errorf("%w: %q", ErrInvalidChordNotation, symbol)
}

func Parse(symbol string) (Symbol, error) {
	var res Symbol
	separated := false

	for _, tok := range Lex(symbol) {
		switch tok.Kind {
		case Reject:
			return Symbol{}, invalid(symbol)
		case NoteLetter:
			switch {
			case separated && res.Bass == "":
				res.Bass = tok.Value
			case !separated && res.Root == "":
				res.Root = tok.Value
			default:
				return Symbol{}, invalid(symbol)
			}
		case Accidental:
			switch {
			case separated && res.Bass != "":
				res.Bass += tok.Value
			case !separated && res.Root != "":
				res.Root += tok.Value
			default:
				return Symbol{}, invalid(symbol)
			}
		case Quality:
			res.Quality += tok.Value
		case Separator:
			if separated {
				return Symbol{}, invalid(symbol)
			}
			separated = true
		}
	}

	if res.Root == "" {
		return Symbol{}, fmt.Errorf("%w: %q", ErrMissingRootNote, symbol)
	}
	if separated && res.Bass == "" {
		return Symbol{}, invalid(symbol)
	}
	return res, nil
}

// ParseChord parses a symbol and resolves it to pitches. The bass of a
// slash chord does not change the resolved pitches.
func ParseChord(symbol string) (chord.Chord, Symbol, error) {
	s, err := Parse(symbol)
	if err != nil {
		return chord.Chord{}, Symbol{}, err
	}
	c, err := chord.FromName(s.Root, s.Quality)
	if err != nil {
		return chord.Chord{}, Symbol{}, fmt.Errorf("resolving %q: %w", symbol, err)
	}
	return c, s, nil
}
