package parser

import (
	"strings"

	"github.com/jsphweid/melowave/chord"
)

type TokenKind int

const (
	NoteLetter TokenKind = iota
	Accidental
	Quality
	Separator
	Reject
)

func (k TokenKind) String() string {
	switch k {
	case NoteLetter:
		return "note"
	case Accidental:
		return "accidental"
	case Quality:
		return "quality"
	case Separator:
		return "separator"
	default:
		return "reject"
	}
}

type Token struct {
	Kind  TokenKind
	Value string
}

// Lex splits a chord symbol into tokens, left to right. Quality suffixes
// are matched longest first so "maj7" is never read as "m" + "aj7".
func Lex(symbol string) []Token {
	var tokens []Token
	suffixes := chord.Suffixes()

	for i := 0; i < len(symbol); {
		c := symbol[i]
		switch {
		case c >= 'A' && c <= 'G':
			tokens = append(tokens, Token{NoteLetter, string(c)})
			i++
			continue
		case c == '#' || c == 'b':
			tokens = append(tokens, Token{Accidental, string(c)})
			i++
			continue
		case c == '/':
			tokens = append(tokens, Token{Separator, "/"})
			i++
			continue
		}

		matched := ""
		for _, s := range suffixes {
			if strings.HasPrefix(symbol[i:], s) {
				matched = s
				break
			}
		}
		if matched != "" {
			tokens = append(tokens, Token{Quality, matched})
			i += len(matched)
			continue
		}

		tokens = append(tokens, Token{Reject, string(c)})
		i++
	}
	return tokens
}
