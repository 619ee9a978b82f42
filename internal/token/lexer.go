package token

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTokens is the size of a token sequence including the EOF marker.
const DefaultMaxTokens = 100

type connective struct {
	glyph []rune
	typ   Type
}

// connectives are matched in this order before any single-character rule.
var connectives = []connective{
	{glyph: []rune(GlyphAnd), typ: AND},
	{glyph: []rune(GlyphOr), typ: OR},
	{glyph: []rune(GlyphNot), typ: NOT},
	{glyph: []rune(GlyphImplies), typ: IMPLIES},
	{glyph: []rune(GlyphProduct), typ: PRODUCT},
}

type LexerOption func(*Lexer)

// WithMaxTokens sets the sequence capacity, EOF included. Values below 2
// fall back to DefaultMaxTokens.
func WithMaxTokens(n int) LexerOption {
	return func(l *Lexer) {
		if n >= 2 {
			l.maxTokens = n
		}
	}
}

// Lexer turns a formula into tokens. A Lexer is not safe for concurrent use;
// each pipeline owns its own.
type Lexer struct {
	maxTokens int

	input     []rune
	offsets   []int
	pos       int
	truncated bool
}

func NewLexer(opts ...LexerOption) *Lexer {
	l := &Lexer{maxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize converts the input string into a slice of Tokens ending with EOF.
// Example: Input: `(p1⇒p2)→((¬p1)∨p2)`
//
// Reaching the capacity stops lexing without error; Truncated reports it.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	l.reset(input)

	if strings.TrimSpace(input) == "" {
		return nil, &LexicalError{Kind: EmptyInput}
	}

	tokens := make([]Token, 0, min(len(l.input)+1, l.maxTokens))

	for l.pos < len(l.input) {
		if len(tokens) >= l.maxTokens-1 {
			l.truncated = l.hasMoreInput()
			if l.truncated {
				slog.Warn("token limit reached, formula truncated",
					"limit", l.maxTokens, "position", l.pos)
			}
			break
		}

		if tok, ok := l.matchConnective(); ok {
			tokens = append(tokens, tok)
			continue
		}

		ch := l.input[l.pos]
		switch {
		case ch == '(':
			tokens = append(tokens, l.single(LPAREN))
		case ch == ')':
			tokens = append(tokens, l.single(RPAREN))
		case isIdentStart(ch):
			tokens = append(tokens, l.readProp())
		case unicode.IsSpace(ch):
			l.pos++
		default:
			return nil, &LexicalError{
				Kind:   InvalidChar,
				Char:   ch,
				Pos:    l.pos,
				Offset: l.offsets[l.pos],
			}
		}
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(l.input), Offset: l.offsets[len(l.input)]})
	return tokens, nil
}

// Truncated reports whether the last Tokenize call hit the token limit
// before consuming the whole input.
func (l *Lexer) Truncated() bool {
	return l.truncated
}

func (l *Lexer) MaxTokens() int {
	return l.maxTokens
}

func (l *Lexer) reset(input string) {
	l.input = []rune(input)
	l.offsets = make([]int, len(l.input)+1)
	off := 0
	for i, r := range l.input {
		l.offsets[i] = off
		off += utf8.RuneLen(r)
	}
	l.offsets[len(l.input)] = off
	l.pos = 0
	l.truncated = false
}

func (l *Lexer) matchConnective() (Token, bool) {
	for _, c := range connectives {
		if l.hasPrefix(c.glyph) {
			tok := Token{Type: c.typ, Value: string(c.glyph), Pos: l.pos, Offset: l.offsets[l.pos]}
			l.pos += len(c.glyph)
			return tok, true
		}
	}
	return Token{}, false
}

func (l *Lexer) hasPrefix(seq []rune) bool {
	if len(l.input)-l.pos < len(seq) {
		return false
	}
	for i, r := range seq {
		if l.input[l.pos+i] != r {
			return false
		}
	}
	return true
}

func (l *Lexer) single(t Type) Token {
	tok := Token{Type: t, Value: string(l.input[l.pos]), Pos: l.pos, Offset: l.offsets[l.pos]}
	l.pos++
	return tok
}

func (l *Lexer) readProp() Token {
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	return Token{Type: PROP, Value: string(l.input[start:l.pos]), Pos: start, Offset: l.offsets[start]}
}

func (l *Lexer) hasMoreInput() bool {
	for _, r := range l.input[l.pos:] {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

func isIdentStart(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
