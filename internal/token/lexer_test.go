package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tokens []Token) []Type {
	out := make([]Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Type
	}{
		{
			name:     "single proposition",
			input:    "p1",
			expected: []Type{PROP, EOF},
		},
		{
			name:     "all connectives",
			input:    "a∧b∨¬c⇒d→e",
			expected: []Type{PROP, AND, PROP, OR, NOT, PROP, IMPLIES, PROP, PRODUCT, PROP, EOF},
		},
		{
			name:  "implication as disjunction",
			input: "(p1⇒p2)→((¬p1)∨p2)",
			expected: []Type{
				LPAREN, PROP, IMPLIES, PROP, RPAREN, PRODUCT,
				LPAREN, LPAREN, NOT, PROP, RPAREN, OR, PROP, RPAREN, EOF,
			},
		},
		{
			name:     "whitespace is skipped",
			input:    "  p1 \t∧\n p2  ",
			expected: []Type{PROP, AND, PROP, EOF},
		},
		{
			name:     "double negation",
			input:    "¬¬p",
			expected: []Type{NOT, NOT, PROP, EOF},
		},
	}

	l := NewLexer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := l.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, types(tokens))
			assert.False(t, l.Truncated())
		})
	}
}

func TestLexer_PropPayload(t *testing.T) {
	tokens, err := NewLexer().Tokenize("abc12∧x9y")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "abc12", tokens[0].Value)
	assert.Equal(t, "x9y", tokens[2].Value)
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := NewLexer().Tokenize("¬p1∧q")
	require.NoError(t, err)

	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 0, tokens[0].Offset)
	assert.Equal(t, 1, tokens[1].Pos)
	assert.Equal(t, 2, tokens[1].Offset) // ¬ is two bytes
	assert.Equal(t, 3, tokens[2].Pos)
	assert.Equal(t, 4, tokens[2].Offset)
	assert.Equal(t, 4, tokens[3].Pos)
	assert.Equal(t, 7, tokens[3].Offset) // ∧ is three bytes
	assert.Equal(t, EOF, tokens[4].Type)
	assert.Equal(t, 5, tokens[4].Pos)
}

func TestLexer_InvalidCharacter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		char rune
		pos  int
	}{
		{name: "uppercase proposition", in: "(¬(P1∨p2))→((¬p1)∧(¬P2))", char: 'P', pos: 3},
		{name: "question mark", in: "(¬(¬p1))→p?a", char: '?', pos: 10},
		{name: "percent", in: "(¬(¬p%1))→p2", char: '%', pos: 5},
		{name: "leading digit", in: "1p", char: '1', pos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer().Tokenize(tt.in)
			assert.Nil(t, tokens)

			var lexErr *LexicalError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, InvalidChar, lexErr.Kind)
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.pos, lexErr.Pos)
			assert.Equal(t, "lexical", lexErr.Stage())
		})
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := NewLexer().Tokenize(in)
		var lexErr *LexicalError
		require.True(t, errors.As(err, &lexErr), "input %q", in)
		assert.Equal(t, EmptyInput, lexErr.Kind)
		assert.Equal(t, -1, lexErr.Position())
	}
}

func TestLexer_TruncatesSilently(t *testing.T) {
	input := strings.Repeat("p∧", 80) + "p"

	l := NewLexer()
	tokens, err := l.Tokenize(input)
	require.NoError(t, err)
	assert.Len(t, tokens, DefaultMaxTokens)
	assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
	assert.True(t, l.Truncated())
}

func TestLexer_TruncationIgnoresTrailingGarbage(t *testing.T) {
	l := NewLexer(WithMaxTokens(4))
	tokens, err := l.Tokenize("p∧q ∨ P?")
	require.NoError(t, err)
	assert.Equal(t, []Type{PROP, AND, PROP, EOF}, types(tokens))
	assert.True(t, l.Truncated())
}

func TestLexer_ExactlyAtCapacityIsNotTruncated(t *testing.T) {
	l := NewLexer(WithMaxTokens(4))
	tokens, err := l.Tokenize("p∧q   ")
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
	assert.False(t, l.Truncated())
}

func TestLexer_ResetBetweenRuns(t *testing.T) {
	l := NewLexer(WithMaxTokens(3))
	_, err := l.Tokenize("p∧q∧r")
	require.NoError(t, err)
	require.True(t, l.Truncated())

	_, err = l.Tokenize("p")
	require.NoError(t, err)
	assert.False(t, l.Truncated())
}
