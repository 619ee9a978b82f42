package token

import "fmt"

type LexicalErrorKind int

const (
	InvalidChar LexicalErrorKind = iota
	EmptyInput
)

func (k LexicalErrorKind) String() string {
	switch k {
	case InvalidChar:
		return "invalid character"
	case EmptyInput:
		return "empty formula"
	default:
		return "lexical error"
	}
}

// LexicalError aborts tokenization of a single formula.
type LexicalError struct {
	Kind   LexicalErrorKind
	Char   rune
	Pos    int
	Offset int
}

func (e *LexicalError) Error() string {
	if e.Kind == InvalidChar {
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
	}
	return e.Kind.String()
}

func (e *LexicalError) Stage() string { return "lexical" }

// Position reports the code point index of the offending character, or -1.
func (e *LexicalError) Position() int {
	if e.Kind == EmptyInput {
		return -1
	}
	return e.Pos
}
