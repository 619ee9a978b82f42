package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/proplogic/internal/token"
)

type ErrorKind int

const (
	MissingCloseParen ErrorKind = iota
	ExpectedPrimary
	TrailingToken
)

func (k ErrorKind) String() string {
	switch k {
	case MissingCloseParen:
		return "missing closing parenthesis"
	case ExpectedPrimary:
		return "expected proposition or opening parenthesis"
	case TrailingToken:
		return "unexpected token after expression end"
	default:
		return "syntax error"
	}
}

// ParseError reports the first syntax error of a token sequence. Pos is the
// index of the failing token in the sequence.
type ParseError struct {
	Kind  ErrorKind
	Pos   int
	Token token.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at token %d (%s): %s", e.Pos, e.Token, e.Kind)
}

func (e *ParseError) Stage() string { return "parse" }

func (e *ParseError) Position() int { return e.Pos }
