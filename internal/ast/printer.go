package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/proplogic/internal/token"
)

const indent = "  "

// Fprint writes n in prefix order, one node per line, indented two spaces
// per level: Prop(x), AND, OR, NOT, IMPLIQUE, PRODUIT.
func Fprint(w io.Writer, n *Node) error {
	return fprint(w, n, 0)
}

func fprint(w io.Writer, n *Node, depth int) error {
	if n == nil {
		return nil
	}
	label := n.Kind.String()
	switch {
	case n.Kind == Prop:
		label = "Prop(" + n.Name + ")"
	case !n.Kind.Valid():
		label = "UNKNOWN NODE"
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(indent, depth), label); err != nil {
		return err
	}
	if err := fprint(w, n.Left, depth+1); err != nil {
		return err
	}
	return fprint(w, n.Right, depth+1)
}

// Sprint returns the Fprint rendering of n.
func Sprint(n *Node) string {
	var b strings.Builder
	_ = Fprint(&b, n)
	return b.String()
}

// Format renders n as an infix formula. Every binary sub-expression below the
// root is parenthesized, so re-parsing the result rebuilds the same tree.
// A missing operand is rendered as "_".
func Format(n *Node) string {
	var b strings.Builder
	format(&b, n, true)
	return b.String()
}

func format(b *strings.Builder, n *Node, root bool) {
	if n == nil {
		b.WriteString("_")
		return
	}
	switch {
	case n.Kind == Prop:
		b.WriteString(n.Name)
	case n.Kind == Not:
		b.WriteString(token.GlyphNot)
		format(b, n.Left, false)
	case n.Kind.Binary():
		if !root {
			b.WriteByte('(')
		}
		format(b, n.Left, false)
		b.WriteString(Operators[n.Kind].Symbol)
		format(b, n.Right, false)
		if !root {
			b.WriteByte(')')
		}
	default:
		b.WriteString("?")
	}
}

// Tokens returns the canonical token sequence of n, the one produced by
// lexing Format(n), terminated by EOF. Missing operands produce no tokens.
func Tokens(n *Node) []token.Token {
	e := &emitter{}
	e.emit(n, true)
	e.tokens = append(e.tokens, token.Token{Type: token.EOF, Pos: e.pos, Offset: e.offset})
	return e.tokens
}

type emitter struct {
	tokens []token.Token
	pos    int
	offset int
}

func (e *emitter) add(t token.Type, value string) {
	e.tokens = append(e.tokens, token.Token{Type: t, Value: value, Pos: e.pos, Offset: e.offset})
	e.pos += len([]rune(value))
	e.offset += len(value)
}

func (e *emitter) emit(n *Node, root bool) {
	if n == nil {
		return
	}
	switch {
	case n.Kind == Prop:
		e.add(token.PROP, n.Name)
	case n.Kind == Not:
		e.add(token.NOT, token.GlyphNot)
		e.emit(n.Left, false)
	case n.Kind.Binary():
		if !root {
			e.add(token.LPAREN, "(")
		}
		e.emit(n.Left, false)
		t := Operators[n.Kind].Token
		e.add(t, t.Glyph())
		e.emit(n.Right, false)
		if !root {
			e.add(token.RPAREN, ")")
		}
	}
}
