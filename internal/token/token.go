package token

type Type int

const (
	EOF Type = iota
	PROP
	AND
	OR
	NOT
	IMPLIES
	PRODUCT
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case PROP:
		return "PROP"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case IMPLIES:
		return "IMPLIES"
	case PRODUCT:
		return "PRODUCT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
// Value holds the identifier for PROP tokens and the glyph otherwise.
// Pos is the code point index of the first character, Offset its byte offset.
type Token struct {
	Type   Type
	Value  string
	Pos    int
	Offset int
}

func (t Token) String() string {
	if t.Type == PROP {
		return "PROP(" + t.Value + ")"
	}
	return t.Type.String()
}

// Glyphs of the connectives, in lexing priority order.
const (
	GlyphAnd     = "∧" // U+2227
	GlyphOr      = "∨" // U+2228
	GlyphNot     = "¬" // U+00AC
	GlyphImplies = "⇒" // U+21D2
	GlyphProduct = "→" // U+2192
)

// Glyph returns the source text a token of type t is written with.
// PROP and EOF have no fixed glyph.
func (t Type) Glyph() string {
	switch t {
	case AND:
		return GlyphAnd
	case OR:
		return GlyphOr
	case NOT:
		return GlyphNot
	case IMPLIES:
		return GlyphImplies
	case PRODUCT:
		return GlyphProduct
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return ""
	}
}
