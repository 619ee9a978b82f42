// Package parser builds expression trees from token sequences by recursive
// descent. Grammar, from lowest to highest precedence:
//
//	expr        → implication
//	implication → or_expr ( (IMPLIES | PRODUCT) implication )?
//	or_expr     → and_expr (OR and_expr)*
//	and_expr    → not_expr (AND not_expr)*
//	not_expr    → NOT not_expr | primary
//	primary     → PROP | LPAREN expr RPAREN
package parser

import (
	"log/slog"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/token"
)

type Parser struct {
	tokens  []token.Token
	current int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete token sequence.
func Parse(tokens []token.Token) (*ast.Node, error) {
	return New(tokens).Parse()
}

// ParseString tokenizes input with t and parses the result.
func ParseString(t token.Tokenizer, input string) (*ast.Node, error) {
	tokens, err := t.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse returns the tree of the whole sequence. No partial tree is returned
// alongside an error.
func (p *Parser) Parse() (*ast.Node, error) {
	p.current = 0

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != token.EOF {
		return nil, p.errorf(TrailingToken)
	}
	return root, nil
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	return p.parseImplication()
}

// parseImplication is right-associative: the right operand recurses into
// implication, so it absorbs every remaining IMPLIES/PRODUCT of the chain and
// the loop body runs at most once per frame.
func (p *Parser) parseImplication() (*ast.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	iterations := 0
	for p.at(token.IMPLIES) || p.at(token.PRODUCT) {
		kind := ast.Implies
		if p.at(token.PRODUCT) {
			kind = ast.Product
		}
		p.advance()

		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(kind, left, right)

		iterations++
		if iterations > 1 {
			slog.Debug("implication loop repeated", "iterations", iterations, "token", p.current)
		}
	}

	return left, nil
}

func (p *Parser) parseOr() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.at(token.OR) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewOr(left, right)
	}

	return left, nil
}

func (p *Parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.at(token.AND) {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.NewAnd(left, right)
	}

	return left, nil
}

func (p *Parser) parseNot() (*ast.Node, error) {
	if !p.at(token.NOT) {
		return p.parsePrimary()
	}
	p.advance()

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return ast.NewNot(operand), nil
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case token.PROP:
		p.advance()
		return ast.NewProp(tok.Value), nil
	case token.LPAREN:
		p.advance()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(token.RPAREN) {
			return nil, p.errorf(MissingCloseParen)
		}
		p.advance()
		return node, nil
	default:
		return nil, p.errorf(ExpectedPrimary)
	}
}

// peek returns the current token; running off the end reads as EOF.
func (p *Parser) peek() token.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) at(t token.Type) bool {
	return p.peek().Type == t
}

func (p *Parser) advance() {
	if p.peek().Type != token.EOF {
		p.current++
	}
}

func (p *Parser) errorf(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Pos: p.current, Token: p.peek()}
}
