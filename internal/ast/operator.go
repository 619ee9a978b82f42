package ast

import (
	"fmt"

	"github.com/DjordjeVuckovic/proplogic/internal/token"
)

// Operator describes a connective: how many operands it takes, how it is
// written and its truth function.
type Operator struct {
	Arity  int
	Symbol string
	Token  token.Type
	Eval   func(args ...bool) bool
}

// Operators maps each connective kind to its pure evaluation function.
// Product is evaluated as material implication, like Implies.
var Operators = map[Kind]Operator{
	And: {
		Arity: 2, Symbol: token.GlyphAnd, Token: token.AND,
		Eval: func(args ...bool) bool { return args[0] && args[1] },
	},
	Or: {
		Arity: 2, Symbol: token.GlyphOr, Token: token.OR,
		Eval: func(args ...bool) bool { return args[0] || args[1] },
	},
	Not: {
		Arity: 1, Symbol: token.GlyphNot, Token: token.NOT,
		Eval: func(args ...bool) bool { return !args[0] },
	},
	Implies: {
		Arity: 2, Symbol: token.GlyphImplies, Token: token.IMPLIES,
		Eval: implication,
	},
	Product: {
		Arity: 2, Symbol: token.GlyphProduct, Token: token.PRODUCT,
		Eval: implication,
	},
}

func implication(args ...bool) bool {
	return !args[0] || args[1]
}

// Eval computes the truth value of n under env.
func Eval(n *Node, env map[string]bool) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("missing operand")
	}
	if n.Kind == Prop {
		v, ok := env[n.Name]
		if !ok {
			return false, fmt.Errorf("unbound proposition %q", n.Name)
		}
		return v, nil
	}

	op, ok := Operators[n.Kind]
	if !ok {
		return false, fmt.Errorf("unknown node type %d", n.Kind)
	}

	operands := []*Node{n.Left, n.Right}[:op.Arity]
	args := make([]bool, 0, op.Arity)
	for _, child := range operands {
		v, err := Eval(child, env)
		if err != nil {
			return false, err
		}
		args = append(args, v)
	}
	return op.Eval(args...), nil
}
