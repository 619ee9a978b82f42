// Package semantic checks parsed trees against a whitelist of atoms and the
// arity of every operator.
package semantic

import (
	"github.com/DjordjeVuckovic/proplogic/internal/ast"
)

type Validator struct {
	props *PropSet
}

func NewValidator(props *PropSet) *Validator {
	if props == nil {
		props = NewPropSet()
	}
	return &Validator{props: props}
}

// Validate walks n in post-order, so the deepest problem is reported first,
// and stops at the first error. A nil tree is accepted.
func (v *Validator) Validate(n *ast.Node) error {
	if n == nil {
		return nil
	}
	if err := v.Validate(n.Left); err != nil {
		return err
	}
	if err := v.Validate(n.Right); err != nil {
		return err
	}

	switch n.Kind {
	case ast.Prop:
		if !v.props.Contains(n.Name) {
			return &SemanticError{Kind: UnknownProp, Node: n}
		}
	case ast.And, ast.Or, ast.Implies, ast.Product:
		if n.Left == nil || n.Right == nil {
			return &SemanticError{Kind: MissingOperands, Node: n}
		}
	case ast.Not:
		if n.Operand() == nil {
			return &SemanticError{Kind: NotMissingOperand, Node: n}
		}
	default:
		return &SemanticError{Kind: UnknownNode, Node: n}
	}
	return nil
}

func (v *Validator) Props() *PropSet {
	return v.props
}
