package semantic

import (
	"fmt"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
)

type ErrorKind int

const (
	UnknownProp ErrorKind = iota
	MissingOperands
	NotMissingOperand
	UnknownNode
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownProp:
		return "unknown proposition"
	case MissingOperands:
		return "operator missing operand(s)"
	case NotMissingOperand:
		return "NOT missing operand"
	case UnknownNode:
		return "unknown node type"
	default:
		return "semantic error"
	}
}

type SemanticError struct {
	Kind ErrorKind
	Node *ast.Node
}

func (e *SemanticError) Error() string {
	switch e.Kind {
	case UnknownProp:
		return fmt.Sprintf("unknown proposition '%s'", e.Node.Name)
	case MissingOperands:
		return fmt.Sprintf("operator %s missing operand(s)", e.Node.Kind)
	default:
		return e.Kind.String()
	}
}

func (e *SemanticError) Stage() string { return "semantic" }

// Position is always -1: trees carry no source positions.
func (e *SemanticError) Position() int { return -1 }
