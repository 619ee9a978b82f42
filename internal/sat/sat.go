// Package sat answers satisfiability and validity questions about expression
// trees with the gophersat boolean-formula front end.
package sat

import (
	"fmt"
	"io"

	"github.com/crillab/gophersat/bf"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
)

// Analysis summarizes what the solver found about a formula.
type Analysis struct {
	Satisfiable bool
	Tautology   bool
	// Model satisfies the formula when Satisfiable is set.
	Model map[string]bool
	// CounterExample falsifies the formula when Tautology is not set.
	CounterExample map[string]bool
}

// Convert translates n into a gophersat formula. Product is translated as
// material implication.
func Convert(n *ast.Node) (bf.Formula, error) {
	if n == nil {
		return nil, fmt.Errorf("missing operand")
	}

	switch n.Kind {
	case ast.Prop:
		return bf.Var(n.Name), nil
	case ast.Not:
		operand, err := Convert(n.Left)
		if err != nil {
			return nil, err
		}
		return bf.Not(operand), nil
	}

	if !n.Kind.Binary() {
		return nil, fmt.Errorf("unknown node type %d", n.Kind)
	}
	left, err := Convert(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := Convert(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case ast.And:
		return bf.And(left, right), nil
	case ast.Or:
		return bf.Or(left, right), nil
	default:
		return bf.Implies(left, right), nil
	}
}

// Satisfiable reports whether some assignment makes n true, and returns one.
func Satisfiable(n *ast.Node) (bool, map[string]bool, error) {
	f, err := Convert(n)
	if err != nil {
		return false, nil, err
	}
	model := bf.Solve(f)
	if model == nil {
		return false, nil, nil
	}
	return true, complete(model, n), nil
}

// Tautology reports whether every assignment makes n true. When it does not,
// the returned assignment falsifies n.
func Tautology(n *ast.Node) (bool, map[string]bool, error) {
	f, err := Convert(n)
	if err != nil {
		return false, nil, err
	}
	model := bf.Solve(bf.Not(f))
	if model == nil {
		return true, nil, nil
	}
	return false, complete(model, n), nil
}

func Analyze(n *ast.Node) (*Analysis, error) {
	sat, model, err := Satisfiable(n)
	if err != nil {
		return nil, err
	}
	taut, counter, err := Tautology(n)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Satisfiable:    sat,
		Tautology:      taut,
		Model:          model,
		CounterExample: counter,
	}, nil
}

// Dimacs writes the CNF of n in DIMACS format.
func Dimacs(w io.Writer, n *ast.Node) error {
	f, err := Convert(n)
	if err != nil {
		return err
	}
	return bf.Dimacs(f, w)
}

// complete binds every atom of n, defaulting the ones the solver dropped
// to false.
func complete(model map[string]bool, n *ast.Node) map[string]bool {
	out := make(map[string]bool, len(model))
	for _, name := range ast.Atoms(n) {
		out[name] = model[name]
	}
	return out
}
