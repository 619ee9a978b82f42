// Package compiler lowers a validated expression tree to a VM program.
package compiler

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
)

var ErrMissingOperand = errors.New("missing operand")

// CompileError reports an atom with no value in the environment.
type CompileError struct {
	Atom string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("no value bound to proposition '%s'", e.Atom)
}

func (e *CompileError) Stage() string { return "compile" }

func (e *CompileError) Position() int { return -1 }

var opcodes = map[ast.Kind]vm.Opcode{
	ast.And:     vm.AND,
	ast.Or:      vm.OR,
	ast.Not:     vm.NOT,
	ast.Implies: vm.IMP,
	ast.Product: vm.IMP,
}

// Compile lowers n into a new program of the given capacity, terminated by
// PRINT.
func Compile(n *ast.Node, env map[string]bool, size int) (*vm.Program, error) {
	prog := vm.NewProgram(size)
	if err := Lower(n, env, prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// Lower appends the post-order encoding of n followed by PRINT to prog.
// Atoms become PUSH 1 or PUSH 0 according to env.
func Lower(n *ast.Node, env map[string]bool, prog *vm.Program) error {
	if err := lower(n, env, prog); err != nil {
		return err
	}
	return prog.Append(vm.PRINT, 0)
}

func lower(n *ast.Node, env map[string]bool, prog *vm.Program) error {
	if n == nil {
		return ErrMissingOperand
	}

	if n.Kind == ast.Prop {
		v, ok := env[n.Name]
		if !ok {
			return &CompileError{Atom: n.Name}
		}
		operand := 0
		if v {
			operand = 1
		}
		return prog.Append(vm.PUSH, operand)
	}

	op, ok := opcodes[n.Kind]
	if !ok {
		return fmt.Errorf("cannot lower node of kind %s", n.Kind)
	}

	if err := lower(n.Left, env, prog); err != nil {
		return err
	}
	if n.Kind.Binary() {
		if err := lower(n.Right, env, prog); err != nil {
			return err
		}
	}
	return prog.Append(op, 0)
}
