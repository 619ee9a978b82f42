// Package vm implements a straight-line stack machine over booleans encoded
// as integers: -1 for true, 0 for false.
package vm

import (
	"fmt"
	"io"
)

const (
	// DefaultStackSize bounds the operand stack.
	DefaultStackSize = 256

	True  = -1
	False = 0
)

const (
	textTrue  = "VRAI"
	textFalse = "FAUX"
)

type Option func(*Machine)

func WithStackSize(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.stackSize = n
		}
	}
}

func WithProgramSize(n int) Option {
	return func(m *Machine) {
		m.program = NewProgram(n)
	}
}

// WithOutput sets where PRINT writes its VRAI/FAUX lines.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		if w != nil {
			m.out = w
		}
	}
}

// Machine owns its program, operand stack and program counter. Machines are
// cheap; build one per run or call Reset between runs.
type Machine struct {
	program   *Program
	stack     []int
	stackSize int
	pc        int
	out       io.Writer
}

func New(opts ...Option) *Machine {
	m := &Machine{
		program:   NewProgram(DefaultProgramSize),
		stackSize: DefaultStackSize,
		out:       io.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.stack = make([]int, 0, m.stackSize)
	return m
}

// Load appends instrs to the program.
func (m *Machine) Load(instrs ...Instruction) error {
	return m.program.AppendAll(instrs...)
}

// Emit appends a single instruction to the program.
func (m *Machine) Emit(op Opcode, operand int) error {
	return m.program.Append(op, operand)
}

func (m *Machine) Program() *Program {
	return m.program
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Reset clears the program, the stack and the program counter.
func (m *Machine) Reset() {
	m.program.Reset()
	m.stack = m.stack[:0]
	m.pc = 0
}

// Run executes the loaded program from the first instruction on an empty
// stack and returns the values consumed by PRINT, in order. The program stays
// loaded, so Run can be called again; the stack left by the last run is
// visible through Depth until then.
func (m *Machine) Run() ([]bool, error) {
	var results []bool
	m.stack = m.stack[:0]

	instrs := m.program.instrs
	for m.pc = 0; m.pc < len(instrs); m.pc++ {
		in := instrs[m.pc]
		switch in.Op {
		case NOP:
		case PUSH:
			if err := m.push(in.Operand); err != nil {
				return results, err
			}
		case POP:
			if _, err := m.pop(); err != nil {
				return results, err
			}
		case AND, OR, IMP:
			b, err := m.pop()
			if err != nil {
				return results, err
			}
			a, err := m.pop()
			if err != nil {
				return results, err
			}
			if err := m.push(binary(in.Op, a, b)); err != nil {
				return results, err
			}
		case NOT:
			a, err := m.pop()
			if err != nil {
				return results, err
			}
			if err := m.push(boolInt(a == False)); err != nil {
				return results, err
			}
		case PRINT:
			v, err := m.pop()
			if err != nil {
				return results, err
			}
			value := v == True
			results = append(results, value)
			if err := m.print(value); err != nil {
				return results, err
			}
		default:
			return results, m.fault(UnknownOpcode, in.Op)
		}
	}

	return results, nil
}

func binary(op Opcode, a, b int) int {
	switch op {
	case AND:
		return boolInt(a != False && b != False)
	case OR:
		return boolInt(a != False || b != False)
	default:
		return boolInt(a == False || b != False)
	}
}

// push canonicalizes v: any non-zero value is stored as True.
func (m *Machine) push(v int) error {
	if len(m.stack) >= m.stackSize {
		return m.fault(StackOverflow, m.program.instrs[m.pc].Op)
	}
	m.stack = append(m.stack, boolInt(v != 0))
	return nil
}

func (m *Machine) pop() (int, error) {
	if len(m.stack) == 0 {
		return 0, m.fault(StackUnderflow, m.program.instrs[m.pc].Op)
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return top, nil
}

func (m *Machine) print(v bool) error {
	text := textFalse
	if v {
		text = textTrue
	}
	if _, err := fmt.Fprintln(m.out, text); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func (m *Machine) fault(kind ErrorKind, op Opcode) *VMError {
	return &VMError{Kind: kind, PC: m.pc, Op: op}
}

func boolInt(b bool) int {
	if b {
		return True
	}
	return False
}

// FormatBool renders v the way PRINT does.
func FormatBool(v bool) string {
	if v {
		return textTrue
	}
	return textFalse
}
