package vm

import (
	"strings"
)

// DefaultProgramSize bounds the number of instructions of a Program.
const DefaultProgramSize = 1024

// Program is an append-only instruction sequence with a fixed capacity.
type Program struct {
	instrs   []Instruction
	capacity int
}

// NewProgram returns an empty program; a non-positive capacity means
// DefaultProgramSize.
func NewProgram(capacity int) *Program {
	if capacity <= 0 {
		capacity = DefaultProgramSize
	}
	return &Program{capacity: capacity}
}

// Append adds one instruction, failing with ProgramTooLarge when full.
func (p *Program) Append(op Opcode, operand int) error {
	if len(p.instrs) >= p.capacity {
		return &VMError{Kind: ProgramTooLarge, PC: p.capacity, Op: op}
	}
	p.instrs = append(p.instrs, Instruction{Op: op, Operand: operand})
	return nil
}

// AppendAll appends instrs in order and stops at the first failure.
func (p *Program) AppendAll(instrs ...Instruction) error {
	for _, in := range instrs {
		if err := p.Append(in.Op, in.Operand); err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) Len() int {
	return len(p.instrs)
}

func (p *Program) Cap() int {
	return p.capacity
}

// Instructions returns a copy of the program.
func (p *Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.instrs))
	copy(out, p.instrs)
	return out
}

func (p *Program) Reset() {
	p.instrs = p.instrs[:0]
}

// String disassembles the program, one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	for _, in := range p.instrs {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}
