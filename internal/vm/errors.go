package vm

import "fmt"

type ErrorKind int

const (
	StackOverflow ErrorKind = iota
	StackUnderflow
	UnknownOpcode
	ProgramTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case UnknownOpcode:
		return "unknown opcode"
	case ProgramTooLarge:
		return "program too large"
	default:
		return "vm error"
	}
}

// VMError halts the machine. PC is the index of the faulting instruction.
type VMError struct {
	Kind ErrorKind
	PC   int
	Op   Opcode
}

func (e *VMError) Error() string {
	switch e.Kind {
	case ProgramTooLarge:
		return fmt.Sprintf("%s: capacity %d reached", e.Kind, e.PC)
	case UnknownOpcode:
		return fmt.Sprintf("%s %d at pc %d", e.Kind, uint8(e.Op), e.PC)
	default:
		return fmt.Sprintf("%s at pc %d (%s)", e.Kind, e.PC, e.Op)
	}
}

func (e *VMError) Stage() string { return "vm" }

func (e *VMError) Position() int { return e.PC }
