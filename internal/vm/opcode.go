package vm

import (
	"fmt"
	"strings"
)

type Opcode uint8

const (
	NOP Opcode = iota
	PUSH
	POP
	AND
	OR
	NOT
	IMP
	PRINT
)

var opcodeNames = [...]string{
	NOP:   "NOP",
	PUSH:  "PUSH",
	POP:   "POP",
	AND:   "AND",
	OR:    "OR",
	NOT:   "NOT",
	IMP:   "IMP",
	PRINT: "PRINT",
}

func (op Opcode) String() string {
	if op.Valid() {
		return opcodeNames[op]
	}
	return fmt.Sprintf("OP(%d)", uint8(op))
}

func (op Opcode) Valid() bool {
	return int(op) < len(opcodeNames)
}

// ParseOpcode looks up an opcode by name, ignoring case.
func ParseOpcode(name string) (Opcode, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for op, n := range opcodeNames {
		if n == upper {
			return Opcode(op), nil
		}
	}
	return 0, fmt.Errorf("unknown opcode %q", name)
}

// Instruction is an opcode plus one operand; only PUSH reads the operand.
type Instruction struct {
	Op      Opcode
	Operand int
}

func (in Instruction) String() string {
	if in.Op == PUSH {
		return fmt.Sprintf("%s %d", in.Op, in.Operand)
	}
	return in.Op.String()
}
