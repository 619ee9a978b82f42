package vm

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Assemble parses one instruction per line: an opcode name, case-insensitive,
// optionally followed by an integer operand. Text after '#' is a comment and
// blank lines are skipped.
func Assemble(text string) ([]Instruction, error) {
	var instrs []Instruction

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		src := sc.Text()
		if i := strings.IndexByte(src, '#'); i >= 0 {
			src = src[:i]
		}
		fields := strings.Fields(src)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: too many fields", line)
		}

		op, err := ParseOpcode(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		in := Instruction{Op: op}
		if len(fields) == 2 {
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid operand %q", line, fields[1])
			}
			in.Operand = v
		} else if op == PUSH {
			return nil, fmt.Errorf("line %d: PUSH needs an operand", line)
		}
		instrs = append(instrs, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	return instrs, nil
}

// MustAssemble is Assemble for fixed programs; it panics on error.
func MustAssemble(text string) []Instruction {
	instrs, err := Assemble(text)
	if err != nil {
		panic(err)
	}
	return instrs
}
