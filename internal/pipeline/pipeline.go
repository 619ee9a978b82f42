// Package pipeline wires the lexer, parser, semantic validator, compiler and
// VM into one value. A Pipeline holds only configuration; every call builds
// its own lexer and machine, so one Pipeline can serve concurrent callers.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/proplogic/internal/apperr"
	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/compiler"
	"github.com/DjordjeVuckovic/proplogic/internal/parser"
	"github.com/DjordjeVuckovic/proplogic/internal/sat"
	"github.com/DjordjeVuckovic/proplogic/internal/semantic"
	"github.com/DjordjeVuckovic/proplogic/internal/token"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
)

// MaxTruthTableAtoms bounds TruthTable to 2^16 rows.
const MaxTruthTableAtoms = 16

var ErrTooManyAtoms = errors.New("too many atoms for a truth table")

type Pipeline struct {
	cfg   Config
	props *semantic.PropSet
}

func New(cfg Config) (*Pipeline, error) {
	props := semantic.NewPropSetWithCapacity(cfg.MaxProps)
	for _, name := range cfg.Props {
		if err := props.Add(name); err != nil {
			return nil, fmt.Errorf("failed to register proposition %q: %w", name, err)
		}
	}

	return &Pipeline{cfg: cfg, props: props}, nil
}

// WithProps returns a pipeline with the same limits validating against names.
func (p *Pipeline) WithProps(names []string) (*Pipeline, error) {
	cfg := p.cfg
	cfg.Props = names
	return New(cfg)
}

func (p *Pipeline) Props() []string {
	return p.props.Names()
}

func (p *Pipeline) Config() Config {
	return p.cfg
}

// Result is the outcome of an accepted formula.
type Result struct {
	Formula   string
	Tokens    []token.Token
	Truncated bool
	Tree      *ast.Node
	Printed   string
}

// Check lexes, parses and validates formula. On failure the stage error is
// returned wrapped and no partial result is produced.
func (p *Pipeline) Check(formula string) (*Result, error) {
	lexer := token.NewLexer(token.WithMaxTokens(p.cfg.MaxTokens))

	tokens, err := lexer.Tokenize(formula)
	if err != nil {
		return nil, fmt.Errorf("lexical analysis failed: %w", err)
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("syntax analysis failed: %w", err)
	}

	if err := semantic.NewValidator(p.props).Validate(tree); err != nil {
		return nil, fmt.Errorf("semantic analysis failed: %w", err)
	}

	slog.Debug("formula accepted", "formula", formula, "tokens", len(tokens), "nodes", ast.Size(tree))

	return &Result{
		Formula:   formula,
		Tokens:    tokens,
		Truncated: lexer.Truncated(),
		Tree:      tree,
		Printed:   ast.Sprint(tree),
	}, nil
}

type Evaluation struct {
	*Result
	Env     map[string]bool
	Program *vm.Program
	Value   bool
	// Output holds what PRINT wrote.
	Output string
}

// Evaluate checks formula, lowers it under env and runs it on a fresh
// machine.
func (p *Pipeline) Evaluate(formula string, env map[string]bool) (*Evaluation, error) {
	res, err := p.Check(formula)
	if err != nil {
		return nil, err
	}

	prog, err := compiler.Compile(res.Tree, env, p.cfg.ProgramSize)
	if err != nil {
		return nil, fmt.Errorf("lowering failed: %w", err)
	}

	var out bytes.Buffer
	values, err := p.run(prog.Instructions(), &out)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("program printed %d values, expected 1", len(values))
	}

	return &Evaluation{
		Result:  res,
		Env:     env,
		Program: prog,
		Value:   values[0],
		Output:  out.String(),
	}, nil
}

type Row struct {
	Values []bool
	Result bool
}

// Table lists the value of a formula under every assignment of its atoms.
// Values in a Row follow the order of Atoms.
type Table struct {
	*Result
	Atoms []string
	Rows  []Row
}

// TruthTable evaluates every assignment of the atoms the formula uses.
// Assignments are enumerated with the first atom as the most significant
// bit, starting from all false.
func (p *Pipeline) TruthTable(formula string) (*Table, error) {
	res, err := p.Check(formula)
	if err != nil {
		return nil, err
	}

	atoms := ast.Atoms(res.Tree)
	if len(atoms) > MaxTruthTableAtoms {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAtoms, len(atoms), MaxTruthTableAtoms)
	}

	rows := make([]Row, 0, 1<<len(atoms))
	for mask := 0; mask < 1<<len(atoms); mask++ {
		env := make(map[string]bool, len(atoms))
		values := make([]bool, len(atoms))
		for i, name := range atoms {
			v := mask&(1<<(len(atoms)-1-i)) != 0
			env[name] = v
			values[i] = v
		}

		prog, err := compiler.Compile(res.Tree, env, p.cfg.ProgramSize)
		if err != nil {
			return nil, fmt.Errorf("lowering failed: %w", err)
		}
		out, err := p.run(prog.Instructions(), nil)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Values: values, Result: out[0]})
	}

	return &Table{Result: res, Atoms: atoms, Rows: rows}, nil
}

type Analysis struct {
	*Result
	sat.Analysis
}

// Analyze checks formula and asks the SAT solver whether it is satisfiable
// and whether it is a tautology.
func (p *Pipeline) Analyze(formula string) (*Analysis, error) {
	res, err := p.Check(formula)
	if err != nil {
		return nil, err
	}

	a, err := sat.Analyze(res.Tree)
	if err != nil {
		return nil, fmt.Errorf("sat analysis failed: %w", err)
	}
	return &Analysis{Result: res, Analysis: *a}, nil
}

type ProgramRun struct {
	Results []bool
	Output  string
}

// RunProgram executes hand-written instructions on a fresh machine.
func (p *Pipeline) RunProgram(instrs []vm.Instruction) (*ProgramRun, error) {
	var out bytes.Buffer
	results, err := p.run(instrs, &out)
	if err != nil {
		return nil, err
	}
	return &ProgramRun{Results: results, Output: out.String()}, nil
}

func (p *Pipeline) run(instrs []vm.Instruction, out *bytes.Buffer) ([]bool, error) {
	opts := []vm.Option{
		vm.WithStackSize(p.cfg.StackSize),
		vm.WithProgramSize(p.cfg.ProgramSize),
	}
	if out != nil {
		opts = append(opts, vm.WithOutput(out))
	}

	m := vm.New(opts...)
	if err := m.Load(instrs...); err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	results, err := m.Run()
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w", err)
	}
	return results, nil
}

// Stage names the pipeline stage err comes from: lexical, parse, semantic,
// compile or vm. It returns "" for other errors.
func Stage(err error) string {
	return apperr.StageOf(err)
}
