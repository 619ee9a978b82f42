package dto

import (
	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/token"
)

type FormulaRequest struct {
	Formula string `json:"formula" example:"(p1⇒p2)→((¬p1)∨p2)"`
	// Atoms replaces the server's valid propositions for this request.
	Atoms []string `json:"atoms,omitempty"`
}

type EvaluateRequest struct {
	FormulaRequest
	Env map[string]bool `json:"env"`
}

type Token struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Pos   int    `json:"pos"`
}

type CheckResponse struct {
	Formula   string  `json:"formula"`
	Tokens    []Token `json:"tokens"`
	Truncated bool    `json:"truncated"`
	// Canonical is the fully parenthesized form of the tree.
	Canonical string `json:"canonical"`
	Tree      string `json:"tree"`
}

type EvaluateResponse struct {
	CheckResponse
	Env     map[string]bool `json:"env"`
	Program []string        `json:"program"`
	Value   bool            `json:"value"`
	Output  string          `json:"output"`
}

type TruthTableRow struct {
	Values []bool `json:"values"`
	Result bool   `json:"result"`
}

type TruthTableResponse struct {
	CheckResponse
	Atoms []string        `json:"atoms"`
	Rows  []TruthTableRow `json:"rows"`
}

type AnalyzeResponse struct {
	CheckResponse
	Satisfiable    bool            `json:"satisfiable"`
	Tautology      bool            `json:"tautology"`
	Model          map[string]bool `json:"model,omitempty"`
	CounterExample map[string]bool `json:"counterExample,omitempty"`
}

func FromTokens(tokens []token.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Token{Type: t.Type.String(), Value: t.Value, Pos: t.Pos})
	}
	return out
}

func FromResult(r *pipeline.Result) CheckResponse {
	return CheckResponse{
		Formula:   r.Formula,
		Tokens:    FromTokens(r.Tokens),
		Truncated: r.Truncated,
		Canonical: ast.Format(r.Tree),
		Tree:      r.Printed,
	}
}

func FromEvaluation(ev *pipeline.Evaluation) EvaluateResponse {
	instrs := ev.Program.Instructions()
	program := make([]string, 0, len(instrs))
	for _, in := range instrs {
		program = append(program, in.String())
	}
	return EvaluateResponse{
		CheckResponse: FromResult(ev.Result),
		Env:           ev.Env,
		Program:       program,
		Value:         ev.Value,
		Output:        ev.Output,
	}
}

func FromTable(t *pipeline.Table) TruthTableResponse {
	rows := make([]TruthTableRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, TruthTableRow{Values: r.Values, Result: r.Result})
	}
	return TruthTableResponse{CheckResponse: FromResult(t.Result), Atoms: t.Atoms, Rows: rows}
}

func FromAnalysis(a *pipeline.Analysis) AnalyzeResponse {
	return AnalyzeResponse{
		CheckResponse:  FromResult(a.Result),
		Satisfiable:    a.Satisfiable,
		Tautology:      a.Tautology,
		Model:          a.Model,
		CounterExample: a.CounterExample,
	}
}
