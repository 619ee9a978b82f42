package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/batch/suite"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

const demoSuite = `
name: demo
version: "1.0"
atoms: [p1, p2]
templates:
  - id: excluded-middle
    formula: "{{a}}∨¬{{a}}"
formulas:
  - id: implication-as-disjunction
    formula: "(p1⇒p2)→((¬p1)∨p2)"
    env: {p1: true, p2: false}
    want: true
    tautology: true
  - id: uppercase
    formula: "(¬(P1∨p2))→((¬p1)∧(¬P2))"
    expect: lexical
  - id: open-paren
    formula: "(p1⇒p2"
    expect: parse
  - id: unknown-atom
    formula: "p1∧p3"
    expect: semantic
  - id: unbound
    formula: "p1∧p2"
    env: {p1: true}
    expect: compile
  - id: middle
    template: excluded-middle
    params: {a: p2}
    tautology: true
programs:
  - id: mixed
    code: |
      PUSH 1
      PUSH 0
      AND
      PUSH 1
      NOT
      PUSH 1
      OR
      IMP
      PRINT
    want: [true]
  - id: underflow
    code: PRINT
    expect: vm
`

func load(t *testing.T, yaml string) *suite.LoadedSuite {
	t.Helper()
	loaded, err := suite.Parse([]byte(yaml))
	require.NoError(t, err)
	return loaded
}

func TestRunSuite_AllPass(t *testing.T) {
	r := New(Config{Runs: 3, WarmupRuns: 1, Pipeline: DefaultConfig().Pipeline})

	res, err := r.RunSuite(context.Background(), load(t, demoSuite))
	require.NoError(t, err)

	require.Len(t, res.Cases, 8)
	for _, cr := range res.Cases {
		assert.True(t, cr.Passed(), "case %s: %v %v", cr.CaseID, cr.Failures, cr.Error)
		assert.Equal(t, 3, cr.Latency.SampleCount, cr.CaseID)
	}

	passed, failed := res.Counts()
	assert.Equal(t, 8, passed)
	assert.Zero(t, failed)

	first := res.Cases[0]
	assert.Equal(t, "accept", first.Outcome)
	assert.Equal(t, []bool{true}, first.Results)
	assert.Contains(t, first.Tree, "PRODUIT")

	assert.Equal(t, "lexical", res.Cases[1].Outcome)
	assert.Contains(t, res.Cases[1].Message, "position 3")
	assert.Equal(t, "p2∨¬p2", res.Cases[5].Input)
}

func TestRunSuite_Failures(t *testing.T) {
	yaml := `
name: failing
atoms: [p1, p2]
formulas:
  - id: wrong-stage
    formula: "p1∧"
    expect: semantic
  - id: wrong-value
    formula: "p1∧p2"
    env: {p1: true, p2: false}
    want: true
  - id: not-tautology
    formula: "p1⇒p2"
    tautology: true
  - id: missing-tree
    tree: nowhere.tree
programs:
  - id: wrong-output
    code: "PUSH 0\nPRINT"
    want: [true]
  - id: bad-asm
    code: JMP 2
`
	res, err := New(DefaultConfig()).RunSuite(context.Background(), load(t, yaml))
	require.NoError(t, err)
	require.Len(t, res.Cases, 6)

	assert.Contains(t, res.Cases[0].Failures[0], "expected semantic, got parse")
	assert.Contains(t, res.Cases[1].Failures[0], "expected value VRAI, got [FAUX]")
	assert.Contains(t, res.Cases[2].Failures[0], "expected tautology=true, got false")
	assert.Error(t, res.Cases[3].Error)
	assert.Contains(t, res.Cases[4].Failures[0], "expected output [VRAI], got [FAUX]")
	assert.ErrorContains(t, res.Cases[5].Error, "assemble program")

	passed, failed := res.Counts()
	assert.Zero(t, passed)
	assert.Equal(t, 6, failed)
}

func TestRunSuite_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).RunSuite(ctx, load(t, demoSuite))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSuite_TooManyAtoms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipeline.MaxProps = 1

	_, err := New(cfg).RunSuite(context.Background(), load(t, demoSuite))
	assert.ErrorContains(t, err, "configure pipeline")
}

func TestSuiteResult_Records(t *testing.T) {
	res, err := New(DefaultConfig()).RunSuite(context.Background(), load(t, demoSuite))
	require.NoError(t, err)

	records := res.Records()
	require.Len(t, records, 8)

	assert.Equal(t, "demo", records[0].Suite)
	assert.Equal(t, "implication-as-disjunction", records[0].CaseID)
	assert.True(t, records[0].Accepted)
	assert.Equal(t, verdict.KindFormula, records[0].Kind)

	assert.False(t, records[1].Accepted)
	assert.Equal(t, "lexical", records[1].Stage)

	assert.Equal(t, verdict.KindProgram, records[6].Kind)
	assert.Equal(t, []bool{true}, records[6].Results)
	assert.Equal(t, "vm", records[7].Stage)
}

func TestRunSuite_ShippedDemo(t *testing.T) {
	loaded, err := suite.LoadFromFile("../../../configs/suites/demo.yaml")
	require.NoError(t, err)

	res, err := New(DefaultConfig()).RunSuite(context.Background(), loaded)
	require.NoError(t, err)

	for _, cr := range res.Cases {
		assert.True(t, cr.Passed(), "case %s: %v %v", cr.CaseID, cr.Failures, cr.Error)
	}
	passed, _ := res.Counts()
	assert.Equal(t, 13, passed)
}
