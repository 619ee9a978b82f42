package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
)

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New(pipeline.DefaultConfig())
	require.NoError(t, err)
	return p
}

func TestRunCheck(t *testing.T) {
	p := newPipeline(t)

	var out bytes.Buffer
	require.NoError(t, runCheck(p, cliConfig{Mode: "check", Formula: "(p1⇒p2)→((¬p1)∨p2)"}, &out))
	assert.Contains(t, out.String(), "canonical: (p1⇒p2)→(¬p1∨p2)")
	assert.Contains(t, out.String(), "accepted")

	out.Reset()
	err := runCheck(p, cliConfig{Mode: "check", Formula: "(p1⇒p2"}, &out)
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out.String(), "rejected (parse)")

	assert.ErrorContains(t, runCheck(p, cliConfig{Mode: "check"}, &out), "requires -formula")
}

func TestRunEval(t *testing.T) {
	p := newPipeline(t)

	var out bytes.Buffer
	require.NoError(t, runEval(p, cliConfig{Formula: "p1⇒p2", Env: "p1=1,p2=0"}, &out))
	assert.Equal(t, "PUSH 1\nPUSH 0\nIMP\nPRINT\n---\nFAUX\n", out.String())

	out.Reset()
	require.NoError(t, runEval(p, cliConfig{Formula: "¬p1"}, &out))
	assert.Equal(t, "p1\t=\nFAUX\tVRAI\nVRAI\tFAUX\n", out.String())
}

func TestRunTree_RoundTrip(t *testing.T) {
	p := newPipeline(t)
	path := filepath.Join(t.TempDir(), "f.tree")

	var out bytes.Buffer
	require.NoError(t, runTree(p, cliConfig{Formula: "p1∧(p2∨¬p3)", TreePath: path}, &out))

	out.Reset()
	require.NoError(t, runTree(p, cliConfig{TreePath: path}, &out))
	assert.Equal(t, "p1∧(p2∨¬p3)\n", out.String())
}

func TestRunAnalyze(t *testing.T) {
	p := newPipeline(t)

	var out bytes.Buffer
	require.NoError(t, runAnalyze(p, cliConfig{Formula: "p1∧¬p1"}, &out))
	assert.Contains(t, out.String(), "satisfiable: false")
	assert.Contains(t, out.String(), "tautology: false")
	assert.Contains(t, out.String(), "counter-example: p1=")
}
