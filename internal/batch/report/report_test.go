package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/batch/runner"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

func sampleResult() *runner.SuiteResult {
	return &runner.SuiteResult{
		SuiteName: "demo",
		Version:   "1.0",
		Config:    runner.Config{Runs: 2},
		Cases: []runner.CaseResult{
			{
				CaseID:  "ok",
				Kind:    verdict.KindFormula,
				Input:   "p1∧p2",
				Expect:  "accept",
				Outcome: "accept",
				Results: []bool{true},
				Latency: runner.ComputeLatencyStats([]time.Duration{time.Millisecond, 3 * time.Millisecond}),
			},
			{
				CaseID:   "bad",
				Kind:     verdict.KindFormula,
				Input:    "p1∧",
				Expect:   "semantic",
				Outcome:  "parse",
				Failures: []string{"expected semantic, got parse"},
				Latency:  runner.ComputeLatencyStats([]time.Duration{5 * time.Millisecond}),
			},
			{
				CaseID: "broken",
				Kind:   verdict.KindProgram,
				Expect: "accept",
				Error:  errors.New("assemble program: line 1: unknown opcode \"JMP\""),
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleResult())

	assert.Equal(t, "demo", r.Meta.Suite)
	assert.Equal(t, 2, r.Meta.Runs)
	assert.Equal(t, 3, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Passed)
	assert.Equal(t, 33.33, r.Summary.PassRate)
	assert.Equal(t, 2, r.Summary.Failed)
	assert.Equal(t, 1, r.Summary.Errored)
	assert.Equal(t, 3, r.Summary.Latency.SampleCount)
	assert.Equal(t, time.Millisecond, r.Summary.Latency.Min)
	assert.Equal(t, 5*time.Millisecond, r.Summary.Latency.Max)

	require.Len(t, r.Cases, 3)
	assert.True(t, r.Cases[0].Passed)
	assert.False(t, r.Cases[1].Passed)
	assert.Contains(t, r.Cases[2].Error, "assemble program")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(Generate(sampleResult()), &buf))

	out := buf.String()
	assert.Contains(t, out, "=== Suite: demo ===")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "bad: expected semantic, got parse")
	assert.Contains(t, out, "Passed 1/3")
	assert.Contains(t, out, "VRAI")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(sampleResult()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "demo", decoded.Meta.Suite)
	assert.Equal(t, 3, decoded.Summary.Total)
	assert.Equal(t, "p1∧p2", decoded.Cases[0].Input)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "p1∧p2", truncate("p1∧p2", 10))
	assert.Equal(t, "p1∧…", truncate("p1∧p2", 4))
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "-", fmtDuration(0))
	assert.Equal(t, "1.5µs", fmtDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.50ms", fmtDuration(2500*time.Microsecond))
	assert.Equal(t, "1.20s", fmtDuration(1200*time.Millisecond))
}
