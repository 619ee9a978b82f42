package runner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/proplogic/internal/batch/suite"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = DefaultWarmupRuns
	}
	return &Runner{config: cfg}
}

// RunSuite runs every formula case, then every program case, in file order.
// Case failures are recorded in the result; only cancellation and pipeline
// setup errors abort the run.
func (r *Runner) RunSuite(ctx context.Context, loaded *suite.LoadedSuite) (*SuiteResult, error) {
	s := loaded.Suite

	cfg := r.config.Pipeline
	if len(s.Atoms) > 0 {
		cfg.Props = s.Atoms
	}
	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure pipeline for suite %q: %w", s.Name, err)
	}

	sr := &SuiteResult{
		SuiteName: s.Name,
		Version:   s.Version,
		Config:    r.config,
	}

	for i := range s.Formulas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cr := r.runFormula(p, &s.Formulas[i], loaded.Registry, loaded.Dir)
		r.logCase(&cr)
		sr.Cases = append(sr.Cases, cr)
	}

	for i := range s.Programs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cr := r.runProgram(p, &s.Programs[i], loaded.Dir)
		r.logCase(&cr)
		sr.Cases = append(sr.Cases, cr)
	}

	passed, failed := sr.Counts()
	slog.Info("suite finished", "suite", s.Name, "passed", passed, "failed", failed)

	return sr, nil
}

func (r *Runner) runFormula(p *pipeline.Pipeline, fc *suite.FormulaCase, registry *suite.TemplateRegistry, dir string) CaseResult {
	cr := CaseResult{
		CaseID:    fc.ID,
		Kind:      verdict.KindFormula,
		Expect:    fc.Expect,
		Tautology: fc.Tautology,
	}

	formula, err := fc.Resolve(registry, dir)
	if err != nil {
		cr.Error = fmt.Errorf("resolve formula: %w", err)
		return cr
	}
	cr.Input = formula

	attempt := func() (*pipeline.Result, []bool, error) {
		if fc.Env == nil {
			res, err := p.Check(formula)
			return res, nil, err
		}
		ev, err := p.Evaluate(formula, fc.Env)
		if err != nil {
			return nil, nil, err
		}
		return ev.Result, []bool{ev.Value}, nil
	}

	var (
		res     *pipeline.Result
		results []bool
	)
	cr.Latency = r.measure(func() error {
		res, results, err = attempt()
		return err
	})

	if err != nil {
		cr.Outcome = pipeline.Stage(err)
		if cr.Outcome == "" {
			cr.Error = err
			return cr
		}
		cr.Message = err.Error()
	} else {
		cr.Outcome = outcomeAccept
		cr.Tree = res.Printed
		cr.Results = results
	}

	if cr.Outcome != string(fc.Expect) {
		cr.Failures = append(cr.Failures, fmt.Sprintf("expected %s, got %s", fc.Expect, describe(&cr)))
		return cr
	}
	if cr.Outcome != outcomeAccept {
		return cr
	}

	if fc.Want != nil && (len(results) != 1 || results[0] != *fc.Want) {
		cr.Failures = append(cr.Failures, fmt.Sprintf("expected value %s, got %s", vm.FormatBool(*fc.Want), formatResults(results)))
	}
	if fc.Tautology != nil {
		a, err := p.Analyze(formula)
		if err != nil {
			cr.Error = fmt.Errorf("analyze: %w", err)
			return cr
		}
		if a.Tautology != *fc.Tautology {
			cr.Failures = append(cr.Failures, fmt.Sprintf("expected tautology=%t, got %t", *fc.Tautology, a.Tautology))
		}
	}

	return cr
}

func (r *Runner) runProgram(p *pipeline.Pipeline, pc *suite.ProgramCase, dir string) CaseResult {
	cr := CaseResult{
		CaseID: pc.ID,
		Kind:   verdict.KindProgram,
		Expect: pc.Expect,
	}

	code, err := pc.Resolve(dir)
	if err != nil {
		cr.Error = err
		return cr
	}
	cr.Input = code

	instrs, err := vm.Assemble(code)
	if err != nil {
		cr.Error = fmt.Errorf("assemble program: %w", err)
		return cr
	}

	var run *pipeline.ProgramRun
	cr.Latency = r.measure(func() error {
		run, err = p.RunProgram(instrs)
		return err
	})

	if err != nil {
		cr.Outcome = pipeline.Stage(err)
		cr.Message = err.Error()
	} else {
		cr.Outcome = outcomeAccept
		cr.Results = run.Results
	}

	if cr.Outcome != string(pc.Expect) {
		cr.Failures = append(cr.Failures, fmt.Sprintf("expected %s, got %s", pc.Expect, describe(&cr)))
		return cr
	}
	if cr.Outcome == outcomeAccept && pc.Want != nil && !slices.Equal(pc.Want, cr.Results) {
		cr.Failures = append(cr.Failures, fmt.Sprintf("expected output %s, got %s", formatResults(pc.Want), formatResults(cr.Results)))
	}

	return cr
}

// measure calls fn WarmupRuns times untimed, then Runs times timed. The
// error of the last timed call is kept by fn's closure.
func (r *Runner) measure(fn func() error) LatencyStats {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_ = fn()
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		_ = fn()
		latencies = append(latencies, time.Since(start))
	}
	return ComputeLatencyStats(latencies)
}

func (r *Runner) logCase(cr *CaseResult) {
	switch {
	case cr.Error != nil:
		slog.Warn("case could not run", "case", cr.CaseID, "error", cr.Error)
	case len(cr.Failures) > 0:
		slog.Warn("case failed", "case", cr.CaseID, "failures", cr.Failures)
	default:
		slog.Debug("case passed", "case", cr.CaseID, "outcome", cr.Outcome)
	}
}

func describe(cr *CaseResult) string {
	if cr.Message == "" {
		return cr.Outcome
	}
	return fmt.Sprintf("%s (%s)", cr.Outcome, cr.Message)
}

func formatResults(values []bool) string {
	out := "["
	for i, v := range values {
		if i > 0 {
			out += " "
		}
		out += vm.FormatBool(v)
	}
	return out + "]"
}
