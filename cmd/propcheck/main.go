package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/batch/report"
	"github.com/DjordjeVuckovic/proplogic/internal/batch/runner"
	"github.com/DjordjeVuckovic/proplogic/internal/batch/suite"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/sat"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/factory"
	"github.com/DjordjeVuckovic/proplogic/internal/treefile"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
	"github.com/DjordjeVuckovic/proplogic/pkg/config/env"
)

var errRejected = errors.New("input rejected")

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := env.LoadDotEnv(env.Current(), "cmd/propcheck/.env"); err != nil {
		slog.Debug("Continuing without .env", "error", err)
	}

	pipeCfg, err := pipeline.LoadEnv()
	if err != nil {
		slog.Error("Invalid pipeline configuration", "error", err)
		os.Exit(1)
	}
	if atoms := cfg.atoms(); len(atoms) > 0 {
		pipeCfg.Props = atoms
	}

	p, err := pipeline.New(pipeCfg)
	if err != nil {
		slog.Error("Failed to create pipeline", "error", err)
		os.Exit(1)
	}

	switch cfg.Mode {
	case "check":
		err = runCheck(p, cfg, os.Stdout)
	case "eval":
		err = runEval(p, cfg, os.Stdout)
	case "run":
		err = runProgram(p, cfg, os.Stdout)
	case "batch":
		err = runBatch(ctx, pipeCfg, cfg)
	case "tree":
		err = runTree(p, cfg, os.Stdout)
	case "analyze":
		err = runAnalyze(p, cfg, os.Stdout)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}

	if errors.Is(err, errRejected) {
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func requireFormula(cfg cliConfig) error {
	if cfg.Formula == "" {
		return fmt.Errorf("mode %s requires -formula", cfg.Mode)
	}
	return nil
}

// reject prints a pipeline error the way a compiler would and returns
// errRejected. Other errors are returned unchanged.
func reject(w io.Writer, err error) error {
	stage := pipeline.Stage(err)
	if stage == "" {
		return err
	}
	fmt.Fprintf(w, "rejected (%s): %v\n", stage, err)
	return errRejected
}

func runCheck(p *pipeline.Pipeline, cfg cliConfig, w io.Writer) error {
	if err := requireFormula(cfg); err != nil {
		return err
	}

	res, err := p.Check(cfg.Formula)
	if err != nil {
		return reject(w, err)
	}
	if res.Truncated {
		fmt.Fprintf(w, "warning: input truncated to %d tokens\n", len(res.Tokens))
	}

	fmt.Fprintln(w, "tokens:")
	for _, t := range res.Tokens {
		fmt.Fprintf(w, "  %4d  %s\n", t.Pos, t)
	}
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, res.Printed)
	fmt.Fprintf(w, "canonical: %s\n", ast.Format(res.Tree))
	fmt.Fprintln(w, "accepted")
	return nil
}

func runEval(p *pipeline.Pipeline, cfg cliConfig, w io.Writer) error {
	if err := requireFormula(cfg); err != nil {
		return err
	}

	if cfg.Env == "" {
		tbl, err := p.TruthTable(cfg.Formula)
		if err != nil {
			return reject(w, err)
		}
		for _, a := range tbl.Atoms {
			fmt.Fprintf(w, "%s\t", a)
		}
		fmt.Fprintln(w, "=")
		for _, row := range tbl.Rows {
			for _, v := range row.Values {
				fmt.Fprintf(w, "%s\t", vm.FormatBool(v))
			}
			fmt.Fprintln(w, vm.FormatBool(row.Result))
		}
		return nil
	}

	assignment, err := parseEnv(cfg.Env)
	if err != nil {
		return err
	}
	ev, err := p.Evaluate(cfg.Formula, assignment)
	if err != nil {
		return reject(w, err)
	}
	fmt.Fprint(w, ev.Program.String())
	fmt.Fprintln(w, "---")
	fmt.Fprint(w, ev.Output)
	return nil
}

func runProgram(p *pipeline.Pipeline, cfg cliConfig, w io.Writer) error {
	if cfg.Program == "" {
		return errors.New("mode run requires -program")
	}

	var (
		code []byte
		err  error
	)
	if cfg.Program == "-" {
		code, err = io.ReadAll(os.Stdin)
	} else {
		code, err = os.ReadFile(cfg.Program)
	}
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}

	instrs, err := vm.Assemble(string(code))
	if err != nil {
		return fmt.Errorf("failed to assemble program: %w", err)
	}

	run, err := p.RunProgram(instrs)
	if run != nil {
		fmt.Fprint(w, run.Output)
	}
	if err != nil {
		return reject(w, err)
	}
	return nil
}

func runBatch(ctx context.Context, pipeCfg pipeline.Config, cfg cliConfig) error {
	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{
		WarmupRuns: cfg.Warmup,
		Runs:       max(cfg.Runs, 1),
		Pipeline:   pipeCfg,
	})
	res, err := r.RunSuite(ctx, loaded)
	if err != nil {
		return err
	}

	rpt := report.Generate(res)
	if err := report.WriteTable(rpt, os.Stdout); err != nil {
		return err
	}
	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if cfg.Store {
		if err := storeVerdicts(ctx, res); err != nil {
			return err
		}
	}

	if _, failed := res.Counts(); failed > 0 {
		return errRejected
	}
	return nil
}

func storeVerdicts(ctx context.Context, res *runner.SuiteResult) error {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return err
	}
	store, err := factory.NewStorer(ctx, storageCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records := res.Records()
	if err := store.SaveBulk(ctx, records); err != nil {
		return fmt.Errorf("failed to store verdicts: %w", err)
	}
	slog.Info("Verdicts stored", "type", storageCfg.Type, "count", len(records))
	return nil
}

func runTree(p *pipeline.Pipeline, cfg cliConfig, w io.Writer) error {
	if cfg.Formula == "" {
		if cfg.TreePath == "" {
			return errors.New("mode tree requires -formula or -tree")
		}
		tree, err := treefile.ReadFile(cfg.TreePath)
		if err != nil {
			return err
		}
		formula := ast.Format(tree)
		if _, err := p.Check(formula); err != nil {
			return reject(w, err)
		}
		fmt.Fprintln(w, formula)
		return nil
	}

	res, err := p.Check(cfg.Formula)
	if err != nil {
		return reject(w, err)
	}
	if cfg.TreePath == "" {
		return treefile.Write(w, res.Tree)
	}
	if err := treefile.WriteFile(cfg.TreePath, res.Tree); err != nil {
		return err
	}
	slog.Info("Tree written", "path", cfg.TreePath)
	return nil
}

func runAnalyze(p *pipeline.Pipeline, cfg cliConfig, w io.Writer) error {
	if err := requireFormula(cfg); err != nil {
		return err
	}

	a, err := p.Analyze(cfg.Formula)
	if err != nil {
		return reject(w, err)
	}

	fmt.Fprintf(w, "satisfiable: %t\n", a.Satisfiable)
	if a.Satisfiable {
		fmt.Fprintf(w, "model: %s\n", formatAssignment(a.Model))
	}
	fmt.Fprintf(w, "tautology: %t\n", a.Tautology)
	if !a.Tautology {
		fmt.Fprintf(w, "counter-example: %s\n", formatAssignment(a.CounterExample))
	}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create DIMACS file: %w", err)
		}
		defer f.Close()
		if err := sat.Dimacs(f, a.Tree); err != nil {
			return err
		}
		slog.Info("DIMACS written", "path", cfg.Output)
	}
	return nil
}

func formatAssignment(m map[string]bool) string {
	atoms := make([]string, 0, len(m))
	for name := range m {
		atoms = append(atoms, name)
	}
	slices.Sort(atoms)

	parts := make([]string, 0, len(atoms))
	for _, name := range atoms {
		parts = append(parts, name+"="+vm.FormatBool(m[name]))
	}
	return strings.Join(parts, " ")
}
