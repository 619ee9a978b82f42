package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/proplogic/internal/semantic"
)

type cliConfig struct {
	Mode      string
	Formula   string
	Atoms     string
	Env       string
	Program   string
	SuitePath string
	Output    string
	TreePath  string
	Runs      int
	Warmup    int
	Store     bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "check", "Run mode: check, eval, run, batch, tree or analyze")
	flag.StringVar(&cfg.Formula, "formula", "", "Formula to process")
	flag.StringVar(&cfg.Atoms, "atoms", "", "Valid propositions, comma-separated (default from VALID_PROPS or p1,p2,p3)")
	flag.StringVar(&cfg.Env, "env", "", "Assignment for eval, e.g. p1=1,p2=false; empty prints the truth table")
	flag.StringVar(&cfg.Program, "program", "", "Path to an assembly file for run mode, - for stdin")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/demo.yaml", "Path to batch suite YAML")
	flag.StringVar(&cfg.Output, "output", "", "Output path (JSON report in batch mode, DIMACS in analyze mode)")
	flag.StringVar(&cfg.TreePath, "tree", "", "Tree file: written from -formula, or read when -formula is empty")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations per case")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.BoolVar(&cfg.Store, "store", false, "Save batch verdicts to the store selected by STORAGE_TYPE")

	flag.Parse()
	return cfg
}

func (c cliConfig) atoms() []string {
	return semantic.ParsePropList(c.Atoms)
}

// parseEnv reads "name=value" pairs separated by commas. Values accept
// anything strconv.ParseBool does.
func parseEnv(s string) (map[string]bool, error) {
	env := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q, expected name=value", part)
		}
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", strings.TrimSpace(name), err)
		}
		env[strings.TrimSpace(name)] = v
	}
	return env, nil
}
