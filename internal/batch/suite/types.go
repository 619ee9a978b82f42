package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
	"github.com/DjordjeVuckovic/proplogic/internal/treefile"
)

// Expectation is the outcome a formula case is expected to reach: accept, or
// the name of the stage expected to reject it.
type Expectation string

const (
	ExpectAccept   Expectation = "accept"
	ExpectLexical  Expectation = "lexical"
	ExpectParse    Expectation = "parse"
	ExpectSemantic Expectation = "semantic"
	ExpectCompile  Expectation = "compile"
	ExpectVM       Expectation = "vm"
)

var validExpectations = map[Expectation]bool{
	ExpectAccept:   true,
	ExpectLexical:  true,
	ExpectParse:    true,
	ExpectSemantic: true,
	ExpectCompile:  true,
	ExpectVM:       true,
}

type TestSuite struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Version     string             `yaml:"version"`
	Atoms       []string           `yaml:"atoms"`
	Templates   []*FormulaTemplate `yaml:"templates,omitempty"`
	Formulas    []FormulaCase      `yaml:"formulas"`
	Programs    []ProgramCase      `yaml:"programs"`
}

// FormulaCase takes its formula from exactly one of Formula, Tree (a tree
// file relative to the suite) or Template.
type FormulaCase struct {
	ID          string          `yaml:"id"`
	Description string          `yaml:"description"`
	Formula     string          `yaml:"formula,omitempty"`
	Tree        string          `yaml:"tree,omitempty"`
	Template    string          `yaml:"template,omitempty"`
	Params      TemplateParams  `yaml:"params,omitempty"`
	Expect      Expectation     `yaml:"expect"`
	Env         map[string]bool `yaml:"env,omitempty"`
	Want        *bool           `yaml:"want,omitempty"`
	Tautology   *bool           `yaml:"tautology,omitempty"`
}

type ProgramCase struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Code        string      `yaml:"code,omitempty"`
	File        string      `yaml:"file,omitempty"`
	Expect      Expectation `yaml:"expect"`
	Want        []bool      `yaml:"want,omitempty"`
}

func (fc *FormulaCase) sources() int {
	n := 0
	for _, s := range []string{fc.Formula, fc.Tree, fc.Template} {
		if s != "" {
			n++
		}
	}
	return n
}

// Resolve returns the formula text of the case. Tree files are rendered back
// to infix notation with ast.Format and go through the lexer again when the
// case runs: atom names in a tree file are only checked there, so a
// "PROP P1" line is reported as a lexical rejection rather than a tree-file
// error, and a rendered tree is subject to the lexer's token cap.
func (fc *FormulaCase) Resolve(registry *TemplateRegistry, suiteDir string) (string, error) {
	switch {
	case fc.Formula != "":
		return fc.Formula, nil
	case fc.Tree != "":
		tree, err := treefile.ReadFile(resolvePath(fc.Tree, suiteDir))
		if err != nil {
			return "", fmt.Errorf("read tree for %q: %w", fc.ID, err)
		}
		return ast.Format(tree), nil
	case fc.Template != "":
		if registry == nil {
			return "", fmt.Errorf("formula %q uses template %q but no registry provided", fc.ID, fc.Template)
		}
		return registry.Render(fc.Template, fc.Params)
	default:
		return "", fmt.Errorf("formula %q has no formula, tree or template", fc.ID)
	}
}

// Resolve returns the assembly text of the case.
func (pc *ProgramCase) Resolve(suiteDir string) (string, error) {
	if pc.File == "" {
		return pc.Code, nil
	}
	data, err := os.ReadFile(resolvePath(pc.File, suiteDir))
	if err != nil {
		return "", fmt.Errorf("read program file for %q: %w", pc.ID, err)
	}
	return string(data), nil
}

func resolvePath(path, suiteDir string) string {
	if filepath.IsAbs(path) || suiteDir == "" {
		return path
	}
	return filepath.Join(suiteDir, path)
}

func normalizeExpectation(e Expectation) Expectation {
	if e == "" {
		return ExpectAccept
	}
	return Expectation(strings.ToLower(string(e)))
}
