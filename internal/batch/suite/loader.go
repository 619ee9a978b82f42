package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite    *TestSuite
	Registry *TemplateRegistry
	Dir      string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Formulas) == 0 && len(s.Programs) == 0 {
		return nil, fmt.Errorf("suite has no formulas or programs")
	}

	registry := NewTemplateRegistry()
	for _, t := range s.Templates {
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("register template: %w", err)
		}
	}

	seen := make(map[string]bool)
	for i := range s.Formulas {
		fc := &s.Formulas[i]
		if fc.ID == "" {
			return nil, fmt.Errorf("formula at index %d has no id", i)
		}
		if seen[fc.ID] {
			return nil, fmt.Errorf("duplicate case id %q", fc.ID)
		}
		seen[fc.ID] = true

		if fc.sources() != 1 {
			return nil, fmt.Errorf("formula %q needs exactly one of formula, tree or template", fc.ID)
		}
		if fc.Template != "" {
			if _, ok := registry.Get(fc.Template); !ok {
				return nil, fmt.Errorf("formula %q references unknown template %q", fc.ID, fc.Template)
			}
		}

		fc.Expect = normalizeExpectation(fc.Expect)
		if !validExpectations[fc.Expect] {
			return nil, fmt.Errorf("formula %q has invalid expect %q", fc.ID, fc.Expect)
		}
		if fc.Want != nil && fc.Env == nil {
			return nil, fmt.Errorf("formula %q sets want without env", fc.ID)
		}
	}

	for i := range s.Programs {
		pc := &s.Programs[i]
		if pc.ID == "" {
			return nil, fmt.Errorf("program at index %d has no id", i)
		}
		if seen[pc.ID] {
			return nil, fmt.Errorf("duplicate case id %q", pc.ID)
		}
		seen[pc.ID] = true

		if (pc.Code == "") == (pc.File == "") {
			return nil, fmt.Errorf("program %q needs exactly one of code or file", pc.ID)
		}
		pc.Expect = normalizeExpectation(pc.Expect)
		if pc.Expect != ExpectAccept && pc.Expect != ExpectVM {
			return nil, fmt.Errorf("program %q has invalid expect %q", pc.ID, pc.Expect)
		}
	}

	return &LoadedSuite{Suite: &s, Registry: registry}, nil
}
