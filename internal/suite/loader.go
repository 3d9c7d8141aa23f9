package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite *Suite
	Path  string
	Dir   string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	loaded.Path = path
	loaded.Dir = filepath.Dir(path)
	if loaded.Suite.Name == "" {
		loaded.Suite.Name = filepath.Base(path)
	}
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		switch {
		case c.Expect == "" && !c.ExpectsError():
			return nil, fmt.Errorf("case %q sets neither expect nor error", c.ID)
		case c.Expect != "" && c.ExpectsError():
			return nil, fmt.Errorf("case %q sets both expect and error", c.ID)
		}

		if c.ExpectsError() && c.Error != ErrorLexical && c.Error != ErrorSyntax {
			return nil, fmt.Errorf("case %q has unknown error kind %q", c.ID, c.Error)
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}
