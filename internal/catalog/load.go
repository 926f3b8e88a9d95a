package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region file-format

// File is the YAML document shape for an external catalog.
type File struct {
	Questions      []Question      `yaml:"questions"`
	Clarifications []Clarification `yaml:"clarifications,omitempty"`
}

// RulesFile is the YAML document shape for external rule tables.
type RulesFile struct {
	Tables []RuleTable `yaml:"tables"`
}

// #endregion file-format

// #region load-catalog

// Load parses a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("catalog has no questions")
	}
	return New(f.Questions, f.Clarifications)
}

// LoadFile reads and parses a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(data)
}

// #endregion load-catalog

// #region load-rules

// LoadRules parses a YAML rule-table document keyed by table name.
func LoadRules(data []byte) (map[string]RuleTable, error) {
	var f RulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	tables := make(map[string]RuleTable, len(f.Tables))
	for _, t := range f.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("rule table with empty name")
		}
		tables[t.Name] = t
	}
	return tables, nil
}

// #endregion load-rules
