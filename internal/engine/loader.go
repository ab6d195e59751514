package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules RuleTable `yaml:"rules"`
}

// LoadRules decodes a YAML rule document of the form
//
//	rules:
//	  - name: greeting
//	    triggers: [hello, hi]
//	    response: Hello!
//	  - name: fallback
//	    response: How can I help?
//
// The table is not validated; pass it to New.
func LoadRules(r io.Reader) (RuleTable, error) {
	var doc ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	return doc.Rules, nil
}

// LoadRulesFile reads a YAML rule document from disk.
func LoadRulesFile(path string) (RuleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	return LoadRules(f)
}

// FromFile loads and validates a rule document in one step.
func FromFile(path string) (*Engine, error) {
	table, err := LoadRulesFile(path)
	if err != nil {
		return nil, err
	}
	e, err := New(table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
