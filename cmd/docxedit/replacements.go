package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Replacement is one old -> new text substitution
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// ReplacementFile is the YAML file accepted by `docxedit replace -config`
//
//	replacements:
//	  - old: "#NAME#"
//	    new: "Ada Lovelace"
type ReplacementFile struct {
	Replacements []Replacement `yaml:"replacements"`
}

// LoadReplacements reads and validates a replacement file
func LoadReplacements(path string) ([]Replacement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replacement file: %w", err)
	}

	var file ReplacementFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse replacement file: %w", err)
	}

	if err := validateReplacements(file.Replacements); err != nil {
		return nil, err
	}
	return file.Replacements, nil
}

// ParsePairs turns positional arguments old1 new1 old2 new2 ... into
// replacements
func ParsePairs(args []string) ([]Replacement, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("replacement arguments must come in old/new pairs, got %d", len(args))
	}
	var out []Replacement
	for i := 0; i < len(args); i += 2 {
		out = append(out, Replacement{Old: args[i], New: args[i+1]})
	}
	if err := validateReplacements(out); err != nil {
		return nil, err
	}
	return out, nil
}

func validateReplacements(rs []Replacement) error {
	seen := make(map[string]bool, len(rs))
	for i, r := range rs {
		if r.Old == "" {
			return fmt.Errorf("replacement %d: old text cannot be empty", i+1)
		}
		if seen[r.Old] {
			return fmt.Errorf("replacement %d: duplicate old text %q", i+1, r.Old)
		}
		seen[r.Old] = true
	}
	return nil
}
