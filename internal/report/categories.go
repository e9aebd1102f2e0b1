// Package report cross-tabulates annotation labels and renders the
// frequency heatmap.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Categories fixes the axis order of the heatmap. Labels found in the
// data but absent here are reported as undefined and excluded from the
// plot.
type Categories struct {
	Methods []string `yaml:"methods"`
	DMIS    []string `yaml:"dmis"`
}

// DefaultCategories returns the expected label vocabulary of the
// annotation prompts.
func DefaultCategories() Categories {
	return Categories{
		Methods: []string{
			"Amplification",
			"Borrowing",
			"Established equivalent",
			"Reduction",
			"Description",
			"Generalization",
			"Adaptation",
			"Literal translation",
			"Particularization",
		},
		DMIS: []string{
			"Denial",
			"Minimization",
			"Acceptance",
			"Adaptation",
		},
	}
}

// LoadCategories reads a YAML axis-order override. Either list may be
// omitted, in which case the default order is kept.
func LoadCategories(path string) (Categories, error) {
	cats := DefaultCategories()

	b, err := os.ReadFile(path)
	if err != nil {
		return cats, fmt.Errorf("failed to read categories file: %w", err)
	}

	var override Categories
	if err := yaml.Unmarshal(b, &override); err != nil {
		return cats, fmt.Errorf("failed to parse categories file: %w", err)
	}

	if len(override.Methods) > 0 {
		cats.Methods = override.Methods
	}
	if len(override.DMIS) > 0 {
		cats.DMIS = override.DMIS
	}
	return cats, nil
}
