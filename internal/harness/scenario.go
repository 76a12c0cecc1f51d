package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one concurrent-editing conformance case: two
// operations authored against the same base document, and the document
// both replicas must converge to.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Base is the shared document both operations were authored against.
	// The empty document is a valid base.
	Base string `yaml:"base"`

	// Left is the first concurrent operation in wire form. On insert
	// position ties, Left's text ends up before Right's.
	Left []any `yaml:"left"`

	// Right is the second concurrent operation in wire form.
	Right []any `yaml:"right"`

	// Merged is the expected converged document. Optional: when absent
	// the harness only asserts that both application orders agree.
	Merged *string `yaml:"merged,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "lefts:" vs "left:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Left == nil {
		return fmt.Errorf("left is required (use [] for a noop)")
	}
	if s.Right == nil {
		return fmt.Errorf("right is required (use [] for a noop)")
	}
	return nil
}
