package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidScenario is returned by Validate for malformed scenario files.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownOperator is returned for predicate operators outside > >= < <= == !=.
	ErrUnknownOperator = errors.New("scenario: unknown predicate operator")

	// ErrExpectation is returned by Run when a declared expectation does not hold.
	ErrExpectation = errors.New("scenario: expectation failed")
)

// Scenario describes one float64 matrix and what to do with it.
type Scenario struct {
	Name      string      `yaml:"name"`
	Rows      int         `yaml:"rows"`
	Cols      int         `yaml:"cols"`
	Default   float64     `yaml:"default"`
	Entries   []EntrySpec `yaml:"entries"`
	Predicate *Predicate  `yaml:"predicate,omitempty"`
	Expect    *Expect     `yaml:"expect,omitempty"`
}

// EntrySpec is one Add call, applied in file order.
type EntrySpec struct {
	Row   int     `yaml:"row"`
	Col   int     `yaml:"col"`
	Value float64 `yaml:"value"`
}

// Expect lists optional assertions checked after the scenario ran.
type Expect struct {
	Values []float64 `yaml:"values,omitempty"` // traversal order
	Len    *int      `yaml:"len,omitempty"`
	Count  *int      `yaml:"count,omitempty"` // Evaluate result; requires a predicate
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a YAML document and validates it.
func Parse(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return sc, nil
}

// Validate checks the fields that Run cannot recover from.
// Out-of-range entries are deliberately not rejected here: Run reports them
// through the matrix's own bounds check.
func (sc *Scenario) Validate() error {
	if sc.Rows < 0 || sc.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidScenario, sc.Rows, sc.Cols)
	}
	if sc.Predicate != nil {
		if _, err := sc.Predicate.Func(); err != nil {
			return err
		}
	}
	if sc.Expect != nil && sc.Expect.Count != nil && sc.Predicate == nil {
		return fmt.Errorf("%w: expect.count needs a predicate", ErrInvalidScenario)
	}
	if sc.Name == "" {
		sc.Name = fmt.Sprintf("%dx%d", sc.Rows, sc.Cols)
	}

	return nil
}
