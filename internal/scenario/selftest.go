package scenario

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/sparsemat/matrix"
	"go.uber.org/zap"
)

// ErrSelfTest is returned by SelfTest when at least one check failed.
var ErrSelfTest = errors.New("scenario: self-test failed")

// Check is one named self-test step.
type Check struct {
	Name string
	Run  func() error
}

// Suite is a titled group of checks.
type Suite struct {
	Title  string
	Checks []Check
}

// Builtin returns the demonstration suites: a primitive value type, a string
// value type, in that order.
func Builtin() []Suite {
	return []Suite{
		{
			Title: "PRIMITIVE TYPE",
			Checks: []Check{
				{"ADD", checkAddFloat},
				{"OVERWRITE", checkOverwriteFloat},
				{"GET", checkGetFloat},
				{"EVALUATE", checkEvaluateFloat},
			},
		},
		{
			Title: "COMPLEX TYPE",
			Checks: []Check{
				{"ADD", checkAddString},
				{"OVERWRITE", checkOverwriteString},
				{"GET", checkGetString},
				{"EVALUATE", checkEvaluateString},
			},
		},
	}
}

// SelfTest runs suites, writing "NAME: PASSED" or "NAME: FAILED (...)" per
// check, then a pretty-printed 3×3 matrix. It returns ErrSelfTest if any
// check failed.
func SelfTest(w io.Writer, log *zap.Logger, suites []Suite, printOpts ...matrix.PrintOption) error {
	if log == nil {
		log = zap.NewNop()
	}
	failed := 0
	for _, s := range suites {
		fmt.Fprintf(w, "=== TESTING %s: ===\n", s.Title)
		for _, c := range s.Checks {
			if err := c.Run(); err != nil {
				failed++
				fmt.Fprintf(w, "%s: FAILED (%v)\n", c.Name, err)
				log.Warn("check failed", zap.String("suite", s.Title), zap.String("check", c.Name), zap.Error(err))

				continue
			}
			fmt.Fprintf(w, "%s: PASSED\n", c.Name)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "=== TESTING PRETTY PRINTING: ===")
	pm, err := prettyMatrix()
	if err != nil {
		return err
	}
	if err := matrix.Fprint(w, pm, printOpts...); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d check(s)", ErrSelfTest, failed)
	}
	log.Info("self-test passed", zap.Int("suites", len(suites)))

	return nil
}

// ---------- fixtures ----------

func floatBase() (*matrix.Sparse[float64], error) {
	m, err := matrix.New(10, 10, 0.0)
	if err != nil {
		return nil, err
	}
	err = errors.Join(m.Add(0, 1, 1.2), m.Add(9, 9, 0), m.Add(3, 2, 5.3))

	return m, err
}

func floatOverwritten() (*matrix.Sparse[float64], error) {
	m, err := floatBase()
	if err != nil {
		return nil, err
	}

	return m, m.Add(9, 9, 1.3)
}

func stringBase() (*matrix.Sparse[string], error) {
	m, err := matrix.New(10, 10, "")
	if err != nil {
		return nil, err
	}
	err = errors.Join(m.Add(0, 1, "ciao"), m.Add(9, 9, "come"), m.Add(3, 2, "va"))

	return m, err
}

func stringOverwritten() (*matrix.Sparse[string], error) {
	m, err := stringBase()
	if err != nil {
		return nil, err
	}

	return m, errors.Join(m.Add(9, 9, "test"), m.Add(3, 5, ""))
}

func prettyMatrix() (*matrix.Sparse[int], error) {
	m, err := matrix.New(3, 3, 0)
	if err != nil {
		return nil, err
	}
	err = errors.Join(
		m.Add(0, 0, 3), m.Add(0, 1, 2), m.Add(0, 2, 5),
		m.Add(1, 0, 6), m.Add(1, 2, 10),
		m.Add(2, 0, 32), m.Add(2, 1, 47), m.Add(2, 2, 50),
	)

	return m, err
}

// expectValues compares the traversal of m with want.
func expectValues[T comparable](m *matrix.Sparse[T], want ...T) error {
	if got := slices.Collect(m.Values()); !slices.Equal(got, want) {
		return fmt.Errorf("traversal %v, want %v", got, want)
	}

	return nil
}

// expectEqual compares a single value.
func expectEqual[T comparable](what string, got, want T) error {
	if got != want {
		return fmt.Errorf("%s = %v, want %v", what, got, want)
	}

	return nil
}

// ---------- checks ----------

func checkAddFloat() error {
	m, err := floatBase()
	if err != nil {
		return err
	}

	return expectValues(m, 1.2, 5.3, 0)
}

func checkOverwriteFloat() error {
	m, err := floatOverwritten()
	if err != nil {
		return err
	}

	return errors.Join(expectValues(m, 1.2, 5.3, 1.3), expectEqual("len", m.Len(), 3))
}

func checkGetFloat() error {
	m, err := floatOverwritten()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("at(9,9)", m.At(9, 9), 1.3),
		expectEqual("at(3,5)", m.At(3, 5), m.Default()),
	)
}

func checkEvaluateFloat() error {
	m, err := floatOverwritten()
	if err != nil {
		return err
	}

	return expectEqual("evaluate(x > 1)", matrix.Evaluate(m, func(x float64) bool { return x > 1 }), 3)
}

func checkAddString() error {
	m, err := stringBase()
	if err != nil {
		return err
	}

	return expectValues(m, "ciao", "va", "come")
}

func checkOverwriteString() error {
	m, err := stringBase()
	if err != nil {
		return err
	}
	if err := m.Add(9, 9, "test"); err != nil {
		return err
	}

	return expectValues(m, "ciao", "va", "test")
}

func checkGetString() error {
	m, err := stringOverwritten()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("at(9,9)", m.At(9, 9), "test"),
		expectEqual("at(3,5)", m.At(3, 5), m.Default()),
	)
}

func checkEvaluateString() error {
	m, err := stringOverwritten()
	if err != nil {
		return err
	}

	return expectEqual(`evaluate(x == "ciao")`, matrix.Evaluate(m, func(x string) bool { return x == "ciao" }), 1)
}
