package scenario

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/sparsemat/matrix"
	"go.uber.org/zap"
)

// Result summarizes one scenario run.
type Result struct {
	Name   string
	Len    int
	Values []float64 // traversal order
	Count  int       // Evaluate result, -1 without a predicate
}

// Run builds the scenario's matrix, dumps it to w followed by the traversal
// and the predicate count, then checks any declared expectations.
// printOpts are forwarded to matrix.Fprint. A nil log discards log output.
func Run(sc *Scenario, w io.Writer, log *zap.Logger, printOpts ...matrix.PrintOption) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("scenario", sc.Name))

	m, err := matrix.New(sc.Rows, sc.Cols, sc.Default, matrix.WithCapacity(len(sc.Entries)))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	for i, e := range sc.Entries {
		if err := m.Add(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("scenario %s: entry %d: %w", sc.Name, i, err)
		}
		log.Debug("entry added",
			zap.Int("row", e.Row),
			zap.Int("col", e.Col),
			zap.Float64("value", e.Value),
			zap.Int("len", m.Len()))
	}

	res := &Result{Name: sc.Name, Len: m.Len(), Values: slices.Collect(m.Values()), Count: -1}

	if _, err := fmt.Fprintf(w, "== %s (%dx%d, default %g)\n", sc.Name, m.Rows(), m.Cols(), m.Default()); err != nil {
		return nil, err
	}
	if err := matrix.Fprint(w, m, printOpts...); err != nil {
		return nil, fmt.Errorf("scenario %s: print: %w", sc.Name, err)
	}
	for e := range m.Entries() {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return nil, err
		}
	}
	if sc.Predicate != nil {
		pred, err := sc.Predicate.Func()
		if err != nil {
			return nil, err
		}
		res.Count = matrix.Evaluate(m, pred)
		if _, err := fmt.Fprintf(w, "evaluate(%s) = %d\n", sc.Predicate, res.Count); err != nil {
			return nil, err
		}
	}

	log.Info("scenario ran",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("entries", res.Len),
		zap.Int("count", res.Count))

	if err := res.check(sc.Expect); err != nil {
		return res, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	return res, nil
}

// check compares the result against the declared expectations.
func (r *Result) check(exp *Expect) error {
	if exp == nil {
		return nil
	}
	if exp.Values != nil && !slices.Equal(exp.Values, r.Values) {
		return fmt.Errorf("%w: values %v, want %v", ErrExpectation, r.Values, exp.Values)
	}
	if exp.Len != nil && *exp.Len != r.Len {
		return fmt.Errorf("%w: len %d, want %d", ErrExpectation, r.Len, *exp.Len)
	}
	if exp.Count != nil && *exp.Count != r.Count {
		return fmt.Errorf("%w: count %d, want %d", ErrExpectation, r.Count, *exp.Count)
	}

	return nil
}
