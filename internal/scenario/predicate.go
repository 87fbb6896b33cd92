package scenario

import "fmt"

// Predicate is a comparison against a constant operand, e.g. {op: ">", operand: 1}.
type Predicate struct {
	Op      string  `yaml:"op"`
	Operand float64 `yaml:"operand"`
}

// String renders the predicate as "x <op> <operand>".
func (p Predicate) String() string {
	return fmt.Sprintf("x %s %g", p.Op, p.Operand)
}

// Func compiles the predicate into a closure usable with matrix.Evaluate.
func (p Predicate) Func() (func(float64) bool, error) {
	k := p.Operand
	switch p.Op {
	case ">":
		return func(x float64) bool { return x > k }, nil
	case ">=":
		return func(x float64) bool { return x >= k }, nil
	case "<":
		return func(x float64) bool { return x < k }, nil
	case "<=":
		return func(x float64) bool { return x <= k }, nil
	case "==":
		return func(x float64) bool { return x == k }, nil
	case "!=":
		return func(x float64) bool { return x != k }, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, p.Op)
}
