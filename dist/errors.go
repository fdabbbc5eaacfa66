// Package dist holds the batched probability distributions produced by
// the stochastic network heads. Each distribution validates its
// parameters at construction and rejects unusable ones.
package dist

// InvalidParamsError reports distribution parameters that do not define
// a valid distribution, such as a non-positive scale or a probability
// row that is not a simplex.
type InvalidParamsError struct {
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return "invalid distribution parameters: " + e.Reason
}
