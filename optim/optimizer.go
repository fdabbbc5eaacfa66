// Package optim implements gradient-based parameter optimizers. An
// optimizer binds exclusively to one network's parameter tensors at
// construction and mutates them in place on each step.
package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Optimizer applies gradient steps to the parameters it was bound to.
// Gradients are supplied in the same order and shapes as the bound
// parameter tensors.
type Optimizer interface {
	Step(grads []*mat.Dense) error
	Params() []*mat.Dense
}

func checkGrads(params, grads []*mat.Dense) error {
	if len(grads) != len(params) {
		return fmt.Errorf("optimizer: %d gradients for %d parameter tensors", len(grads), len(params))
	}
	for i := range params {
		pr, pc := params[i].Dims()
		gr, gc := grads[i].Dims()
		if pr != gr || pc != gc {
			return fmt.Errorf("optimizer: gradient %d is (%d×%d), parameter is (%d×%d)", i, gr, gc, pr, pc)
		}
	}
	return nil
}
