package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Module is a single unit in a network: a pure function of its
// parameters and a batched input. Rows are samples, columns features.
type Module interface {
	Forward(x *mat.Dense) (*mat.Dense, error)
}

// Parameterized exposes the parameter tensors a unit owns, in a stable
// order. Optimizers bind to this view, and target synchronization
// copies through it.
type Parameterized interface {
	Params() []*mat.Dense
}

// Network is a module with learnable parameters.
type Network interface {
	Module
	Parameterized
}

// Sequential chains modules in order.
type Sequential struct {
	Modules []Module
}

// Forward applies each module in sequence. The result never aliases
// the input, even when the chain is empty.
func (s *Sequential) Forward(x *mat.Dense) (*mat.Dense, error) {
	if len(s.Modules) == 0 {
		return mat.DenseCopyOf(x), nil
	}
	var err error
	out := x
	for _, m := range s.Modules {
		out, err = m.Forward(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Params collects parameters from every parameterized module, in order.
func (s *Sequential) Params() []*mat.Dense {
	var ps []*mat.Dense
	for _, m := range s.Modules {
		if p, ok := m.(Parameterized); ok {
			ps = append(ps, p.Params()...)
		}
	}
	return ps
}

// NumParams counts the scalar entries across a unit's parameter tensors.
func NumParams(p Parameterized) int {
	n := 0
	for _, t := range p.Params() {
		r, c := t.Dims()
		n += r * c
	}
	return n
}
