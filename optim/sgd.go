package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SGD applies plain gradient descent: p -= lr * g.
type SGD struct {
	params []*mat.Dense
	lr     float64
}

// NewSGD binds a gradient-descent optimizer to the given parameters.
func NewSGD(params []*mat.Dense, lr float64) *SGD {
	return &SGD{params: params, lr: lr}
}

// Params returns the bound parameter tensors.
func (s *SGD) Params() []*mat.Dense { return s.params }

// Step applies one descent update in place.
func (s *SGD) Step(grads []*mat.Dense) error {
	if err := checkGrads(s.params, grads); err != nil {
		return err
	}
	for i, p := range s.params {
		rows, cols := p.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p.Set(r, c, p.At(r, c)-s.lr*grads[i].At(r, c))
			}
		}
	}
	return nil
}
