package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation is a stateless, parameterless elementwise transform. Each
// use site receives its own value; activations are never shared as
// mutable defaults.
type Activation interface {
	Module
	fmt.Stringer
}

// ActivationByName returns a fresh activation value for a name.
func ActivationByName(name string) (Activation, error) {
	switch name {
	case "identity", "":
		return Identity{}, nil
	case "relu":
		return ReLU{}, nil
	case "tanh":
		return Tanh{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "softmax":
		return Softmax{}, nil
	}
	return nil, fmt.Errorf("unknown activation %q", name)
}

func applyElem(x *mat.Dense, fn func(float64) float64) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return fn(v) }, x)
	return out
}

// Identity passes its input through unchanged.
type Identity struct{}

func (Identity) Forward(x *mat.Dense) (*mat.Dense, error) {
	out := mat.DenseCopyOf(x)
	return out, nil
}

func (Identity) String() string { return "identity" }

type ReLU struct{}

func (ReLU) Forward(x *mat.Dense) (*mat.Dense, error) {
	return applyElem(x, func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}), nil
}

func (ReLU) String() string { return "relu" }

type Tanh struct{}

func (Tanh) Forward(x *mat.Dense) (*mat.Dense, error) {
	return applyElem(x, math.Tanh), nil
}

func (Tanh) String() string { return "tanh" }

type Sigmoid struct{}

func (Sigmoid) Forward(x *mat.Dense) (*mat.Dense, error) {
	return applyElem(x, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	}), nil
}

func (Sigmoid) String() string { return "sigmoid" }

// Softmax normalizes each row into a probability simplex.
type Softmax struct{}

func (Softmax) Forward(x *mat.Dense) (*mat.Dense, error) {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		// subtract the row max before exponentiating
		max := x.At(i, 0)
		for j := 1; j < c; j++ {
			if v := x.At(i, j); v > max {
				max = v
			}
		}
		sum := 0.0
		for j := 0; j < c; j++ {
			e := math.Exp(x.At(i, j) - max)
			out.Set(i, j, e)
			sum += e
		}
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)/sum)
		}
	}
	return out, nil
}

func (Softmax) String() string { return "softmax" }
