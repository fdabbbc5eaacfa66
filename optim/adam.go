package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adam default moment decay rates and denominator offset.
const (
	DefaultBeta1   = 0.9
	DefaultBeta2   = 0.999
	DefaultEpsilon = 1e-8
)

// Adam keeps per-parameter first and second moment estimates and
// applies bias-corrected adaptive steps.
type Adam struct {
	params []*mat.Dense
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64

	m []*mat.Dense
	v []*mat.Dense
	t int
}

// NewAdam binds an Adam optimizer to the given parameter tensors.
func NewAdam(params []*mat.Dense, lr float64) *Adam {
	a := &Adam{
		params: params,
		lr:     lr,
		beta1:  DefaultBeta1,
		beta2:  DefaultBeta2,
		eps:    DefaultEpsilon,
	}
	for _, p := range params {
		r, c := p.Dims()
		a.m = append(a.m, mat.NewDense(r, c, nil))
		a.v = append(a.v, mat.NewDense(r, c, nil))
	}
	return a
}

// Params returns the bound parameter tensors.
func (a *Adam) Params() []*mat.Dense { return a.params }

// LearningRate returns the configured step size.
func (a *Adam) LearningRate() float64 { return a.lr }

// Step applies one Adam update in place.
func (a *Adam) Step(grads []*mat.Dense) error {
	if err := checkGrads(a.params, grads); err != nil {
		return err
	}
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))
	for i, p := range a.params {
		rows, cols := p.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g := grads[i].At(r, c)
				m := a.beta1*a.m[i].At(r, c) + (1-a.beta1)*g
				v := a.beta2*a.v[i].At(r, c) + (1-a.beta2)*g*g
				a.m[i].Set(r, c, m)
				a.v[i].Set(r, c, v)
				mHat := m / c1
				vHat := v / c2
				p.Set(r, c, p.At(r, c)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
			}
		}
	}
	return nil
}
