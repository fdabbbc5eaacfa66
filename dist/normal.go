package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const log2Pi = 1.8378770664093453

// Normal is a batch of independent normal distributions: entry (i,j)
// is N(mu[i,j], sigma[i,j]).
type Normal struct {
	mu    *mat.Dense
	sigma *mat.Dense
}

// NewNormal builds a batched normal. Mu and sigma must share a shape
// and every scale entry must be strictly positive.
func NewNormal(mu, sigma *mat.Dense) (*Normal, error) {
	mr, mc := mu.Dims()
	sr, sc := sigma.Dims()
	if mr != sr || mc != sc {
		return nil, &InvalidParamsError{
			Reason: fmt.Sprintf("mu is (%d×%d) but sigma is (%d×%d)", mr, mc, sr, sc),
		}
	}
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			if s := sigma.At(i, j); s <= 0 || math.IsNaN(s) {
				return nil, &InvalidParamsError{
					Reason: fmt.Sprintf("scale must be positive, got %v at (%d,%d)", s, i, j),
				}
			}
		}
	}
	return &Normal{mu: mu, sigma: sigma}, nil
}

// Mean returns the location tensor.
func (n *Normal) Mean() *mat.Dense { return n.mu }

// StdDev returns the scale tensor.
func (n *Normal) StdDev() *mat.Dense { return n.sigma }

// Dims returns the batch shape.
func (n *Normal) Dims() (int, int) { return n.mu.Dims() }

// Sample draws one value per entry: mu + sigma*z with z ~ N(0,1).
func (n *Normal) Sample(src rand.Source) *mat.Dense {
	r, c := n.mu.Dims()
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, n.mu.At(i, j)+n.sigma.At(i, j)*unit.Rand())
		}
	}
	return out
}

// LogProb returns the elementwise log density of x.
func (n *Normal) LogProb(x *mat.Dense) (*mat.Dense, error) {
	r, c := n.mu.Dims()
	xr, xc := x.Dims()
	if xr != r || xc != c {
		return nil, fmt.Errorf("log prob: value is (%d×%d) but distribution is (%d×%d)", xr, xc, r, c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s := n.sigma.At(i, j)
			z := (x.At(i, j) - n.mu.At(i, j)) / s
			out.Set(i, j, -0.5*z*z-math.Log(s)-0.5*log2Pi)
		}
	}
	return out, nil
}
