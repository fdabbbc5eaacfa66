package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// simplexTol bounds the allowed drift of a probability row's sum from 1.
const simplexTol = 1e-6

// Categorical is a batch of categorical distributions: row i holds the
// class probabilities for sample i.
type Categorical struct {
	probs *mat.Dense
}

// NewCategorical builds a batched categorical. Every entry must be
// non-negative and every row must sum to one within tolerance.
func NewCategorical(probs *mat.Dense) (*Categorical, error) {
	r, c := probs.Dims()
	if c == 0 {
		return nil, &InvalidParamsError{Reason: "categorical needs at least one class"}
	}
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			p := probs.At(i, j)
			if p < 0 || math.IsNaN(p) {
				return nil, &InvalidParamsError{
					Reason: fmt.Sprintf("probability must be non-negative, got %v at (%d,%d)", p, i, j),
				}
			}
			sum += p
		}
		if math.Abs(sum-1) > simplexTol {
			return nil, &InvalidParamsError{
				Reason: fmt.Sprintf("row %d sums to %v, not a simplex", i, sum),
			}
		}
	}
	return &Categorical{probs: probs}, nil
}

// Probs returns the probability tensor.
func (c *Categorical) Probs() *mat.Dense { return c.probs }

// NumClasses returns the number of categories per row.
func (c *Categorical) NumClasses() int {
	_, n := c.probs.Dims()
	return n
}

// BatchSize returns the number of rows.
func (c *Categorical) BatchSize() int {
	r, _ := c.probs.Dims()
	return r
}

// Sample draws one class index per row.
func (c *Categorical) Sample(src rand.Source) []int {
	r, n := c.probs.Dims()
	out := make([]int, r)
	for i := 0; i < r; i++ {
		row := make([]float64, n)
		mat.Row(row, i, c.probs)
		d := distuv.NewCategorical(row, src)
		out[i] = int(d.Rand())
	}
	return out
}

// LogProb returns the log probability of one class per row.
func (c *Categorical) LogProb(classes []int) ([]float64, error) {
	r, n := c.probs.Dims()
	if len(classes) != r {
		return nil, fmt.Errorf("log prob: %d classes for %d rows", len(classes), r)
	}
	out := make([]float64, r)
	for i, k := range classes {
		if k < 0 || k >= n {
			return nil, fmt.Errorf("log prob: class %d out of range [0,%d)", k, n)
		}
		out[i] = math.Log(c.probs.At(i, k))
	}
	return out, nil
}
