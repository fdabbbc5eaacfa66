package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Linear is a fully-connected affine layer: y = xWᵀ + b.
// W is (out × in), B is (1 × out). The layer owns both exclusively.
type Linear struct {
	W *mat.Dense
	B *mat.Dense

	inSize  int
	outSize int
}

// NewLinear allocates a zeroed (inDim → outDim) layer. Weights are set
// afterwards by an explicit initializer pass.
func NewLinear(inDim, outDim int) (*Linear, error) {
	if inDim <= 0 {
		return nil, topologyErrorf("linear input size must be positive, got %d", inDim)
	}
	if outDim <= 0 {
		return nil, topologyErrorf("linear output size must be positive, got %d", outDim)
	}
	return &Linear{
		W:       mat.NewDense(outDim, inDim, nil),
		B:       mat.NewDense(1, outDim, nil),
		inSize:  inDim,
		outSize: outDim,
	}, nil
}

// InputSize returns the layer's fan-in.
func (l *Linear) InputSize() int { return l.inSize }

// OutputSize returns the layer's fan-out.
func (l *Linear) OutputSize() int { return l.outSize }

// Forward computes y = xWᵀ + b for a (batch × in) input.
func (l *Linear) Forward(x *mat.Dense) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if cols != l.inSize {
		return nil, &ShapeMismatchError{Want: l.inSize, Got: cols}
	}
	out := mat.NewDense(rows, l.outSize, nil)
	out.Mul(x, l.W.T())
	for i := 0; i < rows; i++ {
		for j := 0; j < l.outSize; j++ {
			out.Set(i, j, out.At(i, j)+l.B.At(0, j))
		}
	}
	return out, nil
}

// Params returns the weight matrix and bias row.
func (l *Linear) Params() []*mat.Dense {
	return []*mat.Dense{l.W, l.B}
}
