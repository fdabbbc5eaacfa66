package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Config declares a feed-forward topology.
type Config struct {
	InputSize   int
	HiddenSizes []int
	// OutputSize of zero means no output layer is built and the trunk's
	// hidden features are exposed directly.
	OutputSize int

	// HiddenActivation defaults to ReLU, OutputActivation to Identity.
	HiddenActivation Activation
	OutputActivation Activation

	// Init defaults to XavierNormal.
	Init Initializer
}

// MLP is an ordered composition of affine layers and activations.
// Each hidden affine transform is followed by the hidden activation;
// the output transform, if declared, by the output activation.
type MLP struct {
	seq     *Sequential
	layers  []*Linear
	inSize  int
	outSize int
}

// New builds an MLP and initializes every affine sublayer's weights.
func New(cfg Config) (*MLP, error) {
	if cfg.InputSize <= 0 {
		return nil, topologyErrorf("input size must be positive, got %d", cfg.InputSize)
	}
	if cfg.OutputSize < 0 {
		return nil, topologyErrorf("output size must be non-negative, got %d", cfg.OutputSize)
	}
	for i, h := range cfg.HiddenSizes {
		if h <= 0 {
			return nil, topologyErrorf("hidden size %d must be positive, got %d", i, h)
		}
	}

	hiddenAct := cfg.HiddenActivation
	if hiddenAct == nil {
		hiddenAct = ReLU{}
	}
	outputAct := cfg.OutputActivation
	if outputAct == nil {
		outputAct = Identity{}
	}

	m := &MLP{
		seq:    &Sequential{},
		inSize: cfg.InputSize,
	}

	prev := cfg.InputSize
	for _, next := range cfg.HiddenSizes {
		fc, err := NewLinear(prev, next)
		if err != nil {
			return nil, err
		}
		m.layers = append(m.layers, fc)
		m.seq.Modules = append(m.seq.Modules, fc, hiddenAct)
		prev = next
	}

	if cfg.OutputSize > 0 {
		fc, err := NewLinear(prev, cfg.OutputSize)
		if err != nil {
			return nil, err
		}
		m.layers = append(m.layers, fc)
		m.seq.Modules = append(m.seq.Modules, fc, outputAct)
		prev = cfg.OutputSize
	}
	m.outSize = prev

	initLayers(cfg.Init, m.layers)
	return m, nil
}

// Forward runs the network on a (batch × InputSize) input.
func (m *MLP) Forward(x *mat.Dense) (*mat.Dense, error) {
	if _, cols := x.Dims(); cols != m.inSize {
		return nil, &ShapeMismatchError{Want: m.inSize, Got: cols}
	}
	return m.seq.Forward(x)
}

// Params enumerates every owned parameter tensor, layer by layer.
func (m *MLP) Params() []*mat.Dense {
	return m.seq.Params()
}

// InputSize returns the declared input width.
func (m *MLP) InputSize() int { return m.inSize }

// OutputSize returns the width of Forward's output: the declared output
// size, or the last hidden width (or the input width) when no output
// layer was declared.
func (m *MLP) OutputSize() int { return m.outSize }

func (m *MLP) linears() []*Linear { return m.layers }
