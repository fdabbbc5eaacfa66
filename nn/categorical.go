package nn

import (
	"gonum.org/v1/gonum/mat"

	"rlkit/dist"
)

// CategoricalConfig declares a categorical head topology.
type CategoricalConfig struct {
	InputSize   int
	HiddenSizes []int
	OutputSize  int

	// OutputActivation must map each row onto a probability simplex;
	// it defaults to Softmax.
	OutputActivation Activation
	HiddenActivation Activation

	Init Initializer
}

// CategoricalMLP produces a categorical distribution over OutputSize
// classes per batch row.
type CategoricalMLP struct {
	fc *MLP
}

// NewCategoricalMLP wraps a single MLP whose output activation yields
// class probabilities.
func NewCategoricalMLP(cfg CategoricalConfig) (*CategoricalMLP, error) {
	if cfg.OutputSize <= 0 {
		return nil, topologyErrorf("categorical head output size must be positive, got %d", cfg.OutputSize)
	}
	outputAct := cfg.OutputActivation
	if outputAct == nil {
		outputAct = Softmax{}
	}
	fc, err := New(Config{
		InputSize:        cfg.InputSize,
		HiddenSizes:      cfg.HiddenSizes,
		OutputSize:       cfg.OutputSize,
		HiddenActivation: cfg.HiddenActivation,
		OutputActivation: outputAct,
		Init:             cfg.Init,
	})
	if err != nil {
		return nil, err
	}
	return &CategoricalMLP{fc: fc}, nil
}

// Forward returns a categorical distribution parameterized by the
// wrapped network's output rows.
func (c *CategoricalMLP) Forward(x *mat.Dense) (*dist.Categorical, error) {
	probs, err := c.fc.Forward(x)
	if err != nil {
		return nil, err
	}
	return dist.NewCategorical(probs)
}

// Params enumerates the wrapped network's parameters.
func (c *CategoricalMLP) Params() []*mat.Dense { return c.fc.Params() }
