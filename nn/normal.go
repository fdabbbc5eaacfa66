package nn

import (
	"gonum.org/v1/gonum/mat"

	"rlkit/dist"
)

// branch is a single linear projection with its own output activation,
// hanging off a shared trunk.
type branch struct {
	fc  *Linear
	act Activation
}

func newBranch(inDim, outDim int, act Activation, init Initializer) (*branch, error) {
	fc, err := NewLinear(inDim, outDim)
	if err != nil {
		return nil, err
	}
	initLayers(init, []*Linear{fc})
	if act == nil {
		act = Identity{}
	}
	return &branch{fc: fc, act: act}, nil
}

func (b *branch) forward(x *mat.Dense) (*mat.Dense, error) {
	h, err := b.fc.Forward(x)
	if err != nil {
		return nil, err
	}
	return b.act.Forward(h)
}

// gaussianBody produces the raw (mu, sigma) pair for the distribution
// heads. Exactly one variant is selected at construction and is
// immutable thereafter.
type gaussianBody interface {
	forward(x *mat.Dense) (mu, sigma *mat.Dense, err error)
	params() []*mat.Dense
}

// sharedTrunk feeds one hidden trunk into two linear branches.
type sharedTrunk struct {
	trunk *MLP
	mu    *branch
	sigma *branch
}

func newSharedTrunk(inDim int, hidden []int, outDim int, muAct, sigmaAct, hiddenAct Activation, init Initializer) (*sharedTrunk, error) {
	trunk, err := New(Config{
		InputSize:        inDim,
		HiddenSizes:      hidden,
		HiddenActivation: hiddenAct,
		Init:             init,
	})
	if err != nil {
		return nil, err
	}
	mu, err := newBranch(trunk.OutputSize(), outDim, muAct, init)
	if err != nil {
		return nil, err
	}
	sigma, err := newBranch(trunk.OutputSize(), outDim, sigmaAct, init)
	if err != nil {
		return nil, err
	}
	return &sharedTrunk{trunk: trunk, mu: mu, sigma: sigma}, nil
}

func (s *sharedTrunk) forward(x *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	h, err := s.trunk.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	mu, err := s.mu.forward(h)
	if err != nil {
		return nil, nil, err
	}
	sigma, err := s.sigma.forward(h)
	if err != nil {
		return nil, nil, err
	}
	return mu, sigma, nil
}

func (s *sharedTrunk) params() []*mat.Dense {
	ps := s.trunk.Params()
	ps = append(ps, s.mu.fc.Params()...)
	ps = append(ps, s.sigma.fc.Params()...)
	return ps
}

// separateNets holds two fully independent networks, one per output.
type separateNets struct {
	mu    *MLP
	sigma *MLP
}

func newSeparateNets(inDim int, hidden []int, outDim int, muAct, sigmaAct, hiddenAct Activation, init Initializer) (*separateNets, error) {
	mu, err := New(Config{
		InputSize:        inDim,
		HiddenSizes:      hidden,
		OutputSize:       outDim,
		HiddenActivation: hiddenAct,
		OutputActivation: muAct,
		Init:             init,
	})
	if err != nil {
		return nil, err
	}
	sigma, err := New(Config{
		InputSize:        inDim,
		HiddenSizes:      hidden,
		OutputSize:       outDim,
		HiddenActivation: hiddenAct,
		OutputActivation: sigmaAct,
		Init:             init,
	})
	if err != nil {
		return nil, err
	}
	return &separateNets{mu: mu, sigma: sigma}, nil
}

func (s *separateNets) forward(x *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	mu, err := s.mu.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	sigma, err := s.sigma.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	return mu, sigma, nil
}

func (s *separateNets) params() []*mat.Dense {
	return append(s.mu.Params(), s.sigma.Params()...)
}

// fixedUnitScale builds only a mean network; the scale is a tensor of
// ones shaped like mu, with no learnable parameters.
type fixedUnitScale struct {
	mu *MLP
}

func (f *fixedUnitScale) forward(x *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	mu, err := f.mu.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	r, c := mu.Dims()
	ones := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ones.Set(i, j, 1)
		}
	}
	return mu, ones, nil
}

func (f *fixedUnitScale) params() []*mat.Dense { return f.mu.Params() }

// NormalConfig declares a normal-distribution head topology.
type NormalConfig struct {
	InputSize   int
	HiddenSizes []int
	OutputSize  int

	MuActivation     Activation
	SigmaActivation  Activation
	HiddenActivation Activation

	// ShareNet selects one trunk with two linear branches instead of
	// two independent networks.
	ShareNet bool
	// StdOnes drops the scale branch entirely; sigma is synthesized as
	// ones at forward time.
	StdOnes bool

	Init Initializer
}

// NormalMLP produces a Normal distribution over its output units.
//
// The head applies no clamping to sigma: with an identity sigma
// activation the raw projection can go non-positive, and the forward
// pass then fails with dist.InvalidParamsError. Callers that need a
// guaranteed-positive scale should use GaussianMLP.
type NormalMLP struct {
	body gaussianBody
}

// NewNormalMLP builds the variant selected by the config flags.
// StdOnes takes precedence over ShareNet, as only a mean network
// exists in that case.
func NewNormalMLP(cfg NormalConfig) (*NormalMLP, error) {
	if cfg.OutputSize <= 0 {
		return nil, topologyErrorf("normal head output size must be positive, got %d", cfg.OutputSize)
	}

	var body gaussianBody
	switch {
	case cfg.StdOnes:
		mu, err := New(Config{
			InputSize:        cfg.InputSize,
			HiddenSizes:      cfg.HiddenSizes,
			OutputSize:       cfg.OutputSize,
			HiddenActivation: cfg.HiddenActivation,
			OutputActivation: cfg.MuActivation,
			Init:             cfg.Init,
		})
		if err != nil {
			return nil, err
		}
		body = &fixedUnitScale{mu: mu}
	case cfg.ShareNet:
		st, err := newSharedTrunk(cfg.InputSize, cfg.HiddenSizes, cfg.OutputSize,
			cfg.MuActivation, cfg.SigmaActivation, cfg.HiddenActivation, cfg.Init)
		if err != nil {
			return nil, err
		}
		body = st
	default:
		sn, err := newSeparateNets(cfg.InputSize, cfg.HiddenSizes, cfg.OutputSize,
			cfg.MuActivation, cfg.SigmaActivation, cfg.HiddenActivation, cfg.Init)
		if err != nil {
			return nil, err
		}
		body = sn
	}
	return &NormalMLP{body: body}, nil
}

// Forward returns a Normal distribution parameterized per batch row.
func (n *NormalMLP) Forward(x *mat.Dense) (*dist.Normal, error) {
	mu, sigma, err := n.body.forward(x)
	if err != nil {
		return nil, err
	}
	return dist.NewNormal(mu, sigma)
}

// Params enumerates the parameters of every owned network.
func (n *NormalMLP) Params() []*mat.Dense { return n.body.params() }
