package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"rlkit/dist"
)

// Default log-std bounds for the bounded Gaussian head.
const (
	DefaultLogStdMin = -20.0
	DefaultLogStdMax = 2.0
)

// GaussianConfig declares a bounded-Gaussian head topology.
type GaussianConfig struct {
	InputSize   int
	HiddenSizes []int
	OutputSize  int

	MuActivation Activation
	// SigmaActivation must map into [-1,1]; it defaults to Tanh.
	SigmaActivation  Activation
	HiddenActivation Activation

	ShareNet bool

	// LogStdMin/LogStdMax bound the log standard deviation. Leaving
	// both zero selects the defaults (-20, 2).
	LogStdMin float64
	LogStdMax float64

	Init Initializer
}

// GaussianMLP produces a Normal distribution whose scale is squashed
// into (exp(logStdMin), exp(logStdMax)): the raw scale branch output,
// bounded to [-1,1], is mapped affinely into [logStdMin, logStdMax]
// and exponentiated.
type GaussianMLP struct {
	body      gaussianBody
	logStdMin float64
	logStdMax float64
}

// NewGaussianMLP builds the variant selected by ShareNet and validates
// the log-std bounds.
func NewGaussianMLP(cfg GaussianConfig) (*GaussianMLP, error) {
	if cfg.OutputSize <= 0 {
		return nil, topologyErrorf("gaussian head output size must be positive, got %d", cfg.OutputSize)
	}
	lo, hi := cfg.LogStdMin, cfg.LogStdMax
	if lo == 0 && hi == 0 {
		lo, hi = DefaultLogStdMin, DefaultLogStdMax
	}
	if lo >= hi {
		return nil, topologyErrorf("log std bounds inverted: min %v >= max %v", lo, hi)
	}

	sigmaAct := cfg.SigmaActivation
	if sigmaAct == nil {
		sigmaAct = Tanh{}
	}

	var (
		body gaussianBody
		err  error
	)
	if cfg.ShareNet {
		body, err = newSharedTrunk(cfg.InputSize, cfg.HiddenSizes, cfg.OutputSize,
			cfg.MuActivation, sigmaAct, cfg.HiddenActivation, cfg.Init)
	} else {
		body, err = newSeparateNets(cfg.InputSize, cfg.HiddenSizes, cfg.OutputSize,
			cfg.MuActivation, sigmaAct, cfg.HiddenActivation, cfg.Init)
	}
	if err != nil {
		return nil, err
	}
	return &GaussianMLP{body: body, logStdMin: lo, logStdMax: hi}, nil
}

// Forward returns a Normal distribution with a strictly positive,
// bounded scale.
func (g *GaussianMLP) Forward(x *mat.Dense) (*dist.Normal, error) {
	mu, raw, err := g.body.forward(x)
	if err != nil {
		return nil, err
	}
	r, c := raw.Dims()
	std := mat.NewDense(r, c, nil)
	span := 0.5 * (g.logStdMax - g.logStdMin)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			logStd := g.logStdMin + span*(raw.At(i, j)+1)
			std.Set(i, j, math.Exp(logStd))
		}
	}
	return dist.NewNormal(mu, std)
}

// Params enumerates the parameters of every owned network.
func (g *GaussianMLP) Params() []*mat.Dense { return g.body.params() }

// Bounds returns the configured log-std interval.
func (g *GaussianMLP) Bounds() (min, max float64) {
	return g.logStdMin, g.logStdMax
}
