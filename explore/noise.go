// Package explore provides the exploration-noise schedule injected
// into the deterministic actor's actions during training.
package explore

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianNoise draws zero-mean normal noise whose sigma anneals
// linearly from MaxSigma to MinSigma over DecayPeriod steps. Samples
// are clipped to [-Clip, Clip] when Clip is positive.
type GaussianNoise struct {
	actionSize  int
	minSigma    float64
	maxSigma    float64
	decayPeriod int
	clip        float64
	src         rand.Source
}

// Config declares a noise schedule.
type Config struct {
	ActionSize  int
	MinSigma    float64
	MaxSigma    float64
	DecayPeriod int
	Clip        float64
	Src         rand.Source
}

// New validates and builds a noise schedule.
func New(cfg Config) (*GaussianNoise, error) {
	if cfg.ActionSize <= 0 {
		return nil, fmt.Errorf("explore: action size must be positive, got %d", cfg.ActionSize)
	}
	if cfg.MinSigma < 0 || cfg.MaxSigma < cfg.MinSigma {
		return nil, fmt.Errorf("explore: need 0 <= min sigma <= max sigma, got %v and %v", cfg.MinSigma, cfg.MaxSigma)
	}
	if cfg.DecayPeriod < 0 {
		return nil, fmt.Errorf("explore: decay period must be non-negative, got %d", cfg.DecayPeriod)
	}
	return &GaussianNoise{
		actionSize:  cfg.ActionSize,
		minSigma:    cfg.MinSigma,
		maxSigma:    cfg.MaxSigma,
		decayPeriod: cfg.DecayPeriod,
		clip:        cfg.Clip,
		src:         cfg.Src,
	}, nil
}

// Sigma returns the annealed scale at a training step. A zero decay
// period means the schedule is already fully decayed.
func (g *GaussianNoise) Sigma(step int) float64 {
	if g.decayPeriod == 0 {
		return g.minSigma
	}
	frac := float64(step) / float64(g.decayPeriod)
	if frac > 1 {
		frac = 1
	}
	return g.maxSigma - (g.maxSigma-g.minSigma)*frac
}

// Sample draws one noise vector for the given training step.
func (g *GaussianNoise) Sample(step int) []float64 {
	sigma := g.Sigma(step)
	out := make([]float64, g.actionSize)
	if sigma == 0 {
		return out
	}
	d := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.src}
	for i := range out {
		v := d.Rand()
		if g.clip > 0 {
			if v > g.clip {
				v = g.clip
			} else if v < -g.clip {
				v = -g.clip
			}
		}
		out[i] = v
	}
	return out
}
