package project

import (
	"fmt"
	"strconv"
	"strings"
)

// Hyperparams holds the fixed hyperparameter set for a TD3
// continuous-control experiment.
type Hyperparams struct {
	Gamma float64 `mapstructure:"gamma"`
	Tau   float64 `mapstructure:"tau"`

	// Exploration noise schedule
	MinSigma         float64 `mapstructure:"min_sigma"`
	MaxSigma         float64 `mapstructure:"max_sigma"`
	NoiseDecayPeriod int     `mapstructure:"noise_decay_period"`

	// Target policy smoothing
	NoiseStd  float64 `mapstructure:"noise_std"`
	NoiseClip float64 `mapstructure:"noise_clip"`

	PolicyUpdatePeriod int `mapstructure:"policy_update_period"`
	BatchSize          int `mapstructure:"batch_size"`
	MemorySize         int `mapstructure:"memory_size"`
	MaxEpisodeSteps    int `mapstructure:"max_episode_steps"`

	ActorLR  float64 `mapstructure:"actor_lr"`
	CriticLR float64 `mapstructure:"critic_lr"`

	ActorHiddenSizes  []int `mapstructure:"actor_hidden_sizes"`
	CriticHiddenSizes []int `mapstructure:"critic_hidden_sizes"`
}

// DefaultHyperparams returns the standard TD3 recipe.
func DefaultHyperparams() Hyperparams {
	return Hyperparams{
		Gamma:              0.99,
		Tau:                0.995,
		MinSigma:           0.1,
		MaxSigma:           0.1,
		NoiseDecayPeriod:   0,
		NoiseStd:           0.2,
		NoiseClip:          0.5,
		PolicyUpdatePeriod: 2,
		BatchSize:          100,
		MemorySize:         1000000,
		MaxEpisodeSteps:    2000,
		ActorLR:            0.001,
		CriticLR:           0.001,
		ActorHiddenSizes:   []int{400, 300},
		CriticHiddenSizes:  []int{400, 300},
	}
}

// Validate checks the hyperparameter set is usable.
func (h Hyperparams) Validate() error {
	if h.Gamma <= 0 || h.Gamma > 1 {
		return fmt.Errorf("gamma must be in (0,1], got %v", h.Gamma)
	}
	if h.Tau < 0 || h.Tau > 1 {
		return fmt.Errorf("tau must be in [0,1], got %v", h.Tau)
	}
	if h.MinSigma < 0 || h.MaxSigma < h.MinSigma {
		return fmt.Errorf("need 0 <= min_sigma <= max_sigma, got %v and %v", h.MinSigma, h.MaxSigma)
	}
	if h.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", h.BatchSize)
	}
	if h.MemorySize < h.BatchSize {
		return fmt.Errorf("memory_size %d is smaller than batch_size %d", h.MemorySize, h.BatchSize)
	}
	if h.PolicyUpdatePeriod <= 0 {
		return fmt.Errorf("policy_update_period must be positive, got %d", h.PolicyUpdatePeriod)
	}
	if h.MaxEpisodeSteps <= 0 {
		return fmt.Errorf("max_episode_steps must be positive, got %d", h.MaxEpisodeSteps)
	}
	if h.ActorLR <= 0 || h.CriticLR <= 0 {
		return fmt.Errorf("learning rates must be positive, got %v and %v", h.ActorLR, h.CriticLR)
	}
	for _, s := range h.ActorHiddenSizes {
		if s <= 0 {
			return fmt.Errorf("actor hidden sizes must be positive, got %v", h.ActorHiddenSizes)
		}
	}
	for _, s := range h.CriticHiddenSizes {
		if s <= 0 {
			return fmt.Errorf("critic hidden sizes must be positive, got %v", h.CriticHiddenSizes)
		}
	}
	return nil
}

// ParseHiddenSizes parses a space-separated width list such as
// "400 300" into layer sizes.
func ParseHiddenSizes(s string) ([]int, error) {
	parts := strings.Fields(s)
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("hidden sizes: %w", err)
		}
		sizes[i] = n
	}
	return sizes, nil
}
