// Package project assembles a TD3 continuous-control experiment: it
// declares the hyperparameter set, builds the actor and twin-critic
// networks with their target copies, binds one optimizer per live
// network, and hands the bundle to the learning-algorithm
// collaborator.
package project

import (
	"fmt"

	"github.com/rs/zerolog"

	"rlkit/explore"
	"rlkit/nn"
	"rlkit/optim"
	"rlkit/replay"
)

// Models is the network bundle the learning algorithm operates on.
// Target networks are structurally identical to their live
// counterparts and own independent parameter tensors; at assembly time
// they hold a hard copy of the live values.
type Models struct {
	Actor       *nn.MLP
	TargetActor *nn.MLP

	Critic1       *nn.MLP
	Critic2       *nn.MLP
	TargetCritic1 *nn.MLP
	TargetCritic2 *nn.MLP

	ActorOptim   *optim.Adam
	Critic1Optim *optim.Adam
	Critic2Optim *optim.Adam
}

// Algorithm is the TD3 collaborator. It owns all reads and writes to
// the bundle after assembly: gradient steps, soft target updates, and
// target-policy noise injection.
type Algorithm interface {
	SelectAction(state []float64) ([]float64, error)
	Update(step int) error
}

// Project is an assembled experiment.
type Project struct {
	Env         EnvSpec
	Hyperparams Hyperparams
	Models      *Models
	Buffer      *replay.Buffer
	Noise       *explore.GaussianNoise

	logger zerolog.Logger
}

// New assembles the experiment: networks, optimizers, target
// synchronization, replay buffer, and noise schedule.
func New(env EnvSpec, hp Hyperparams, logger zerolog.Logger) (*Project, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if err := hp.Validate(); err != nil {
		return nil, fmt.Errorf("hyperparams: %w", err)
	}

	models, err := buildModels(env, hp)
	if err != nil {
		return nil, err
	}

	buffer, err := replay.New(hp.MemorySize, env.StateSize, env.ActionSize)
	if err != nil {
		return nil, err
	}

	noise, err := explore.New(explore.Config{
		ActionSize:  env.ActionSize,
		MinSigma:    hp.MinSigma,
		MaxSigma:    hp.MaxSigma,
		DecayPeriod: hp.NoiseDecayPeriod,
		Clip:        hp.NoiseClip,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("env", env.ID).
		Int("state_size", env.StateSize).
		Int("action_size", env.ActionSize).
		Int("actor_params", nn.NumParams(models.Actor)).
		Int("critic_params", nn.NumParams(models.Critic1)).
		Msg("experiment assembled")

	return &Project{
		Env:         env,
		Hyperparams: hp,
		Models:      models,
		Buffer:      buffer,
		Noise:       noise,
		logger:      logger,
	}, nil
}

// buildModels constructs the six networks and three optimizers and
// performs the one-time hard copy from each live network to its
// target.
func buildModels(env EnvSpec, hp Hyperparams) (*Models, error) {
	actorCfg := nn.Config{
		InputSize:        env.StateSize,
		HiddenSizes:      hp.ActorHiddenSizes,
		OutputSize:       env.ActionSize,
		OutputActivation: nn.Tanh{},
	}
	// Critics score (state, action) pairs with a raw Q-value.
	criticCfg := nn.Config{
		InputSize:   env.StateSize + env.ActionSize,
		HiddenSizes: hp.CriticHiddenSizes,
		OutputSize:  1,
	}

	actor, err := nn.New(actorCfg)
	if err != nil {
		return nil, fmt.Errorf("actor: %w", err)
	}
	targetActor, err := nn.New(actorCfg)
	if err != nil {
		return nil, fmt.Errorf("target actor: %w", err)
	}

	critic1, err := nn.New(criticCfg)
	if err != nil {
		return nil, fmt.Errorf("critic1: %w", err)
	}
	critic2, err := nn.New(criticCfg)
	if err != nil {
		return nil, fmt.Errorf("critic2: %w", err)
	}
	targetCritic1, err := nn.New(criticCfg)
	if err != nil {
		return nil, fmt.Errorf("target critic1: %w", err)
	}
	targetCritic2, err := nn.New(criticCfg)
	if err != nil {
		return nil, fmt.Errorf("target critic2: %w", err)
	}

	if err := nn.HardUpdate(targetActor, actor); err != nil {
		return nil, err
	}
	if err := nn.HardUpdate(targetCritic1, critic1); err != nil {
		return nil, err
	}
	if err := nn.HardUpdate(targetCritic2, critic2); err != nil {
		return nil, err
	}

	return &Models{
		Actor:         actor,
		TargetActor:   targetActor,
		Critic1:       critic1,
		Critic2:       critic2,
		TargetCritic1: targetCritic1,
		TargetCritic2: targetCritic2,
		ActorOptim:    optim.NewAdam(actor.Params(), hp.ActorLR),
		Critic1Optim:  optim.NewAdam(critic1.Params(), hp.CriticLR),
		Critic2Optim:  optim.NewAdam(critic2.Params(), hp.CriticLR),
	}, nil
}
