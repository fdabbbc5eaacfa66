// td3 assembles a TD3 continuous-control experiment and reports the
// constructed bundle. The learning loop is driven by the algorithm
// collaborator; this command validates configuration and wiring.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rlkit/nn"
	"rlkit/project"
)

var (
	hp = project.DefaultHyperparams()

	envID             string
	stateSize         int
	actionSize        int
	actionLow         float64
	actionHigh        float64
	actorHiddenSizes  string
	criticHiddenSizes string
	logLevel          string
)

var rootCmd = &cobra.Command{
	Use:   "td3",
	Short: "TD3 experiment assembly",
	Long: `Builds the actor, twin critics, target networks, optimizers,
replay buffer, and exploration-noise schedule for a TD3 agent on a
continuous-control environment.`,
	RunE: runSetup,
}

func init() {
	rootCmd.Flags().StringVar(&envID, "env-id", "BipedalWalker-v2", "Environment identifier")
	rootCmd.Flags().IntVar(&stateSize, "state-size", 24, "Observation vector width")
	rootCmd.Flags().IntVar(&actionSize, "action-size", 4, "Action vector width")
	rootCmd.Flags().Float64Var(&actionLow, "action-low", -1, "Lower action bound")
	rootCmd.Flags().Float64Var(&actionHigh, "action-high", 1, "Upper action bound")

	rootCmd.Flags().Float64Var(&hp.Gamma, "gamma", hp.Gamma, "Discount factor")
	rootCmd.Flags().Float64Var(&hp.Tau, "tau", hp.Tau, "Target-mix rate for soft updates")
	rootCmd.Flags().Float64Var(&hp.ActorLR, "actor-lr", hp.ActorLR, "Actor learning rate")
	rootCmd.Flags().Float64Var(&hp.CriticLR, "critic-lr", hp.CriticLR, "Critic learning rate")
	rootCmd.Flags().IntVar(&hp.BatchSize, "batch-size", hp.BatchSize, "Minibatch size")
	rootCmd.Flags().IntVar(&hp.MemorySize, "memory-size", hp.MemorySize, "Replay buffer capacity")
	rootCmd.Flags().IntVar(&hp.PolicyUpdatePeriod, "policy-update-period", hp.PolicyUpdatePeriod, "Critic steps per actor step")
	rootCmd.Flags().IntVar(&hp.MaxEpisodeSteps, "max-episode-steps", hp.MaxEpisodeSteps, "Step limit per episode")
	rootCmd.Flags().Float64Var(&hp.NoiseStd, "noise-std", hp.NoiseStd, "Target policy smoothing noise std")
	rootCmd.Flags().Float64Var(&hp.NoiseClip, "noise-clip", hp.NoiseClip, "Target policy smoothing noise clip")
	rootCmd.Flags().Float64Var(&hp.MinSigma, "min-sigma", hp.MinSigma, "Final exploration noise sigma")
	rootCmd.Flags().Float64Var(&hp.MaxSigma, "max-sigma", hp.MaxSigma, "Initial exploration noise sigma")
	rootCmd.Flags().IntVar(&hp.NoiseDecayPeriod, "noise-decay-period", hp.NoiseDecayPeriod, "Steps to anneal exploration noise")

	rootCmd.Flags().StringVar(&actorHiddenSizes, "actor-hidden-sizes", "400 300", "Actor hidden widths, space separated")
	rootCmd.Flags().StringVar(&criticHiddenSizes, "critic-hidden-sizes", "400 300", "Critic hidden widths, space separated")

	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("TD3")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func runSetup(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	// Flags are bound to viper, so each value resolves as
	// flag > TD3_* environment variable > default.
	run := project.Hyperparams{
		Gamma:              viper.GetFloat64("gamma"),
		Tau:                viper.GetFloat64("tau"),
		MinSigma:           viper.GetFloat64("min-sigma"),
		MaxSigma:           viper.GetFloat64("max-sigma"),
		NoiseDecayPeriod:   viper.GetInt("noise-decay-period"),
		NoiseStd:           viper.GetFloat64("noise-std"),
		NoiseClip:          viper.GetFloat64("noise-clip"),
		PolicyUpdatePeriod: viper.GetInt("policy-update-period"),
		BatchSize:          viper.GetInt("batch-size"),
		MemorySize:         viper.GetInt("memory-size"),
		MaxEpisodeSteps:    viper.GetInt("max-episode-steps"),
		ActorLR:            viper.GetFloat64("actor-lr"),
		CriticLR:           viper.GetFloat64("critic-lr"),
	}
	run.ActorHiddenSizes, err = project.ParseHiddenSizes(viper.GetString("actor-hidden-sizes"))
	if err != nil {
		return err
	}
	run.CriticHiddenSizes, err = project.ParseHiddenSizes(viper.GetString("critic-hidden-sizes"))
	if err != nil {
		return err
	}

	env := project.EnvSpec{
		ID:         viper.GetString("env-id"),
		StateSize:  viper.GetInt("state-size"),
		ActionSize: viper.GetInt("action-size"),
		ActionLow:  viper.GetFloat64("action-low"),
		ActionHigh: viper.GetFloat64("action-high"),
	}

	p, err := project.New(env, run, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Int("actor_params", nn.NumParams(p.Models.Actor)).
		Int("critic1_params", nn.NumParams(p.Models.Critic1)).
		Int("critic2_params", nn.NumParams(p.Models.Critic2)).
		Int("buffer_capacity", p.Buffer.Capacity()).
		Float64("noise_sigma", p.Noise.Sigma(0)).
		Msg("bundle ready")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
