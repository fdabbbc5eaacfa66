package project

import "fmt"

// EnvSpec describes the observation and action interface of a
// continuous-control environment. The simulation itself lives behind
// the Env interface.
type EnvSpec struct {
	ID         string
	StateSize  int
	ActionSize int
	ActionLow  float64
	ActionHigh float64
}

// Validate checks the spec describes a usable environment.
func (s EnvSpec) Validate() error {
	if s.StateSize <= 0 {
		return fmt.Errorf("env %q: state size must be positive, got %d", s.ID, s.StateSize)
	}
	if s.ActionSize <= 0 {
		return fmt.Errorf("env %q: action size must be positive, got %d", s.ID, s.ActionSize)
	}
	if s.ActionLow >= s.ActionHigh {
		return fmt.Errorf("env %q: action bounds inverted: [%v, %v]", s.ID, s.ActionLow, s.ActionHigh)
	}
	return nil
}

// Env is the environment collaborator: the physics simulation is
// external to this module.
type Env interface {
	Spec() EnvSpec
	Reset() (state []float64, err error)
	Step(action []float64) (next []float64, reward float64, done bool, err error)
}
