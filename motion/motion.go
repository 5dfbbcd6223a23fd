// Package motion plans jerk-limited jog trajectories. A trajectory is an
// immutable sequence of constant-jerk and constant-acceleration phases that
// can be evaluated at any time offset for exact position, velocity,
// acceleration and jerk. Replanning produces a new trajectory whose initial
// state matches the old one at the switch instant, so a control loop can swap
// trajectories mid-flight without discontinuities.
package motion

import "github.com/pkg/errors"

// KinematicState is position and its first two derivatives at an instant.
type KinematicState struct {
	Position     float64 `json:"position"`
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
}

// Limits bound the magnitudes of velocity, acceleration and jerk for one
// planning call. They may differ between calls.
type Limits struct {
	MaxVelocity     float64 `json:"max_velocity"`      // m/s
	MaxAcceleration float64 `json:"max_acceleration"`  // m/s^2
	MaxJerk         float64 `json:"max_jerk"`          // m/s^3
}

func (l Limits) Validate() error {
	if l.MaxVelocity <= 0 {
		return errors.Wrapf(ErrInvalidLimits, "max velocity %v", l.MaxVelocity)
	}
	if l.MaxAcceleration <= 0 {
		return errors.Wrapf(ErrInvalidLimits, "max acceleration %v", l.MaxAcceleration)
	}
	if l.MaxJerk <= 0 {
		return errors.Wrapf(ErrInvalidLimits, "max jerk %v", l.MaxJerk)
	}
	return nil
}

// PlanRequest asks for a trajectory from Start to TargetPosition, arriving
// with TargetVelocity (zero for a move that ends at rest) and zero
// acceleration.
type PlanRequest struct {
	Start          KinematicState
	TargetPosition float64
	TargetVelocity float64
	Limits         Limits
}
