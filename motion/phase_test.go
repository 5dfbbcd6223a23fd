package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseIntegratesConstantJerk(t *testing.T) {
	p := newJerkPhase(KinematicState{}, 6, 1)

	mid := p.At(0.5)
	assert.InDelta(t, 3, mid.Acceleration, 1e-12)
	assert.InDelta(t, 0.75, mid.Velocity, 1e-12)
	assert.InDelta(t, 0.125, mid.Position, 1e-12)

	end := p.End()
	assert.InDelta(t, 6, end.Acceleration, 1e-12)
	assert.InDelta(t, 3, end.Velocity, 1e-12)
	assert.InDelta(t, 1, end.Position, 1e-12)
}

func TestPhaseKinds(t *testing.T) {
	up := newJerkPhase(KinematicState{}, 5, 0.1)
	down := newJerkPhase(KinematicState{}, -5, 0.1)
	hold := newHoldPhase(KinematicState{Acceleration: 2}, 0.1)
	cruise := newCruisePhase(KinematicState{Velocity: 1, Acceleration: 0.5}, 0.1)

	assert.Equal(t, JerkUp, up.Kind)
	assert.Equal(t, JerkDown, down.Kind)
	assert.Equal(t, AccelHold, hold.Kind)
	assert.Equal(t, Cruise, cruise.Kind)
	assert.Zero(t, cruise.Start.Acceleration, "cruise carries no acceleration")
	assert.Zero(t, cruise.Jerk)
}

func TestPhaseAtClampsLocalTime(t *testing.T) {
	p := newJerkPhase(KinematicState{Velocity: 1}, 2, 0.5)
	assert.Equal(t, p.At(0), p.At(-1))
	assert.Equal(t, p.At(0.5), p.At(7))
}

func TestHoldPhaseKeepsAcceleration(t *testing.T) {
	p := newHoldPhase(KinematicState{Velocity: 1, Acceleration: 2}, 0.25)
	end := p.End()
	assert.InDelta(t, 2, end.Acceleration, 1e-12)
	assert.InDelta(t, 1.5, end.Velocity, 1e-12)
	assert.InDelta(t, 0.3125, end.Position, 1e-12)
}
