package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTrajectory(t *testing.T) {
	start := KinematicState{Position: 1.5, Velocity: 0, Acceleration: 0}
	tr := newTrajectory(start, nil)

	assert.Zero(t, tr.Duration())
	assert.Equal(t, start, tr.At(0))
	assert.Equal(t, start, tr.At(-1))
	assert.Equal(t, start, tr.At(10))
	assert.Equal(t, start, tr.End())
}

func TestTrajectoryClampsQueryTime(t *testing.T) {
	tr, err := Plan(PlanRequest{
		TargetPosition: 0.04,
		Limits:         Limits{MaxVelocity: 0.1, MaxAcceleration: 0.5, MaxJerk: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, tr.At(0), tr.At(-1), "before start clamps to start state")
	assert.Equal(t, tr.End(), tr.At(tr.Duration()+5), "past end clamps to end state")
}

func TestTrajectoryPhaseOffsets(t *testing.T) {
	tr, err := Plan(PlanRequest{
		TargetPosition: 0.04,
		Limits:         Limits{MaxVelocity: 0.1, MaxAcceleration: 0.5, MaxJerk: 5},
	})
	require.NoError(t, err)

	var total float64
	for _, p := range tr.Phases() {
		total += p.Duration
	}
	assert.InDelta(t, total, tr.Duration(), 1e-12)
}

func TestTrajectoryJerkWithinPhases(t *testing.T) {
	lim := Limits{MaxVelocity: 0.1, MaxAcceleration: 0.5, MaxJerk: 5}
	tr, err := Plan(PlanRequest{TargetPosition: 0.04, Limits: lim})
	require.NoError(t, err)

	assert.InDelta(t, lim.MaxJerk, tr.JerkAt(0.01), 1e-12, "first ramp jerks up")
	assert.Zero(t, tr.JerkAt(tr.Duration()+1), "no jerk past the end")
	for _, s := range tr.Sample(0.001) {
		assert.LessOrEqual(t, math.Abs(s.Jerk), lim.MaxJerk)
	}
}

func TestSampleCoversWholeTrajectory(t *testing.T) {
	tr, err := Plan(PlanRequest{
		TargetPosition: 0.02,
		Limits:         Limits{MaxVelocity: 0.1, MaxAcceleration: 10, MaxJerk: 62.5},
	})
	require.NoError(t, err)

	samples := tr.Sample(0.001)
	require.NotEmpty(t, samples)
	assert.Zero(t, samples[0].Time)
	last := samples[len(samples)-1]
	assert.InDelta(t, tr.Duration(), last.Time, 1e-12)
	assert.Equal(t, tr.End(), last.State)

	assert.Nil(t, tr.Sample(0))
}

func TestSampleGridLandingOnEndpoint(t *testing.T) {
	// Duration an exact multiple of the step: the terminal sample is the
	// last grid point, not a duplicate after it.
	ph := newJerkPhase(KinematicState{}, 2, 0.5)
	tr := newTrajectory(KinematicState{}, []Phase{ph})

	samples := tr.Sample(0.25)
	require.Len(t, samples, 3)
	assert.Equal(t, 0.5, samples[2].Time)
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].Time, samples[i-1].Time, "sample times strictly increase")
	}
}

func TestPhasesReturnsCopy(t *testing.T) {
	tr, err := Plan(PlanRequest{
		TargetPosition: 0.04,
		Limits:         Limits{MaxVelocity: 0.1, MaxAcceleration: 0.5, MaxJerk: 5},
	})
	require.NoError(t, err)

	phases := tr.Phases()
	require.NotEmpty(t, phases)
	phases[0].Duration = 99
	assert.NotEqual(t, 99.0, tr.Phases()[0].Duration, "mutating the copy leaves the trajectory untouched")
}
