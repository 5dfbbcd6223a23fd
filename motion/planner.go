package motion

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// tinyDuration: phases at or below this are omitted entirely.
	tinyDuration = 1e-12
	// planTolerance: accepted terminal position/velocity error.
	planTolerance = 1e-6
)

// Plan builds a trajectory that takes req.Start to req.TargetPosition,
// arriving with req.TargetVelocity and zero acceleration, without exceeding
// req.Limits. A request already satisfied by the start state yields an empty
// trajectory of duration zero.
func Plan(req PlanRequest) (Trajectory, error) {
	if err := req.Limits.Validate(); err != nil {
		return Trajectory{}, err
	}
	phases, err := planMove(req.Start, req.TargetPosition, req.TargetVelocity, req.Limits, 0)
	if err != nil {
		return Trajectory{}, err
	}
	tr := newTrajectory(req.Start, phases)
	end := tr.End()
	if math.Abs(end.Position-req.TargetPosition) > planTolerance ||
		math.Abs(end.Velocity-req.TargetVelocity) > planTolerance {
		return Trajectory{}, errors.Wrapf(ErrUnreachableTarget,
			"terminal state (%v, %v) misses target (%v, %v)",
			end.Position, end.Velocity, req.TargetPosition, req.TargetVelocity)
	}
	return tr, nil
}

// PlanStop decelerates to rest from state as fast as the limits allow.
// Wherever the axis comes to rest becomes the new target position.
func PlanStop(state KinematicState, lim Limits) (Trajectory, error) {
	if err := lim.Validate(); err != nil {
		return Trajectory{}, err
	}
	leg, err := velocityLeg(state, 0, lim)
	if err != nil {
		return Trajectory{}, err
	}
	tr := newTrajectory(state, leg)
	end := tr.End()
	if math.Abs(end.Velocity) > planTolerance || math.Abs(end.Acceleration) > planTolerance {
		return Trajectory{}, errors.Wrapf(ErrUnreachableTarget,
			"stop leaves residual velocity %v and acceleration %v", end.Velocity, end.Acceleration)
	}
	return tr, nil
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func endOf(start KinematicState, phases []Phase) KinematicState {
	if len(phases) == 0 {
		return start
	}
	return phases[len(phases)-1].End()
}

// planMove decomposes the move into an acceleration leg up to cruise
// velocity, an optional cruise, and a deceleration leg into the target
// state. When the travel is too short for the full profile it falls back to
// a reduced cruise velocity, or to braking past the target and returning.
func planMove(start KinematicState, sTarget, vTarget float64, lim Limits, depth int) ([]Phase, error) {
	sDiff := sTarget - start.Position

	if math.Abs(sDiff) < rootEps &&
		math.Abs(start.Velocity-vTarget) < rootEps &&
		math.Abs(start.Acceleration) < rootEps {
		return nil, nil
	}

	dir := sign(sDiff)
	if dir == 0 {
		dir = sign(vTarget)
	}
	if dir == 0 {
		dir = sign(start.Velocity)
	}
	if dir == 0 {
		dir = sign(start.Acceleration)
	}

	legA, err := velocityLeg(start, dir*lim.MaxVelocity, lim)
	if err != nil {
		return nil, err
	}
	afterA := endOf(start, legA)
	afterA.Velocity = dir * lim.MaxVelocity
	afterA.Acceleration = 0

	legB, err := velocityLeg(afterA, vTarget, lim)
	if err != nil {
		return nil, err
	}
	afterB := endOf(afterA, legB)

	cruiseTime := (sTarget - afterB.Position) / (dir * lim.MaxVelocity)
	if cruiseTime >= -tinyDuration {
		phases := legA
		if cruiseTime > tinyDuration {
			cruise := newCruisePhase(afterA, cruiseTime)
			phases = append(phases, cruise)
			afterA = cruise.End()
			afterA.Velocity = dir * lim.MaxVelocity
			afterA.Acceleration = 0
		}
		// Rebuild the deceleration leg so its start positions line up
		// behind the cruise.
		legB, err = velocityLeg(afterA, vTarget, lim)
		if err != nil {
			return nil, err
		}
		return append(phases, legB...), nil
	}

	return planReducedPeak(start, sTarget, vTarget, dir, lim, depth)
}

// planReducedPeak handles moves that cannot reach MaxVelocity: it searches
// for the cruise velocity at which the back-to-back acceleration and
// deceleration legs land exactly on the target. When even the shallowest
// profile overshoots, the axis is already too close (or moving away): brake
// to rest first, then run a fresh move back toward the target.
func planReducedPeak(start KinematicState, sTarget, vTarget, dir float64, lim Limits, depth int) ([]Phase, error) {
	// overshoot is the direction-signed landing error for a candidate
	// cruise velocity, with the phase legs that produced it.
	overshoot := func(vp float64) (float64, []Phase, error) {
		legA, err := velocityLeg(start, dir*vp, lim)
		if err != nil {
			return 0, nil, err
		}
		mid := endOf(start, legA)
		mid.Velocity = dir * vp
		mid.Acceleration = 0
		legB, err := velocityLeg(mid, vTarget, lim)
		if err != nil {
			return 0, nil, err
		}
		end := endOf(mid, legB)
		return dir * (end.Position - sTarget), append(legA, legB...), nil
	}

	lo := math.Abs(vTarget)
	hi := lim.MaxVelocity
	miss, legs, err := overshoot(lo)
	if err != nil {
		return nil, err
	}
	if miss > planTolerance {
		if vTarget != 0 || depth > 0 {
			return nil, errors.Wrapf(ErrUnreachableTarget,
				"overshoots target %v by %v even without cruising", sTarget, dir*miss)
		}
		// Shortened or reversed move: stop, then come back.
		stopLeg, err := velocityLeg(start, 0, lim)
		if err != nil {
			return nil, err
		}
		rest := endOf(start, stopLeg)
		rest.Velocity = 0
		rest.Acceleration = 0
		back, err := planMove(rest, sTarget, vTarget, lim, depth+1)
		if err != nil {
			return nil, err
		}
		return append(stopLeg, back...), nil
	}
	if miss >= -planTolerance {
		// The direct velocity change already lands on the target.
		return legs, nil
	}

	for range 100 {
		mid := (lo + hi) / 2
		miss, _, err = overshoot(mid)
		if err != nil {
			return nil, err
		}
		if miss > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	_, legs, err = overshoot((lo + hi) / 2)
	return legs, err
}

// velocityLeg builds the jerk ramp / acceleration hold / jerk ramp run that
// takes state to velocity vTarget with zero final acceleration, integrating
// position along the way. The velocity profile is planned one derivative up:
// acceleration plays the role of velocity and jerk the role of acceleration,
// so the trapezoid/triangle math carries over unchanged.
func velocityLeg(state KinematicState, vTarget float64, lim Limits) ([]Phase, error) {
	v0, a0 := state.Velocity, state.Acceleration
	dv := vTarget - v0
	if math.Abs(dv) < rootEps && math.Abs(a0) < rootEps {
		return nil, nil
	}

	s := sign(dv)
	if s == 0 {
		// Velocity is already on target but acceleration is not: ramp it
		// out, letting the quadratic below correct the velocity excursion.
		s = -sign(a0)
	}
	aPeak := s * lim.MaxAcceleration

	j0 := sign(aPeak-a0) * lim.MaxJerk
	if j0 == 0 {
		j0 = s * lim.MaxJerk
	}
	t0 := (aPeak - a0) / j0
	j2 := -s * lim.MaxJerk
	t2 := -aPeak / j2
	t1 := dv/aPeak - (aPeak*aPeak-a0*a0)/(2*j0*aPeak) + aPeak/(2*j2)

	if t1 < 0 {
		// aPeak is never reached: solve the ramp-up duration with no hold.
		// The second candidate jerks the other way; that is the profile for
		// a stop where velocity must cross zero before settling (braking
		// hard with only a little velocity left).
		solved := false
		for _, jRamp := range []float64{j0, -j0} {
			x := a0 / jRamp
			roots := SolveQuadratic(1, 2*x, a0*x/(2*jRamp)-dv/jRamp)
			clamped := nonNegativeRoots(roots)
			if len(clamped) == 0 {
				continue
			}
			up := clamped[len(clamped)-1]
			down := up + x
			if down < -rootEps {
				continue
			}
			j0 = jRamp
			t0 = up
			t1 = 0
			t2 = math.Max(down, 0)
			// The second ramp must jerk opposite the first: its duration
			// up + a0/jRamp returns acceleration to exactly zero only at
			// -jRamp, and the quadratic above is derived under that jerk.
			j2 = -jRamp
			solved = true
			break
		}
		if !solved {
			return nil, errors.Wrapf(ErrUnreachableTarget,
				"no ramp duration reaches dv %v from acceleration %v", dv, a0)
		}
	}

	var phases []Phase
	cur := state
	if t0 > tinyDuration {
		ph := newJerkPhase(cur, j0, t0)
		phases = append(phases, ph)
		cur = ph.End()
	}
	if t1 > tinyDuration {
		cur.Acceleration = aPeak // exact, kills ramp rounding
		ph := newHoldPhase(cur, t1)
		phases = append(phases, ph)
		cur = ph.End()
	}
	if t2 > tinyDuration {
		ph := newJerkPhase(cur, j2, t2)
		phases = append(phases, ph)
	}
	return phases, nil
}
