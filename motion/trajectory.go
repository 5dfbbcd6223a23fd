package motion

// Trajectory is an immutable ordered phase sequence with cumulative time
// offsets. Each phase starts from the exact end state of the previous one,
// so position, velocity and acceleration are continuous across boundaries
// (jerk is not, by design). A replan never mutates a trajectory; readers
// holding an old value keep evaluating it unaffected.
type Trajectory struct {
	phases []Phase
	starts []float64
	total  float64
	rest   KinematicState // state when there are no phases, and past the end
}

func newTrajectory(start KinematicState, phases []Phase) Trajectory {
	tr := Trajectory{phases: phases, rest: start}
	tr.starts = make([]float64, len(phases))
	for i, p := range phases {
		tr.starts[i] = tr.total
		tr.total += p.Duration
	}
	if len(phases) > 0 {
		tr.rest = phases[len(phases)-1].End()
	}
	return tr
}

// Duration is the total planned time.
func (tr Trajectory) Duration() float64 {
	return tr.total
}

// End is the terminal state; for an empty trajectory it is the start state.
func (tr Trajectory) End() KinematicState {
	return tr.rest
}

// At evaluates the trajectory at time t from its start. Outside [0, Duration]
// the nearest boundary state is returned; there is no extrapolation.
func (tr Trajectory) At(t float64) KinematicState {
	p, local, ok := tr.phaseAt(t)
	if !ok {
		if t <= 0 && len(tr.phases) > 0 {
			return tr.phases[0].Start
		}
		return tr.rest
	}
	return p.At(local)
}

// JerkAt returns the applied jerk at time t, zero outside the trajectory.
// Jerk is piecewise constant; at a boundary the later phase wins.
func (tr Trajectory) JerkAt(t float64) float64 {
	p, _, ok := tr.phaseAt(t)
	if !ok {
		return 0
	}
	return p.Jerk
}

func (tr Trajectory) phaseAt(t float64) (Phase, float64, bool) {
	if len(tr.phases) == 0 || t < 0 || t > tr.total {
		return Phase{}, 0, false
	}
	for i := len(tr.phases) - 1; i >= 0; i-- {
		if t >= tr.starts[i] {
			return tr.phases[i], t - tr.starts[i], true
		}
	}
	return tr.phases[0], 0, true
}

// Phases returns a copy of the phase sequence, for diagnostics and tests.
func (tr Trajectory) Phases() []Phase {
	out := make([]Phase, len(tr.phases))
	copy(out, tr.phases)
	return out
}

// Sample is one point of a dense diagnostic sweep over a trajectory.
type Sample struct {
	Time  float64
	State KinematicState
	Jerk  float64
}

// Sample sweeps the trajectory on a fixed grid, including both endpoints.
// This feeds offline plotting only; it is plain repeated evaluation and has
// no effect on the trajectory.
func (tr Trajectory) Sample(step float64) []Sample {
	if step <= 0 {
		return nil
	}
	n := int(tr.total/step) + 1
	out := make([]Sample, 0, n+1)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		out = append(out, Sample{Time: t, State: tr.At(t), Jerk: tr.JerkAt(t)})
	}
	if out[len(out)-1].Time != tr.total {
		out = append(out, Sample{Time: tr.total, State: tr.rest})
	}
	return out
}
