package motion

// PhaseKind tags how a phase drives the state forward.
type PhaseKind int

const (
	// JerkUp increases acceleration at constant positive jerk.
	JerkUp PhaseKind = iota
	// JerkDown decreases acceleration at constant negative jerk.
	JerkDown
	// AccelHold keeps acceleration constant with zero jerk.
	AccelHold
	// Cruise keeps velocity constant with zero acceleration and jerk.
	Cruise
)

func (k PhaseKind) String() string {
	switch k {
	case JerkUp:
		return "jerk-up"
	case JerkDown:
		return "jerk-down"
	case AccelHold:
		return "accel-hold"
	case Cruise:
		return "cruise"
	}
	return "unknown"
}

// Phase is one analytically defined piece of a trajectory: constant jerk
// applied to a start state for a duration. It owns no mutable state after
// construction; evaluation is a pure function of the local time offset.
type Phase struct {
	Kind     PhaseKind
	Duration float64
	Start    KinematicState
	Jerk     float64
}

func newJerkPhase(start KinematicState, jerk, duration float64) Phase {
	kind := JerkUp
	if jerk < 0 {
		kind = JerkDown
	}
	return Phase{Kind: kind, Duration: duration, Start: start, Jerk: jerk}
}

func newHoldPhase(start KinematicState, duration float64) Phase {
	return Phase{Kind: AccelHold, Duration: duration, Start: start}
}

func newCruisePhase(start KinematicState, duration float64) Phase {
	start.Acceleration = 0
	return Phase{Kind: Cruise, Duration: duration, Start: start}
}

// At evaluates the phase at local time t by exact polynomial integration of
// the constant jerk. t is clamped to [0, Duration].
func (p Phase) At(t float64) KinematicState {
	if t < 0 {
		t = 0
	}
	if t > p.Duration {
		t = p.Duration
	}
	s0, v0, a0 := p.Start.Position, p.Start.Velocity, p.Start.Acceleration
	return KinematicState{
		Position:     s0 + v0*t + a0*t*t/2 + p.Jerk*t*t*t/6,
		Velocity:     v0 + a0*t + p.Jerk*t*t/2,
		Acceleration: a0 + p.Jerk*t,
	}
}

// End is the state the next phase must start from.
func (p Phase) End() KinematicState {
	return p.At(p.Duration)
}
