package motion

// Replan retargets an in-flight trajectory. The state of current at t0
// becomes the start state of the new plan, so the new trajectory evaluated
// at its own t=0 equals current.At(t0) exactly and the control loop can swap
// trajectories without any discontinuity in position, velocity or
// acceleration. current is left untouched and remains evaluable.
func Replan(current Trajectory, t0, targetPosition, targetVelocity float64, lim Limits) (Trajectory, error) {
	return Plan(PlanRequest{
		Start:          current.At(t0),
		TargetPosition: targetPosition,
		TargetVelocity: targetVelocity,
		Limits:         lim,
	})
}

// ReplanStop replaces the remainder of current with a brake-to-rest leg
// starting from its state at t0.
func ReplanStop(current Trajectory, t0 float64, lim Limits) (Trajectory, error) {
	return PlanStop(current.At(t0), lim)
}
