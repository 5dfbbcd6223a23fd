package main

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
	"pfeifer.dev/jogd/ipc"
	"pfeifer.dev/jogd/motion"
	"pfeifer.dev/jogd/settings"
	"pfeifer.dev/jogd/utils"
)

// State is the daemon's view of the axis. The active trajectory is held
// behind an atomic pointer so command handling can swap in a replanned
// trajectory while readers keep a consistent snapshot.
type State struct {
	trajectory     atomic.Pointer[motion.Trajectory]
	Elapsed        float64
	TargetPosition float64
	TargetVelocity float64
	Replans        uint64
	Timer          utils.LoopTimer
}

func (s *State) Init() {
	s.trajectory.Store(&motion.Trajectory{})
	s.Timer.Init(settings.LOOP_DELAY, settings.JITTER_MA_LENGTH)
}

func (s *State) Trajectory() *motion.Trajectory {
	return s.trajectory.Load()
}

func (s *State) swap(tr motion.Trajectory) {
	s.trajectory.Store(&tr)
	s.Elapsed = 0
	s.Replans += 1
}

func (s *State) HandleCommand(cmd ipc.JogCommand) error {
	cur := s.Trajectory()
	switch cmd.Type {
	case ipc.CommandMove:
		tr, err := motion.Replan(*cur, s.Elapsed, cmd.TargetPosition, cmd.TargetVelocity, settings.Settings.Limits())
		if err != nil {
			return errors.Wrap(err, "could not plan move")
		}
		s.swap(tr)
		s.TargetPosition = cmd.TargetPosition
		s.TargetVelocity = cmd.TargetVelocity
	case ipc.CommandStop:
		tr, err := motion.ReplanStop(*cur, s.Elapsed, settings.Settings.Limits())
		if err != nil {
			return errors.Wrap(err, "could not plan stop")
		}
		s.swap(tr)
		s.TargetPosition = tr.End().Position
		s.TargetVelocity = 0
	case ipc.CommandSetLimits:
		if cmd.Limits == nil {
			return errors.New("setLimits command carries no limits")
		}
		if err := settings.Settings.SetLimits(*cmd.Limits); err != nil {
			return errors.Wrap(err, "rejected limits")
		}
		// the remainder of the move has to respect the new limits
		tr, err := motion.Replan(*cur, s.Elapsed, s.TargetPosition, s.TargetVelocity, settings.Settings.Limits())
		if err != nil {
			return errors.Wrap(err, "could not replan under new limits")
		}
		s.swap(tr)
	case ipc.CommandReloadSettings:
		settings.Settings.Load()
	case ipc.CommandSaveSettings:
		go settings.Settings.Save()
	case ipc.CommandSetLogLevel:
		settings.Settings.SetLogLevel(cmd.LogLevel)
	default:
		return errors.Errorf("unknown command type %q", cmd.Type)
	}
	return nil
}

func (s *State) Advance(dt float64) {
	s.Elapsed = math.Min(s.Elapsed+dt, s.Trajectory().Duration())
}

func (s *State) Moving() bool {
	return s.Elapsed < s.Trajectory().Duration()
}

func (s *State) ToMessage() ipc.JogState {
	tr := s.Trajectory()
	return ipc.JogState{
		Time:           s.Elapsed,
		State:          tr.At(s.Elapsed),
		Jerk:           tr.JerkAt(s.Elapsed),
		Moving:         s.Moving(),
		TargetPosition: s.TargetPosition,
		TargetVelocity: s.TargetVelocity,
		Replans:        s.Replans,
		LoopJitter:     s.Timer.Jitter(),
	}
}
