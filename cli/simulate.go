package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"pfeifer.dev/jogd/motion"
	"pfeifer.dev/jogd/settings"
)

type simulateSettings struct {
	Target         float64
	TargetVelocity float64
	ReplanAt       float64
	ReplanTarget   float64
	Step           float64
	OutputFile     string
}

// simulate plans a move offline with the configured limits and writes its
// sampled profile as a gnuplot-style table, one block per trajectory so a
// replan shows up as a separate curve.
func simulate(s simulateSettings) error {
	lim := settings.Settings.Limits()

	tr, err := motion.Plan(motion.PlanRequest{
		TargetPosition: s.Target,
		TargetVelocity: s.TargetVelocity,
		Limits:         lim,
	})
	if err != nil {
		return errors.Wrap(err, "could not plan move")
	}

	file, err := os.Create(s.OutputFile)
	if err != nil {
		return errors.Wrap(err, "could not create output file")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "# time position velocity acceleration jerk")

	replan := s.ReplanAt >= 0 && s.ReplanAt < tr.Duration()
	horizon := tr.Duration()
	if replan {
		horizon = s.ReplanAt
	}

	for _, sample := range tr.Sample(s.Step) {
		if sample.Time > horizon {
			break
		}
		writeSample(w, sample.Time, sample.State, sample.Jerk)
	}

	if replan {
		second, err := motion.Replan(tr, s.ReplanAt, s.ReplanTarget, 0, lim)
		if err != nil {
			return errors.Wrap(err, "could not replan move")
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
		for _, sample := range second.Sample(s.Step) {
			writeSample(w, s.ReplanAt+sample.Time, sample.State, sample.Jerk)
		}
		tr = second
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "could not flush output file")
	}

	end := tr.End()
	fmt.Printf("wrote %s, settle at position %f after %f seconds\n", s.OutputFile, end.Position, horizonEnd(replan, s.ReplanAt, tr))
	return nil
}

func writeSample(w *bufio.Writer, t float64, state motion.KinematicState, jerk float64) {
	fmt.Fprintf(w, "%f %f %f %f %f\n", t, state.Position, state.Velocity, state.Acceleration, jerk)
}

func horizonEnd(replanned bool, replanAt float64, tr motion.Trajectory) float64 {
	if replanned {
		return replanAt + tr.Duration()
	}
	return tr.Duration()
}
