package utils

import (
	"time"

	m "pfeifer.dev/jogd/math"
)

// LoopTimer tracks the interval between control loop ticks. Jitter reports
// how far the averaged interval drifts from the nominal period.
type LoopTimer struct {
	Nominal  time.Duration
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (l *LoopTimer) Init(nominal time.Duration, maLength int) {
	l.Nominal = nominal
	l.LastTime = time.Now()
	l.Time = time.Now()
	l.DiffMA.Init(maLength)
}

func (l *LoopTimer) Update() {
	l.LastTime = l.Time
	l.Time = time.Now()
	l.DiffMA.Update(l.Time.Sub(l.LastTime).Seconds())
}

// Dt returns the duration of the last tick in seconds.
func (l *LoopTimer) Dt() float64 {
	return l.Time.Sub(l.LastTime).Seconds()
}

func (l *LoopTimer) Jitter() float64 {
	return l.DiffMA.Estimate - l.Nominal.Seconds()
}
