// Package math holds small numeric helpers shared by the daemon and cli.
package math

// MovingAverage is a fixed-window mean kept with a running sum, so Update
// is O(1) regardless of window size.
type MovingAverage struct {
	values      []float64
	index       int
	sum         float64
	initialized bool
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	a.values = make([]float64, size)
	a.index = 0
	a.sum = 0
	a.initialized = false
	a.Estimate = 0
}

func (a *MovingAverage) Reset() {
	a.initialized = false
}

func (a *MovingAverage) Update(val float64) float64 {
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.sum = val * float64(len(a.values))
		a.initialized = true
		a.Estimate = val
		return val
	}
	a.index += 1
	a.index %= len(a.values)
	a.sum += val - a.values[a.index]
	a.values[a.index] = val
	a.Estimate = a.sum / float64(len(a.values))
	return a.Estimate
}

func (a *MovingAverage) Raw() float64 {
	return a.values[a.index]
}
