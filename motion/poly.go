package motion

import (
	"math"
	"sort"
)

// rootEps: roots within this of zero are treated as exactly zero so that
// rounding in the kinematic inputs cannot produce a spurious negative phase
// duration.
const rootEps = 1e-12

// SolveQuadratic returns the real roots of a*x^2 + b*x + c in ascending
// order. Degenerate leading coefficients fall through to the linear case. An
// empty slice means no real root.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		r := -b / (2 * a)
		return []float64{r, r}
	}

	// Avoid cancellation between -b and the discriminant by computing the
	// larger-magnitude root first and deriving the other from the product.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r1 := q / a
	r2 := c / q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d in ascending
// order. With a near-zero leading coefficient it degrades to the quadratic
// solver. The planner's velocity-level formulation reduces its displacement
// relations to quadratics, so this completes the solver set for callers
// working on cumulative-displacement polynomials directly.
func SolveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < rootEps {
		return SolveQuadratic(b, c, d)
	}

	// Normalize to x^3 + p2*x^2 + p1*x + p0 and depress with x = y - p2/3.
	p2 := b / a
	p1 := c / a
	p0 := d / a

	shift := p2 / 3
	p := p1 - p2*p2/3
	q := p0 - p2*p1/3 + 2*p2*p2*p2/27

	half := q / 2
	third := p / 3
	disc := half*half + third*third*third

	switch {
	case disc > 0:
		// One real root (Cardano).
		s := math.Sqrt(disc)
		u := math.Cbrt(-half + s)
		v := math.Cbrt(-half - s)
		return []float64{u + v - shift}
	case disc == 0:
		if half == 0 {
			// Triple root at the inflection point.
			return []float64{-shift, -shift, -shift}
		}
		u := math.Cbrt(-half)
		roots := []float64{2*u - shift, -u - shift, -u - shift}
		sort.Float64s(roots)
		return roots
	default:
		// Three distinct real roots, trigonometric form. disc < 0 implies
		// third < 0 so the sqrt arguments are valid.
		m := 2 * math.Sqrt(-third)
		arg := 3 * q / (p * m)
		// Clamp against rounding before acos.
		arg = math.Max(-1, math.Min(1, arg))
		theta := math.Acos(arg) / 3
		roots := []float64{
			m*math.Cos(theta) - shift,
			m*math.Cos(theta-2*math.Pi/3) - shift,
			m*math.Cos(theta+2*math.Pi/3) - shift,
		}
		sort.Float64s(roots)
		return roots
	}
}

// nonNegativeRoots clamps near-zero roots to zero, drops negative ones and
// keeps ascending order. An empty result means "this phase is not needed".
func nonNegativeRoots(roots []float64) []float64 {
	out := roots[:0:0]
	for _, r := range roots {
		if math.Abs(r) < rootEps {
			r = 0
		}
		if r >= 0 {
			out = append(out, r)
		}
	}
	return out
}

// smallestNonNegativeRoot returns the smallest usable duration among roots.
func smallestNonNegativeRoot(roots []float64) (float64, bool) {
	filtered := nonNegativeRoots(roots)
	if len(filtered) == 0 {
		return 0, false
	}
	return filtered[0], true
}
