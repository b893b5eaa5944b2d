package cycle

import "math"

// Solver defaults. The tolerance is an interval width in kelvin; 1e-6 K
// keeps downstream enthalpy differences well below reporting precision.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// maxBracketSteps bounds the bracket expansion phase so a target outside
// the reachable property range fails instead of walking forever.
const maxBracketSteps = 60

// SolverOptions configures the scalar root solves used to invert the
// property functions. The zero value selects the defaults.
type SolverOptions struct {
	Tolerance     float64
	MaxIterations int
}

func (o SolverOptions) withDefaults() SolverOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// SolveTemperature finds the temperature t at which f(t) equals target.
// f must be monotonically increasing, which both property functions are
// over their valid domain, so the root is unique. The seed biases the
// initial bracket toward the physically expected branch; a seed that
// already satisfies the target (the pressure-ratio-1 case) is returned
// immediately.
//
// The solve brackets the root by geometric expansion from the seed, then
// narrows the bracket by bisection with a secant step when the secant
// estimate stays inside the bracket. Failure to bracket or to converge
// within the iteration budget returns a *ConvergenceError.
func SolveTemperature(f func(float64) float64, target, seed float64, opts SolverOptions) (float64, error) {
	opts = opts.withDefaults()

	gSeed := f(seed) - target
	if gSeed == 0 {
		return seed, nil
	}

	// Bracket: f is increasing, so a negative residual means the root
	// lies above the seed and vice versa.
	lo, hi := seed, seed
	gLo, gHi := gSeed, gSeed
	step := math.Max(1.0, 0.05*math.Abs(seed))
	bracketed := false
	for i := 0; i < maxBracketSteps; i++ {
		if gSeed < 0 {
			hi = lo + step
			gHi = f(hi) - target
			if gHi >= 0 {
				bracketed = true
				break
			}
			lo, gLo = hi, gHi
		} else {
			lo = hi - step
			gLo = f(lo) - target
			if gLo <= 0 {
				bracketed = true
				break
			}
			hi, gHi = lo, gLo
		}
		step *= 2
	}
	if !bracketed {
		last := hi
		if gSeed >= 0 {
			last = lo
		}
		return 0, &ConvergenceError{Target: target, LastTemp: last, Iterations: maxBracketSteps}
	}

	var t float64
	for i := 0; i < opts.MaxIterations; i++ {
		if hi-lo < opts.Tolerance {
			return 0.5 * (lo + hi), nil
		}

		// Secant estimate; fall back to the midpoint when it leaves
		// the bracket or the chord is flat.
		t = 0.5 * (lo + hi)
		if denom := gHi - gLo; denom != 0 {
			ts := lo - gLo*(hi-lo)/denom
			if ts > lo && ts < hi {
				t = ts
			}
		}

		g := f(t) - target
		switch {
		case g == 0:
			return t, nil
		case g < 0:
			lo, gLo = t, g
		default:
			hi, gHi = t, g
		}

		// A pure secant sequence can stall against one bracket edge;
		// force a bisection every other iteration.
		if i%2 == 1 {
			m := 0.5 * (lo + hi)
			gm := f(m) - target
			if gm == 0 {
				return m, nil
			}
			if gm < 0 {
				lo, gLo = m, gm
			} else {
				hi, gHi = m, gm
			}
		}
	}

	return 0, &ConvergenceError{Target: target, LastTemp: t, Iterations: opts.MaxIterations}
}
