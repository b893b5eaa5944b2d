// Package sweep runs cycle evaluations over ranges of pressure ratios or
// component efficiencies and locates optima. A failed evaluation is
// recorded on its point and does not abort the rest of the sweep.
package sweep

import (
	"gonum.org/v1/gonum/floats"

	"github.com/thermalworks/cyclesim/pkg/cycle"
)

// Ratios returns n evenly spaced pressure ratios spanning [lo, hi]
// inclusive.
func Ratios(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Point is one Brayton evaluation within a sweep. Err is set when the
// evaluation failed; Result is only meaningful when Err is nil.
type Point struct {
	Ratio  float64
	Result cycle.Result
	Err    error
}

// Run evaluates the Brayton cycle at each pressure ratio in order,
// holding the other parameters fixed.
func Run(prop cycle.PropertyProvider, base cycle.Params, ratios []float64) []Point {
	points := make([]Point, len(ratios))
	for i, r := range ratios {
		p := base
		p.PressureRatio = r
		res, err := cycle.Evaluate(prop, p)
		points[i] = Point{Ratio: r, Result: res, Err: err}
	}
	return points
}

// CombinedPoint is one combined-cycle evaluation within a sweep.
type CombinedPoint struct {
	Ratio  float64
	Result cycle.CombinedResult
	Err    error
}

// RunCombined evaluates the combined cycle at each pressure ratio in
// order.
func RunCombined(prop cycle.PropertyProvider, base cycle.Params, b cycle.BottomingParams, ratios []float64) []CombinedPoint {
	points := make([]CombinedPoint, len(ratios))
	for i, r := range ratios {
		p := base
		p.PressureRatio = r
		res, err := cycle.EvaluateCombined(prop, p, b)
		points[i] = CombinedPoint{Ratio: r, Result: res, Err: err}
	}
	return points
}

// SensitivityPoint is one evaluation of a sensitivity run over equal
// compressor and turbine efficiencies at a fixed pressure ratio.
type SensitivityPoint struct {
	Efficiency float64
	Result     cycle.Result
	Err        error
}

// Sensitivity evaluates the Brayton cycle with compressor and turbine
// efficiency both set to each value in effs, in order.
func Sensitivity(prop cycle.PropertyProvider, base cycle.Params, effs []float64) []SensitivityPoint {
	points := make([]SensitivityPoint, len(effs))
	for i, eta := range effs {
		p := base
		p.CompressorEff = eta
		p.TurbineEff = eta
		res, err := cycle.Evaluate(prop, p)
		points[i] = SensitivityPoint{Efficiency: eta, Result: res, Err: err}
	}
	return points
}

// MaxNetWork returns the successful point with the highest net work.
// Ties go to the earlier point; the second return is false when every
// point failed. No unimodality is assumed: the scan is linear.
func MaxNetWork(points []Point) (Point, bool) {
	var best Point
	found := false
	for _, pt := range points {
		if pt.Err != nil {
			continue
		}
		if !found || pt.Result.NetWork > best.Result.NetWork {
			best = pt
			found = true
		}
	}
	return best, found
}

// MaxCombinedEfficiency returns the successful point with the highest
// combined efficiency, ties to the earlier point.
func MaxCombinedEfficiency(points []CombinedPoint) (CombinedPoint, bool) {
	var best CombinedPoint
	found := false
	for _, pt := range points {
		if pt.Err != nil {
			continue
		}
		if !found || pt.Result.CombinedEfficiency > best.Result.CombinedEfficiency {
			best = pt
			found = true
		}
	}
	return best, found
}
