// Package cycle resolves the thermodynamic states of a gas-turbine
// (Brayton) cycle, optionally coupled to a bottoming steam cycle, using
// temperature-dependent air properties instead of constant specific heats.
//
// State numbering follows convention: 1 compressor inlet, 2 compressor
// outlet, 3 turbine inlet, 4 turbine outlet. The isentropic legs are
// solved by inverting the entropy function at s°1 + R·ln(r) and
// s°3 − R·ln(r); component irreversibility is then applied through
// isentropic efficiencies.
package cycle

import "math"

// seedExponent approximates the ideal-gas isentropic temperature relation
// T2/T1 = r^((γ-1)/γ). It only seeds the root solve on the correct branch;
// the converged result comes from the tabulated properties.
const seedExponent = 0.3

// PropertyProvider supplies continuous air properties as functions of
// temperature in kelvin. Both functions must be monotonically increasing
// over the domain reported by InDomain.
type PropertyProvider interface {
	// Enthalpy returns h(T) in kJ/kg.
	Enthalpy(t float64) float64
	// Entropy returns the standard-state entropy s°(T) in kJ/kg·K.
	Entropy(t float64) float64
	// InDomain reports whether t is covered by tabulated data rather
	// than extrapolation.
	InDomain(t float64) bool
}

// Params holds the immutable configuration of one Brayton evaluation.
type Params struct {
	PressureRatio    float64 // compressor outlet/inlet pressure, > 1
	CompressorEff    float64 // isentropic efficiency, (0, 1]
	TurbineEff       float64 // isentropic efficiency, (0, 1]
	InletTemp        float64 // T1 [K]
	TurbineInletTemp float64 // T3 [K]
	GasConstant      float64 // R [kJ/kg·K]

	Solver SolverOptions
}

// Validate rejects parameters that cannot describe a physical cycle.
func (p Params) Validate() error {
	switch {
	case p.PressureRatio <= 1:
		return &ParameterError{Name: "pressure_ratio", Value: p.PressureRatio, Reason: "must be > 1"}
	case p.CompressorEff <= 0 || p.CompressorEff > 1:
		return &ParameterError{Name: "compressor_efficiency", Value: p.CompressorEff, Reason: "must be in (0, 1]"}
	case p.TurbineEff <= 0 || p.TurbineEff > 1:
		return &ParameterError{Name: "turbine_efficiency", Value: p.TurbineEff, Reason: "must be in (0, 1]"}
	case p.InletTemp <= 0:
		return &ParameterError{Name: "inlet_temp", Value: p.InletTemp, Reason: "must be positive kelvin"}
	case p.TurbineInletTemp <= p.InletTemp:
		return &ParameterError{Name: "turbine_inlet_temp", Value: p.TurbineInletTemp, Reason: "must exceed inlet temperature"}
	case p.GasConstant <= 0:
		return &ParameterError{Name: "gas_constant", Value: p.GasConstant, Reason: "must be positive"}
	}
	return nil
}

// Result is the outcome of one Brayton evaluation. It is a pure value;
// nothing persists between evaluations.
type Result struct {
	NetWork           float64 // w_net [kJ/kg]
	HeatInput         float64 // q_in [kJ/kg]
	ThermalEfficiency float64 // w_net / q_in, fraction

	CompressorWork float64 // h2 - h1 [kJ/kg]
	TurbineWork    float64 // h3 - h4 [kJ/kg]

	// TurbineExitEnthalpy is h4, the input to combined-cycle coupling.
	TurbineExitEnthalpy float64

	// Extrapolated is set when a resolved temperature fell outside the
	// provider's tabulated domain. The result is still usable but
	// carries lower confidence.
	Extrapolated bool
}

// Evaluate resolves states 1→2→3→4 for the given parameters and derives
// net work, heat input and thermal efficiency.
func Evaluate(prop PropertyProvider, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	r := p.PressureRatio
	deltaS := p.GasConstant * math.Log(r)

	s1 := prop.Entropy(p.InletTemp)
	s3 := prop.Entropy(p.TurbineInletTemp)

	// Isentropic compression: s°(T2s) = s°1 + R·ln(r).
	t2s, err := SolveTemperature(prop.Entropy, s1+deltaS, p.InletTemp*math.Pow(r, seedExponent), p.Solver)
	if err != nil {
		return Result{}, err
	}

	// Isentropic expansion: s°(T4s) = s°3 − R·ln(r).
	t4s, err := SolveTemperature(prop.Entropy, s3-deltaS, p.TurbineInletTemp/math.Pow(r, seedExponent), p.Solver)
	if err != nil {
		return Result{}, err
	}

	h1 := prop.Enthalpy(p.InletTemp)
	h2 := CompressorExitEnthalpy(h1, prop.Enthalpy(t2s), p.CompressorEff)
	h3 := prop.Enthalpy(p.TurbineInletTemp)
	h4 := TurbineExitEnthalpy(h3, prop.Enthalpy(t4s), p.TurbineEff)

	res := Result{
		NetWork:             (h3 - h4) - (h2 - h1),
		HeatInput:           h3 - h2,
		CompressorWork:      h2 - h1,
		TurbineWork:         h3 - h4,
		TurbineExitEnthalpy: h4,
		Extrapolated: !prop.InDomain(t2s) || !prop.InDomain(t4s) ||
			!prop.InDomain(p.InletTemp) || !prop.InDomain(p.TurbineInletTemp),
	}

	if res.HeatInput <= 0 || math.IsNaN(res.NetWork) || math.IsInf(res.NetWork, 0) {
		return Result{}, &DegenerateCycleError{HeatInput: res.HeatInput, NetWork: res.NetWork}
	}
	res.ThermalEfficiency = res.NetWork / res.HeatInput

	return res, nil
}
