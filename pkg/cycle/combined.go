package cycle

import "math"

// BottomingParams describes the fixed reference operating point of the
// bottoming steam cycle. The values are externally supplied configuration,
// not derived from a full Rankine model.
type BottomingParams struct {
	StackTemp        float64 // heat-recovery exit temperature [K]
	ExhaustThreshold float64 // minimum turbine exit temperature to drive the steam cycle [K]
	SteamHeatInput   float64 // Rankine heat input per kg of steam [kJ/kg]
	SteamEfficiency  float64 // Rankine cycle efficiency [%]
}

// Validate rejects bottoming parameters that cannot describe a steam cycle.
func (b BottomingParams) Validate() error {
	switch {
	case b.StackTemp <= 0:
		return &ParameterError{Name: "stack_temp", Value: b.StackTemp, Reason: "must be positive kelvin"}
	case b.ExhaustThreshold <= 0:
		return &ParameterError{Name: "exhaust_threshold", Value: b.ExhaustThreshold, Reason: "must be positive kelvin"}
	case b.SteamHeatInput <= 0:
		return &ParameterError{Name: "steam_heat_input", Value: b.SteamHeatInput, Reason: "must be positive"}
	case b.SteamEfficiency <= 0 || b.SteamEfficiency > 100:
		return &ParameterError{Name: "steam_efficiency", Value: b.SteamEfficiency, Reason: "must be in (0, 100] percent"}
	}
	return nil
}

// CombinedResult extends a Brayton result with the bottoming-cycle
// coupling outcome.
type CombinedResult struct {
	Brayton Result

	// TurbineExitTemp is the actual T4 recovered from h4 by inverse
	// enthalpy lookup.
	TurbineExitTemp float64

	// BottomingActive reports whether the exhaust was hot enough to
	// drive the steam cycle. When false the combined efficiency equals
	// the Brayton efficiency; that is a normal operating mode, not an
	// error.
	BottomingActive   bool
	SteamMassFraction float64 // kg steam per kg air
	BottomingWork     float64 // [kJ/kg air]

	CombinedEfficiency float64 // fraction

	// Extrapolated covers the Brayton states plus the inverse T4 solve.
	Extrapolated bool
}

// EvaluateCombined runs the Brayton evaluation and couples its exhaust to
// the bottoming steam cycle. The coupling decision is a hard threshold on
// the actual turbine exit temperature: at or above it the exhaust heat
// down to the stack temperature raises steam, below it the bottoming
// cycle contributes nothing.
func EvaluateCombined(prop PropertyProvider, p Params, b BottomingParams) (CombinedResult, error) {
	if err := b.Validate(); err != nil {
		return CombinedResult{}, err
	}

	brayton, err := Evaluate(prop, p)
	if err != nil {
		return CombinedResult{}, err
	}

	// Recover T4 from h4. This inverts the enthalpy function, not the
	// entropy function: the actual exit state is hotter than the
	// isentropic one, so it cannot come from the isentropic solve.
	t4, err := SolveTemperature(prop.Enthalpy, brayton.TurbineExitEnthalpy,
		p.TurbineInletTemp/math.Pow(p.PressureRatio, seedExponent), p.Solver)
	if err != nil {
		return CombinedResult{}, err
	}

	res := CombinedResult{
		Brayton:            brayton,
		TurbineExitTemp:    t4,
		CombinedEfficiency: brayton.ThermalEfficiency,
		Extrapolated:       brayton.Extrapolated || !prop.InDomain(t4),
	}

	if t4 >= b.ExhaustThreshold {
		qToSteam := math.Max(0, brayton.TurbineExitEnthalpy-prop.Enthalpy(b.StackTemp))
		res.BottomingActive = true
		res.SteamMassFraction = qToSteam / b.SteamHeatInput
		res.BottomingWork = res.SteamMassFraction * (b.SteamHeatInput * b.SteamEfficiency / 100)
		res.CombinedEfficiency = (brayton.NetWork + res.BottomingWork) / brayton.HeatInput
	}

	return res, nil
}
